package request

import (
	"time"

	"fullplanes/internal/domain/search"
	"fullplanes/internal/pkg/patch"
)

// SearchRequest binds from JSON or from a classic form post.
type SearchRequest struct {
	Origin      string `json:"origin" form:"origin" binding:"required"`
	Destination string `json:"destination" form:"destination" binding:"required"`
	StartDate   string `json:"start_date" form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" form:"end_date" binding:"required,datetime=2006-01-02"`
	MaxSeats    *int   `json:"max_seats,omitempty" form:"max_seats" binding:"omitempty,gt=0"`
}

func (r *SearchRequest) ToDomain() (*search.Request, error) {
	start, err := search.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := search.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	return search.NewRequest(r.Origin, r.Destination, start, end, r.MaxSeats)
}

// OptionsQuery carries the form values to prefill; absent dates default to today.
type OptionsQuery struct {
	Origin      *string `form:"origin"`
	Destination *string `form:"destination"`
	StartDate   *string `form:"start_date"`
	EndDate     *string `form:"end_date"`
	MaxSeats    *string `form:"max_seats"`
}

type OptionsDefaults struct {
	Origin      string
	Destination string
	StartDate   string
	EndDate     string
	MaxSeats    string
}

func (q *OptionsQuery) Defaults(today time.Time) OptionsDefaults {
	day := today.Format(search.DateLayout)
	return OptionsDefaults{
		Origin:      patch.Coalesce(q.Origin, ""),
		Destination: patch.Coalesce(q.Destination, ""),
		StartDate:   patch.Coalesce(q.StartDate, day),
		EndDate:     patch.Coalesce(q.EndDate, day),
		MaxSeats:    patch.Coalesce(q.MaxSeats, ""),
	}
}
