//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"fullplanes/internal/domain/airline"
	"fullplanes/internal/domain/airport"
	"fullplanes/internal/domain/search"
	"fullplanes/internal/pkg/ptr"
	"fullplanes/internal/usecase"
	"fullplanes/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := map[string]string{
		"PT2H30M":  "2h 30m",
		"PT45M":    "45m",
		"PT3H":     "3h",
		"P1DT2H":   "1d 2h",
		"PT1H5M9S": "1h 5m 9s",
		"PT":       "PT",
		"":         "",
		"2h":       "2h",
		"PT1.5H":   "PT1.5H",
	}
	for in, want := range cases {
		assert.Equal(t, want, usecase.FormatDuration(in), "input %q", in)
	}
}

func TestResultNormalizer(t *testing.T) {
	n := usecase.NewResultNormalizer(airport.NewDefaultCatalog(), airline.NewDefaultDirectory())
	queryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("full offer", func(t *testing.T) {
		raw := builder.NewOfferBuilder().WithFlight("LH", "170").WithDuration("PT1H5M").WithSeats(9).Build()

		got := n.Normalize(search.Route{Origin: "BER", Destination: "FRA"}, queryDate, raw)

		want := search.FlightResult{
			Date:          "2025-03-10",
			DepartureTime: "08:15",
			ArrivalTime:   "09:35",
			FromFull:      `Berlin - Flughafen Berlin Brandenburg "Willy Brandt" (BER)`,
			ToFull:        "Frankfurt - Flughafen Frankfurt am Main (FRA)",
			Duration:      "1h 5m",
			AirlineName:   "Lufthansa",
			FlightNumber:  "LH 170",
			Seats:         ptr.Int(9),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("absent seats render as unknown", func(t *testing.T) {
		raw := builder.NewOfferBuilder().WithFlight("LH", "170").WithRawSeats("").Build()

		got := n.Normalize(search.Route{Origin: "BER", Destination: "FRA"}, queryDate, raw)

		assert.Nil(t, got.Seats)
		assert.Equal(t, "k.A.", got.SeatsDisplay())
	})

	t.Run("seat values", func(t *testing.T) {
		cases := []struct {
			name string
			raw  string
			want *int
		}{
			{name: "number", raw: "7", want: ptr.Int(7)},
			{name: "zero", raw: "0", want: ptr.Int(0)},
			{name: "numeric string", raw: `"3"`, want: ptr.Int(3)},
			{name: "null", raw: "null"},
			{name: "negative", raw: "-1"},
			{name: "fraction", raw: "2.5"},
			{name: "text", raw: `"many"`},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				raw := builder.NewOfferBuilder().WithRawSeats(c.raw).Build()
				got := n.Normalize(search.Route{Origin: "BER", Destination: "VIE"}, queryDate, raw)
				assert.True(t, ptr.EqualInt(c.want, got.Seats), "seats %v", got.Seats)
			})
		}
	})

	t.Run("offer level seats are the fallback", func(t *testing.T) {
		raw := builder.NewOfferBuilder().WithRawSeats("").WithOfferSeats("2").Build()
		got := n.Normalize(search.Route{Origin: "BER", Destination: "VIE"}, queryDate, raw)
		assert.Equal(t, ptr.Int(2), got.Seats)
	})

	t.Run("unknown codes fall back to raw values", func(t *testing.T) {
		raw := builder.NewOfferBuilder().WithFlight("ZZ", "1").Build()

		got := n.Normalize(search.Route{Origin: "XXX", Destination: "YYY"}, queryDate, raw)

		assert.Equal(t, "XXX", got.FromFull)
		assert.Equal(t, "YYY", got.ToFull)
		assert.Equal(t, "ZZ", got.AirlineName)
		assert.Equal(t, "ZZ 1", got.FlightNumber)
	})

	t.Run("missing segment keeps the query date", func(t *testing.T) {
		got := n.Normalize(search.Route{Origin: "BER", Destination: "VIE"}, queryDate, search.RawOffer{ID: "x"})

		assert.Equal(t, "2025-03-10", got.Date)
		assert.Empty(t, got.DepartureTime)
		assert.Equal(t, "#x", got.FlightNumber)
		assert.Nil(t, got.Seats)
	})

	t.Run("offers without segments survive deduplication by id", func(t *testing.T) {
		route := search.Route{Origin: "BER", Destination: "VIE"}
		got := search.Deduplicate(n.NormalizeAll(route, queryDate, []search.RawOffer{
			{ID: "1"}, {ID: "2"}, {ID: "2"},
		}))

		require.Len(t, got, 2)
		assert.Equal(t, "#1", got[0].FlightNumber)
		assert.Equal(t, "#2", got[1].FlightNumber)
	})
}
