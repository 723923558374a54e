package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fullplanes/internal/domain/airline"
	"fullplanes/internal/domain/airport"
	"fullplanes/internal/domain/search"
)

var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ResultNormalizer flattens provider offers into display records. It never fails; missing
// fields fall back to the query date, raw codes or unknown seats.
type ResultNormalizer struct {
	airports *airport.Catalog
	airlines *airline.Directory
}

func NewResultNormalizer(airports *airport.Catalog, airlines *airline.Directory) *ResultNormalizer {
	return &ResultNormalizer{airports: airports, airlines: airlines}
}

func (n *ResultNormalizer) Normalize(route search.Route, queryDate time.Time, raw search.RawOffer) search.FlightResult {
	seg, _ := raw.FirstSegment()

	date := datePart(seg.Departure.At)
	if date == "" {
		date = queryDate.Format(search.DateLayout)
	}

	duration := seg.Duration
	if duration == "" && len(raw.Itineraries) > 0 {
		duration = raw.Itineraries[0].Duration
	}

	seats := parseSeats(seg.NumberOfBookableSeats)
	if seats == nil {
		seats = parseSeats(raw.NumberOfBookableSeats)
	}

	return search.FlightResult{
		Date:          date,
		DepartureTime: clockPart(seg.Departure.At),
		ArrivalTime:   clockPart(seg.Arrival.At),
		FromFull:      n.airports.Display(route.Origin),
		ToFull:        n.airports.Display(route.Destination),
		Duration:      FormatDuration(duration),
		AirlineName:   n.airlines.Name(seg.CarrierCode),
		FlightNumber:  flightNumber(seg, raw.ID),
		Seats:         seats,
	}
}

// flightNumber falls back to the offer id so offers without segment data stay distinct.
func flightNumber(seg search.RawSegment, offerID string) string {
	if number := strings.TrimSpace(seg.CarrierCode + " " + seg.Number); number != "" {
		return number
	}
	if offerID != "" {
		return "#" + offerID
	}
	return ""
}

func (n *ResultNormalizer) NormalizeAll(route search.Route, queryDate time.Time, raws []search.RawOffer) []search.FlightResult {
	out := make([]search.FlightResult, 0, len(raws))
	for _, raw := range raws {
		out = append(out, n.Normalize(route, queryDate, raw))
	}
	return out
}

// FormatDuration renders ISO-8601 durations like PT2H30M as "2h 30m". Unparsable input is returned as is.
func FormatDuration(iso string) string {
	m := isoDuration.FindStringSubmatch(iso)
	if m == nil {
		return iso
	}

	var parts []string
	for i, unit := range []string{"d", "h", "m", "s"} {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return iso
		}
		parts = append(parts, fmt.Sprintf("%d%s", v, unit))
	}
	if len(parts) == 0 {
		return iso
	}
	return strings.Join(parts, " ")
}

// parseSeats accepts a JSON number or numeric string holding a non-negative integer.
func parseSeats(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = []byte(strings.TrimSpace(s))
	}

	v, err := strconv.Atoi(string(raw))
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// datePart and clockPart cut local ISO timestamps such as 2025-03-10T08:15:00.
func datePart(ts string) string {
	if len(ts) < 10 {
		return ""
	}
	if _, err := time.Parse(search.DateLayout, ts[:10]); err != nil {
		return ""
	}
	return ts[:10]
}

func clockPart(ts string) string {
	i := strings.IndexByte(ts, 'T')
	if i < 0 || len(ts) < i+6 {
		return ""
	}
	return ts[i+1 : i+6]
}
