//go:build unit || e2e

package builder

import (
	"encoding/json"
	"strconv"

	"fullplanes/internal/domain/search"
)

type OfferBuilder struct {
	offer search.RawOffer
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{offer: search.RawOffer{
		Schema: search.OfferSchemaV2,
		ID:     "1",
		Itineraries: []search.RawItinerary{{
			Duration: "PT1H20M",
			Segments: []search.RawSegment{{
				Departure:             search.RawEndpoint{IATACode: "BER", At: "2025-03-10T08:15:00"},
				Arrival:               search.RawEndpoint{IATACode: "VIE", At: "2025-03-10T09:35:00"},
				CarrierCode:           "OS",
				Number:                "228",
				Duration:              "PT1H20M",
				NumberOfBookableSeats: json.RawMessage("4"),
			}},
		}},
		Price: &search.RawPrice{Currency: "EUR", Total: "89.99"},
	}}
}

func (b *OfferBuilder) Build() search.RawOffer {
	return b.offer
}

func (b *OfferBuilder) segment() *search.RawSegment {
	return &b.offer.Itineraries[0].Segments[0]
}

// WithDeparture sets departure and arrival to date at the given clock times.
func (b *OfferBuilder) WithDeparture(date, dep, arr string) *OfferBuilder {
	b.segment().Departure.At = date + "T" + dep + ":00"
	b.segment().Arrival.At = date + "T" + arr + ":00"
	return b
}

func (b *OfferBuilder) WithFlight(carrier, number string) *OfferBuilder {
	b.segment().CarrierCode = carrier
	b.segment().Number = number
	return b
}

func (b *OfferBuilder) WithDuration(iso string) *OfferBuilder {
	b.segment().Duration = iso
	return b
}

func (b *OfferBuilder) WithSeats(n int) *OfferBuilder {
	b.segment().NumberOfBookableSeats = json.RawMessage(strconv.Itoa(n))
	return b
}

// WithRawSeats sets the seat field verbatim; nil removes it.
func (b *OfferBuilder) WithRawSeats(raw string) *OfferBuilder {
	if raw == "" {
		b.segment().NumberOfBookableSeats = nil
		return b
	}
	b.segment().NumberOfBookableSeats = json.RawMessage(raw)
	return b
}

func (b *OfferBuilder) WithOfferSeats(raw string) *OfferBuilder {
	b.offer.NumberOfBookableSeats = json.RawMessage(raw)
	return b
}
