package search

import "encoding/json"

// OfferSchemaV2 tags offers decoded from the flight-offers v2 payload.
const OfferSchemaV2 = "amadeus.flight-offers.v2"

// RawOffer keeps only the provider fields the normalizer reads. Seat counts stay raw
// because the provider sends them as numbers, strings or null depending on the fare.
type RawOffer struct {
	Schema                string          `json:"-"`
	ID                    string          `json:"id"`
	NumberOfBookableSeats json.RawMessage `json:"numberOfBookableSeats,omitempty"`
	Itineraries           []RawItinerary  `json:"itineraries"`
	Price                 *RawPrice       `json:"price,omitempty"`
}

type RawItinerary struct {
	Duration string       `json:"duration"`
	Segments []RawSegment `json:"segments"`
}

type RawSegment struct {
	Departure             RawEndpoint     `json:"departure"`
	Arrival               RawEndpoint     `json:"arrival"`
	CarrierCode           string          `json:"carrierCode"`
	Number                string          `json:"number"`
	Duration              string          `json:"duration"`
	NumberOfBookableSeats json.RawMessage `json:"numberOfBookableSeats,omitempty"`
}

type RawEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type RawPrice struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// FirstSegment returns the first segment of the first itinerary.
func (o RawOffer) FirstSegment() (RawSegment, bool) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return RawSegment{}, false
	}
	return o.Itineraries[0].Segments[0], true
}
