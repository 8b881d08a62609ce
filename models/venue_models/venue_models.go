package venue_models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hallbook/hallbook/logger"
)

// Venue is a bookable function hall. It is sourced from the booking store's
// properties endpoints and treated as immutable for the duration of a
// booking session.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Capacity    string   `json:"capacity"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
}

// upstreamVenue mirrors the loosely-shaped property records the booking
// store returns. Field names vary between deployments, hence the aliases.
type upstreamVenue struct {
	ID              string          `json:"id"`
	PropertyID      string          `json:"propertyId"`
	Name            string          `json:"name"`
	PropertyName    string          `json:"propertyName"`
	Location        string          `json:"location"`
	Address         string          `json:"address"`
	SeatingCapacity int             `json:"seatingCapacity"`
	Capacity        int             `json:"capacity"`
	Price           json.Number     `json:"price"`
	Rate            json.Number     `json:"rate"`
	Rating          float64         `json:"rating"`
	Description     string          `json:"description"`
	Images          []string        `json:"images"`
	SuitableEvents  json.RawMessage `json:"suitableEvents"`
}

// FallbackVenue is the placeholder substituted when stored venue data is
// missing or malformed, so the booking page still renders.
func FallbackVenue(id string) *Venue {
	return &Venue{
		ID:          id,
		Name:        "Venue Name",
		Location:    "Location",
		Capacity:    "0 guests",
		Price:       "₹15,000/day",
		Rating:      4.5,
		Description: "Beautiful venue for your special occasion.",
		Images:      []string{},
		Amenities:   []string{},
	}
}

// FromJSON decodes a stored venue summary. Malformed data is recovered
// locally by substituting the fallback placeholder record.
func FromJSON(raw []byte, id string) *Venue {
	if len(raw) == 0 {
		return FallbackVenue(id)
	}
	var v Venue
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.ErrorLogger.Errorf("Error parsing venue data: %v", err)
		return FallbackVenue(id)
	}
	if v.ID == "" {
		v.ID = id
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	if v.Amenities == nil {
		v.Amenities = []string{}
	}
	return &v
}

// FromUpstream normalizes a raw property record from the booking store into
// the venue summary shape the portal works with.
func FromUpstream(raw json.RawMessage) *Venue {
	var uv upstreamVenue
	if err := json.Unmarshal(raw, &uv); err != nil {
		logger.WarnLogger.Warnf("Skipping malformed property record: %v", err)
		return nil
	}

	id := firstNonEmpty(uv.ID, uv.PropertyID)
	if id == "" {
		return nil
	}

	capacity := uv.SeatingCapacity
	if capacity == 0 {
		capacity = uv.Capacity
	}

	price := string(uv.Price)
	if price == "" {
		price = string(uv.Rate)
	}
	priceText := "₹15,000/day"
	if price != "" {
		priceText = fmt.Sprintf("₹%s/day", price)
	}

	rating := uv.Rating
	if rating == 0 {
		rating = 4.5
	}

	return &Venue{
		ID:          id,
		Name:        firstNonEmpty(uv.Name, uv.PropertyName, "Venue Name"),
		Location:    firstNonEmpty(uv.Location, uv.Address, "Location"),
		Capacity:    fmt.Sprintf("%d guests", capacity),
		Price:       priceText,
		Rating:      rating,
		Description: firstNonEmpty(uv.Description, "Beautiful venue for your special occasion."),
		Images:      nonNil(uv.Images),
		Amenities:   parseAmenities(uv.SuitableEvents),
	}
}

// parseAmenities accepts either a JSON array or a comma-separated string,
// both of which the booking store has been seen to return.
func parseAmenities(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return nonNil(list)
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		parts := strings.Split(single, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return []string{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
