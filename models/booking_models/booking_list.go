package booking_models

import (
	"sort"
	"strings"
)

// Record is one existing booking as the booking store lists it. The portal
// renders these on the admin bookings page and folds Date/Session pairs
// into the availability cache.
type Record struct {
	ID            int    `json:"id"`
	PropertyID    string `json:"propertyId"`
	VenueName     string `json:"venueName"`
	VenueLocation string `json:"venueLocation"`
	Date          string `json:"date"`
	Session       string `json:"session"`
	EventDate     string `json:"eventDate"`
	EventTime     string `json:"eventTime"`
	Duration      string `json:"duration"`
	Guests        int    `json:"guests"`
	TotalAmount   int    `json:"totalAmount"`
	Status        string `json:"status"`
	EventType     string `json:"eventType"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	BookedDate    string `json:"bookedDate"`
}

// FilterRecords narrows a booking list by status ("all" or "" keeps
// everything) and orders it by the sort key, eventDate by default.
func FilterRecords(records []Record, status, sortBy string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if status != "" && status != "all" && !strings.EqualFold(r.Status, status) {
			continue
		}
		out = append(out, r)
	}

	switch sortBy {
	case "bookedDate":
		sort.SliceStable(out, func(i, j int) bool { return out[i].BookedDate < out[j].BookedDate })
	case "totalAmount":
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalAmount > out[j].TotalAmount })
	default: // eventDate
		sort.SliceStable(out, func(i, j int) bool { return out[i].EventDate < out[j].EventDate })
	}
	return out
}
