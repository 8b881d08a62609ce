package event_models

import (
	"sort"
	"strings"
)

// Event statuses as the events page groups them.
const (
	StatusUpcoming  = "upcoming"
	StatusToday     = "today"
	StatusCompleted = "completed"
)

// Event is one scheduled event across the admin's venues.
type Event struct {
	ID              int    `json:"id"`
	EventName       string `json:"eventName"`
	EventType       string `json:"eventType"`
	VenueName       string `json:"venueName"`
	VenueLocation   string `json:"venueLocation"`
	EventDate       string `json:"eventDate"`
	EventTime       string `json:"eventTime"`
	Duration        string `json:"duration"`
	Guests          int    `json:"guests"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail"`
	TotalAmount     int    `json:"totalAmount"`
	Status          string `json:"status"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Query narrows and orders the event list the way the events page does:
// free-text search over event, customer and venue names, exact status and
// type filters ("all" disables a filter), and a sort key.
type Query struct {
	Search    string
	Status    string
	EventType string
	SortBy    string
}

// Filter applies the query to events and returns the matching slice in
// sorted order. The input is not modified.
func Filter(events []Event, q Query) []Event {
	out := make([]Event, 0, len(events))
	needle := strings.ToLower(q.Search)
	for _, e := range events {
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.EventName), needle) &&
			!strings.Contains(strings.ToLower(e.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(e.VenueName), needle) {
			continue
		}
		if q.Status != "" && q.Status != "all" && e.Status != q.Status {
			continue
		}
		if q.EventType != "" && q.EventType != "all" && e.EventType != q.EventType {
			continue
		}
		out = append(out, e)
	}

	switch q.SortBy {
	case "eventName":
		sort.SliceStable(out, func(i, j int) bool { return out[i].EventName < out[j].EventName })
	case "totalAmount":
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalAmount > out[j].TotalAmount })
	default: // eventDate
		sort.SliceStable(out, func(i, j int) bool { return out[i].EventDate < out[j].EventDate })
	}
	return out
}

// FixtureEvents is the demo event list the events page ships with until the
// booking store exposes an events endpoint.
func FixtureEvents() []Event {
	return []Event{
		{
			ID: 1, EventName: "Rahul & Priya Wedding", EventType: "Wedding",
			VenueName: "Grand Palace Hall", VenueLocation: "Downtown",
			EventDate: "2025-02-15", EventTime: "18:00", Duration: "6 hours", Guests: 150,
			CustomerName: "Rahul Sharma", CustomerPhone: "+91 98765 43210",
			CustomerEmail: "rahul.sharma@email.com", TotalAmount: 25000, Status: StatusUpcoming,
			SpecialRequests: "Red roses decoration, vegetarian catering",
		},
		{
			ID: 2, EventName: "Tech Corp Annual Meet", EventType: "Corporate Event",
			VenueName: "Crystal Ballroom", VenueLocation: "Business District",
			EventDate: "2025-01-30", EventTime: "09:00", Duration: "8 hours", Guests: 200,
			CustomerName: "Sarah Johnson", CustomerPhone: "+91 98765 43214",
			CustomerEmail: "sarah.johnson@techcorp.com", TotalAmount: 35000, Status: StatusToday,
			SpecialRequests: "Audio-visual equipment, corporate catering",
		},
		{
			ID: 3, EventName: "Amit's 30th Birthday", EventType: "Birthday Party",
			VenueName: "Royal Banquet Center", VenueLocation: "City Center",
			EventDate: "2025-02-20", EventTime: "19:00", Duration: "4 hours", Guests: 80,
			CustomerName: "Amit Kumar", CustomerPhone: "+91 98765 43212",
			CustomerEmail: "amit.kumar@email.com", TotalAmount: 18000, Status: StatusUpcoming,
		},
		{
			ID: 4, EventName: "Golden Anniversary Celebration", EventType: "Anniversary",
			VenueName: "Elegant Event Space", VenueLocation: "Suburbs",
			EventDate: "2025-03-01", EventTime: "17:30", Duration: "5 hours", Guests: 60,
			CustomerName: "Mr. & Mrs. Gupta", CustomerPhone: "+91 98765 43213",
			CustomerEmail: "gupta.family@email.com", TotalAmount: 12000, Status: StatusUpcoming,
		},
		{
			ID: 5, EventName: "University Graduation", EventType: "Academic Event",
			VenueName: "Metropolitan Hall", VenueLocation: "Metro Area",
			EventDate: "2025-01-25", EventTime: "10:00", Duration: "6 hours", Guests: 300,
			CustomerName: "Prof. David Wilson", CustomerPhone: "+91 98765 43215",
			CustomerEmail: "david.wilson@university.edu", TotalAmount: 28000, Status: StatusCompleted,
		},
	}
}
