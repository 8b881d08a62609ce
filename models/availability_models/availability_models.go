package availability_models

import (
	"strings"
	"time"
)

// Status is the availability of a single session on a given day.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
)

// Day cell statuses shown on the calendar grid. A day is "fully" booked when
// both sessions are booked, "partial" when exactly one is.
type DayStatus string

const (
	DayStatusAvailable DayStatus = "available"
	DayStatusPartial   DayStatus = "partial"
	DayStatusFully     DayStatus = "fully"
)

// Session names within a day. Lookup keys are lowercase; the booking store
// expects the capitalized form on the wire (see booking_models).
const (
	SessionAfternoon = "afternoon"
	SessionEvening   = "evening"
)

// SessionSlots is the per-day availability record: one status per session.
type SessionSlots struct {
	Afternoon Status `json:"afternoon"`
	Evening   Status `json:"evening"`
}

// Lookup answers per-session availability for a calendar date. It never
// fails: a date nobody has booked yet is simply fully available.
type Lookup interface {
	SessionAvailability(date time.Time) SessionSlots
}

// DateKey renders the ISO calendar-day key used throughout the availability
// table and the booking store API.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// DayStatusOf reduces a day's session pair to the tri-state calendar cell
// status.
func DayStatusOf(l Lookup, date time.Time) DayStatus {
	slots := l.SessionAvailability(date)
	switch {
	case slots.Afternoon == StatusBooked && slots.Evening == StatusBooked:
		return DayStatusFully
	case slots.Afternoon == StatusBooked || slots.Evening == StatusBooked:
		return DayStatusPartial
	default:
		return DayStatusAvailable
	}
}

// Table is an in-memory availability table keyed by ISO day. Dates absent
// from the table default to both sessions available (open-world policy).
type Table map[string]SessionSlots

// SessionAvailability implements Lookup.
func (t Table) SessionAvailability(date time.Time) SessionSlots {
	if slots, ok := t[DateKey(date)]; ok {
		return slots
	}
	return SessionSlots{Afternoon: StatusAvailable, Evening: StatusAvailable}
}

// MarkBooked records a booked session on the table. Unknown session names
// are ignored; the booking store sends "Afternoon"/"Evening" capitalized.
func (t Table) MarkBooked(dateKey, session string) {
	slots, ok := t[dateKey]
	if !ok {
		slots = SessionSlots{Afternoon: StatusAvailable, Evening: StatusAvailable}
	}
	switch strings.ToLower(session) {
	case SessionAfternoon:
		slots.Afternoon = StatusBooked
	case SessionEvening:
		slots.Evening = StatusBooked
	default:
		return
	}
	t[dateKey] = slots
}

// FixtureTable is the static demo table used when the portal runs without a
// booking store (and by the tests). Mirrors the demo data the booking page
// ships with.
func FixtureTable() Table {
	return Table{
		"2025-07-23": {Afternoon: StatusAvailable, Evening: StatusAvailable},
		"2025-07-16": {Afternoon: StatusBooked, Evening: StatusAvailable},
		"2025-07-18": {Afternoon: StatusBooked, Evening: StatusBooked},
		"2025-07-25": {Afternoon: StatusAvailable, Evening: StatusBooked},
		"2025-07-28": {Afternoon: StatusBooked, Evening: StatusAvailable},
	}
}
