package calendar_models

import (
	"time"

	"github.com/hallbook/hallbook/models/availability_models"
)

// Month is a (year, month) pair identifying one displayed calendar month.
// It is a value type; navigation returns new values instead of mutating.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// CurrentMonth returns the month containing today.
func CurrentMonth() Month {
	now := time.Now()
	return Month{Year: now.Year(), Month: now.Month()}
}

// MonthOf returns the month containing the given date.
func MonthOf(date time.Time) Month {
	return Month{Year: date.Year(), Month: date.Month()}
}

// Prev returns the preceding month, rolling the year back at January.
func (m Month) Prev() Month {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	return Month{Year: prev.Year(), Month: prev.Month()}
}

// Next returns the following month, rolling the year forward at December.
func (m Month) Next() Month {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	return Month{Year: next.Year(), Month: next.Month()}
}

// Days returns the ordered dates of the month. The slice is recomputed on
// every call; nothing caches it.
func (m Month) Days() []time.Time {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	days := make([]time.Time, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		days = append(days, time.Date(m.Year, m.Month, d, 0, 0, 0, 0, time.UTC))
	}
	return days
}

// FirstWeekdayOffset is the number of blank cells padding the grid before
// day 1, i.e. the weekday of the first of the month with Sunday as 0.
func (m Month) FirstWeekdayOffset() int {
	return int(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Name renders the month's display name, e.g. "July".
func (m Month) Name() string {
	return m.Month.String()
}

// Contains reports whether date falls inside the month.
func (m Month) Contains(date time.Time) bool {
	return date.Year() == m.Year && date.Month() == m.Month
}

// Day is one rendered calendar cell: a concrete date plus the attributes the
// grid derives for it. Cells are rebuilt from the availability lookup on
// every render, never stored.
type Day struct {
	Date       string                          `json:"date"`
	DayOfMonth int                             `json:"dayOfMonth"`
	Status     availability_models.DayStatus   `json:"status"`
	Sessions   availability_models.SessionSlots `json:"sessions"`
	IsToday    bool                            `json:"isToday"`
	IsSelected bool                            `json:"isSelected"`
}

// Grid computes the month's day cells against an availability lookup.
// selected may be zero when no date is selected.
func (m Month) Grid(lookup availability_models.Lookup, selected time.Time) []Day {
	today := time.Now()
	days := m.Days()
	grid := make([]Day, 0, len(days))
	for _, d := range days {
		grid = append(grid, Day{
			Date:       availability_models.DateKey(d),
			DayOfMonth: d.Day(),
			Status:     availability_models.DayStatusOf(lookup, d),
			Sessions:   lookup.SessionAvailability(d),
			IsToday:    sameDay(d, today),
			IsSelected: !selected.IsZero() && sameDay(d, selected),
		})
	}
	return grid
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
