package availability_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDefaultOpenPolicy(t *testing.T) {
	table := FixtureTable()

	// Dates absent from the table are fully available.
	for _, d := range []string{"2025-07-01", "2025-07-31", "2024-01-01", "2026-12-25"} {
		slots := table.SessionAvailability(day(d))
		assert.Equal(t, StatusAvailable, slots.Afternoon, "afternoon on %s", d)
		assert.Equal(t, StatusAvailable, slots.Evening, "evening on %s", d)
	}
}

func TestFixtureTableEntries(t *testing.T) {
	table := FixtureTable()

	slots := table.SessionAvailability(day("2025-07-16"))
	assert.Equal(t, StatusBooked, slots.Afternoon)
	assert.Equal(t, StatusAvailable, slots.Evening)

	slots = table.SessionAvailability(day("2025-07-18"))
	assert.Equal(t, StatusBooked, slots.Afternoon)
	assert.Equal(t, StatusBooked, slots.Evening)
}

func TestDayStatusReduction(t *testing.T) {
	table := FixtureTable()

	tests := []struct {
		date string
		want DayStatus
	}{
		{"2025-07-18", DayStatusFully},     // both booked
		{"2025-07-16", DayStatusPartial},   // afternoon booked
		{"2025-07-25", DayStatusPartial},   // evening booked
		{"2025-07-23", DayStatusAvailable}, // both available
		{"2025-07-02", DayStatusAvailable}, // absent from table
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DayStatusOf(table, day(tt.date)), "day status for %s", tt.date)
	}
}

func TestMarkBooked(t *testing.T) {
	table := Table{}

	table.MarkBooked("2025-08-01", "Afternoon")
	slots := table.SessionAvailability(day("2025-08-01"))
	assert.Equal(t, StatusBooked, slots.Afternoon)
	assert.Equal(t, StatusAvailable, slots.Evening)

	// Capitalization from the booking store does not matter.
	table.MarkBooked("2025-08-01", "evening")
	slots = table.SessionAvailability(day("2025-08-01"))
	assert.Equal(t, StatusBooked, slots.Evening)

	// Unknown session names are ignored.
	table.MarkBooked("2025-08-02", "midnight")
	assert.Equal(t, DayStatusAvailable, DayStatusOf(table, day("2025-08-02")))
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2025-07-23", DateKey(day("2025-07-23")))
}
