package calendar_models

import (
	"testing"
	"time"

	"github.com/hallbook/hallbook/models/availability_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthNavigationRoundTrip(t *testing.T) {
	m := Month{Year: 2025, Month: time.July}

	// Next then Prev lands back on the same (year, month) pair.
	assert.Equal(t, m, m.Next().Prev())
	assert.Equal(t, m, m.Prev().Next())
}

func TestMonthYearRollover(t *testing.T) {
	dec := Month{Year: 2024, Month: time.December}
	jan := dec.Next()
	assert.Equal(t, Month{Year: 2025, Month: time.January}, jan)
	assert.Equal(t, dec, jan.Prev())
}

func TestDays(t *testing.T) {
	july := Month{Year: 2025, Month: time.July}
	days := july.Days()
	require.Len(t, days, 31)
	assert.Equal(t, 1, days[0].Day())
	assert.Equal(t, 31, days[30].Day())

	// Recomputed, not cached: two calls return equal but distinct slices.
	again := july.Days()
	assert.Equal(t, days, again)

	// February honors leap years.
	assert.Len(t, Month{Year: 2024, Month: time.February}.Days(), 29)
	assert.Len(t, Month{Year: 2025, Month: time.February}.Days(), 28)
}

func TestFirstWeekdayOffset(t *testing.T) {
	// 2025-07-01 is a Tuesday; Sunday-based grids pad two blanks.
	assert.Equal(t, 2, Month{Year: 2025, Month: time.July}.FirstWeekdayOffset())
	// 2025-06-01 is a Sunday.
	assert.Equal(t, 0, Month{Year: 2025, Month: time.June}.FirstWeekdayOffset())
}

func TestContains(t *testing.T) {
	july := Month{Year: 2025, Month: time.July}
	assert.Equal(t, july, MonthOf(time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, july.Contains(time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, july.Contains(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, july.Contains(time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)))
}

func TestGrid(t *testing.T) {
	july := Month{Year: 2025, Month: time.July}
	table := availability_models.FixtureTable()
	selected := time.Date(2025, time.July, 23, 0, 0, 0, 0, time.UTC)

	grid := july.Grid(table, selected)
	require.Len(t, grid, 31)

	assert.Equal(t, "2025-07-01", grid[0].Date)
	assert.Equal(t, availability_models.DayStatusFully, grid[17].Status)   // the 18th
	assert.Equal(t, availability_models.DayStatusPartial, grid[15].Status) // the 16th
	assert.True(t, grid[22].IsSelected)                                    // the 23rd
	assert.False(t, grid[21].IsSelected)

	// No selection marks nothing.
	for _, cell := range july.Grid(table, time.Time{}) {
		assert.False(t, cell.IsSelected)
	}
}
