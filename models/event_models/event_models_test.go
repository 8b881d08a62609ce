package event_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSearch(t *testing.T) {
	events := FixtureEvents()

	t.Run("matches event name", func(t *testing.T) {
		out := Filter(events, Query{Search: "wedding"})
		require.Len(t, out, 1)
		assert.Equal(t, "Rahul & Priya Wedding", out[0].EventName)
	})

	t.Run("matches customer name", func(t *testing.T) {
		out := Filter(events, Query{Search: "sarah"})
		require.Len(t, out, 1)
		assert.Equal(t, 2, out[0].ID)
	})

	t.Run("matches venue name", func(t *testing.T) {
		out := Filter(events, Query{Search: "metropolitan"})
		require.Len(t, out, 1)
		assert.Equal(t, 5, out[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Filter(events, Query{Search: "nonexistent"}))
	})
}

func TestFilterStatusAndType(t *testing.T) {
	events := FixtureEvents()

	out := Filter(events, Query{Status: StatusUpcoming})
	require.Len(t, out, 3)
	for _, e := range out {
		assert.Equal(t, StatusUpcoming, e.Status)
	}

	out = Filter(events, Query{EventType: "Corporate Event"})
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].ID)

	// "all" disables a filter.
	assert.Len(t, Filter(events, Query{Status: "all", EventType: "all"}), len(events))
}

func TestFilterSorting(t *testing.T) {
	events := FixtureEvents()

	t.Run("default sorts by event date", func(t *testing.T) {
		out := Filter(events, Query{})
		require.Len(t, out, 5)
		for i := 1; i < len(out); i++ {
			assert.LessOrEqual(t, out[i-1].EventDate, out[i].EventDate)
		}
	})

	t.Run("by event name", func(t *testing.T) {
		out := Filter(events, Query{SortBy: "eventName"})
		for i := 1; i < len(out); i++ {
			assert.LessOrEqual(t, out[i-1].EventName, out[i].EventName)
		}
	})

	t.Run("by amount descending", func(t *testing.T) {
		out := Filter(events, Query{SortBy: "totalAmount"})
		for i := 1; i < len(out); i++ {
			assert.GreaterOrEqual(t, out[i-1].TotalAmount, out[i].TotalAmount)
		}
	})
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	events := FixtureEvents()
	first := events[0]
	Filter(events, Query{SortBy: "eventName"})
	assert.Equal(t, first, events[0])
}
