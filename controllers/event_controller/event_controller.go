package event_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/models/event_models"
)

// EventController serves the upcoming-events page. Until the booking store
// exposes an events endpoint this reads the fixture list; filtering and
// sorting already match what that endpoint will feed.
type EventController struct {
	Events func() []event_models.Event
}

// NewEventController creates a new instance of EventController.
func NewEventController() *EventController {
	return &EventController{Events: event_models.FixtureEvents}
}

// ListEvents returns events matching the query: free-text search, status
// and event-type filters, and a sort key.
func (ec *EventController) ListEvents(c *gin.Context) {
	q := event_models.Query{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		EventType: c.Query("eventType"),
		SortBy:    c.Query("sortBy"),
	}
	events := event_models.Filter(ec.Events(), q)
	c.JSON(http.StatusOK, gin.H{"events": events, "total": len(events)})
}
