package event_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/models/event_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ec := NewEventController()
	r.GET("/api/events", ec.ListEvents)
	return r
}

func listEvents(t *testing.T, r *gin.Engine, query string) ([]event_models.Event, int) {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/events"+query, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Events []event_models.Event `json:"events"`
		Total  int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Events, body.Total
}

func TestListEvents(t *testing.T) {
	r := eventRouter()

	events, total := listEvents(t, r, "")
	assert.Equal(t, 5, total)
	assert.Len(t, events, 5)
}

func TestListEventsFiltered(t *testing.T) {
	r := eventRouter()

	events, total := listEvents(t, r, "?status=upcoming&search=wedding")
	require.Equal(t, 1, total)
	assert.Equal(t, "Rahul & Priya Wedding", events[0].EventName)

	events, _ = listEvents(t, r, "?eventType=Corporate+Event")
	require.Len(t, events, 1)
	assert.Equal(t, "Tech Corp Annual Meet", events[0].EventName)

	_, total = listEvents(t, r, "?search=nonexistent")
	assert.Zero(t, total)
}

func TestListEventsSorted(t *testing.T) {
	r := eventRouter()

	events, _ := listEvents(t, r, "?sortBy=totalAmount")
	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i-1].TotalAmount, events[i].TotalAmount)
	}
}
