package booking_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/models/availability_models"
	"github.com/hallbook/hallbook/models/booking_models"
	"github.com/hallbook/hallbook/models/calendar_models"
	"github.com/hallbook/hallbook/models/session_models"
	"github.com/hallbook/hallbook/models/user_models"
	"github.com/hallbook/hallbook/utils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	createCalls int
	conf        *booking_models.Confirmation
}

func (s *stubAPI) CreateBooking(_ context.Context, _ *booking_models.BookingRequest) (*booking_models.Confirmation, error) {
	s.createCalls++
	return s.conf, nil
}

func (s *stubAPI) Login(context.Context, string, string, string) (*user_models.User, string, error) {
	return nil, "", nil
}
func (s *stubAPI) Signup(context.Context, map[string]string) (string, error) { return "", nil }
func (s *stubAPI) PropertiesByAdmin(context.Context, string) ([]json.RawMessage, error) {
	return nil, nil
}
func (s *stubAPI) AddProperty(context.Context, map[string]interface{}) (string, error) {
	return "", nil
}
func (s *stubAPI) PropertyNames(context.Context, string) ([]string, error) { return nil, nil }
func (s *stubAPI) BookingsByProperty(context.Context, string) ([]booking_models.Record, error) {
	return nil, nil
}

func fixtureController(api *stubAPI) *BookingController {
	// The store is never reached by the paths under test; a client with no
	// live server behind it keeps the wiring honest.
	store := session_models.NewStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), time.Minute)
	fixture := availability_models.FixtureTable()
	return NewBookingController(store, api, func(string) availability_models.Lookup { return fixture })
}

func julySession() *session_models.PortalSession {
	return &session_models.PortalSession{
		ID:   "sess-1",
		User: &user_models.User{ID: "user-1", Name: "Asha Rao", Role: user_models.RoleUser},
		Flow: &booking_models.Flow{
			Month: calendar_models.Month{Year: 2025, Month: time.July},
			State: booking_models.StateIdle,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func testRouter(bc *BookingController, sess *session_models.PortalSession) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if sess != nil {
		r.Use(func(c *gin.Context) {
			c.Set(utils.SessionContextKey, sess)
			c.Next()
		})
	}
	r.GET("/api/booking-flow/calendar", bc.GetCalendar)
	r.POST("/api/booking-flow/date", bc.SelectDate)
	r.POST("/api/booking-flow/session", bc.SelectSession)
	r.POST("/api/booking-flow/submit", bc.Submit)
	return r
}

func TestFlowEndpointsRequireSession(t *testing.T) {
	r := testRouter(fixtureController(&stubAPI{}), nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/booking-flow/calendar"},
		{http.MethodPost, "/api/booking-flow/date"},
		{http.MethodPost, "/api/booking-flow/session"},
		{http.MethodPost, "/api/booking-flow/submit"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tt.method, tt.path, bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestGetCalendar(t *testing.T) {
	sess := julySession()
	r := testRouter(fixtureController(&stubAPI{}), sess)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/booking-flow/calendar", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Year               int                   `json:"year"`
		MonthName          string                `json:"monthName"`
		FirstWeekdayOffset int                   `json:"firstWeekdayOffset"`
		Days               []calendar_models.Day `json:"days"`
		State              string                `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2025, body.Year)
	assert.Equal(t, "July", body.MonthName)
	assert.Equal(t, 2, body.FirstWeekdayOffset)
	assert.Len(t, body.Days, 31)
	assert.Equal(t, "idle", body.State)
	assert.Equal(t, availability_models.DayStatusFully, body.Days[17].Status)
}

func TestSelectDateRejectsBadPayload(t *testing.T) {
	sess := julySession()
	r := testRouter(fixtureController(&stubAPI{}), sess)

	for _, payload := range []string{`{}`, `{"date":"23-07-2025"}`, `{"date":"not a date"}`} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/booking-flow/date", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %s", payload)
	}
}

func TestSelectDateOutsideDisplayedMonth(t *testing.T) {
	sess := julySession()
	r := testRouter(fixtureController(&stubAPI{}), sess)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/booking-flow/date", bytes.NewBufferString(`{"date":"2025-08-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, sess.Flow.SelectedDate.IsZero())
}

func TestSelectSessionConflictOnBookedSlot(t *testing.T) {
	sess := julySession()
	sess.Flow.SelectedDate = time.Date(2025, time.July, 18, 0, 0, 0, 0, time.UTC)
	r := testRouter(fixtureController(&stubAPI{}), sess)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/booking-flow/session", bytes.NewBufferString(`{"session":"afternoon"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, sess.Flow.SelectedSession)
}

func TestSelectSessionRejectsUnknownName(t *testing.T) {
	sess := julySession()
	sess.Flow.SelectedDate = time.Date(2025, time.July, 23, 0, 0, 0, 0, time.UTC)
	r := testRouter(fixtureController(&stubAPI{}), sess)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/booking-flow/session", bytes.NewBufferString(`{"session":"midnight"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitWithIncompleteFormStaysLocal(t *testing.T) {
	sess := julySession()
	sess.Flow.SelectedDate = time.Date(2025, time.July, 23, 0, 0, 0, 0, time.UTC)
	sess.Flow.SelectedSession = availability_models.SessionAfternoon
	// Form fields never filled in.

	api := &stubAPI{conf: &booking_models.Confirmation{Success: true}}
	r := testRouter(fixtureController(api), sess)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/booking-flow/submit", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, api.createCalls, "validation failures must not reach the booking store")
	assert.Equal(t, booking_models.StateIdle, sess.Flow.State)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, booking_models.MsgMissingFields, body["error"])
}
