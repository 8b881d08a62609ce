package booking_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/clients"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/availability_models"
	"github.com/hallbook/hallbook/models/booking_models"
	"github.com/hallbook/hallbook/models/session_models"
	"github.com/hallbook/hallbook/models/venue_models"
	"github.com/hallbook/hallbook/utils"
)

// LookupFactory returns the availability lookup for one venue. Production
// wires the Redis-cached lookup; tests wire the fixture table. The flow
// behaves identically against either.
type LookupFactory func(venueID string) availability_models.Lookup

// BookingController drives the booking flow: calendar navigation, the
// date/session selection, form details and submission through the gateway.
type BookingController struct {
	Store  *session_models.Store
	API    clients.BookingAPI
	Lookup LookupFactory
}

// NewBookingController creates a new instance of BookingController.
func NewBookingController(store *session_models.Store, api clients.BookingAPI, lookup LookupFactory) *BookingController {
	return &BookingController{Store: store, API: api, Lookup: lookup}
}

// SelectDateRequest carries a clicked calendar day.
type SelectDateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// SelectSessionRequest carries the chosen session for the selected date.
type SelectSessionRequest struct {
	Session string `json:"session" binding:"required,oneof=afternoon evening"`
}

// flowView is what every flow endpoint answers with: the full rendered
// state of the booking page, recomputed from the availability lookup.
func (bc *BookingController) flowView(sess *session_models.PortalSession, lookup availability_models.Lookup) gin.H {
	flow := sess.BookingFlow()
	month := flow.Month

	view := gin.H{
		"year":               month.Year,
		"month":              int(month.Month),
		"monthName":          month.Name(),
		"firstWeekdayOffset": month.FirstWeekdayOffset(),
		"days":               month.Grid(lookup, flow.SelectedDate),
		"selectedSession":    flow.SelectedSession,
		"showBookingForm":    flow.ShowForm,
		"fields":             flow.Fields,
		"state":              flow.State,
	}
	if !flow.SelectedDate.IsZero() {
		view["selectedDate"] = availability_models.DateKey(flow.SelectedDate)
		view["sessions"] = lookup.SessionAvailability(flow.SelectedDate)
	}
	if flow.FailureMessage != "" {
		view["error"] = flow.FailureMessage
	}
	return view
}

// venueFor resolves the venue being booked: the session's selected venue,
// or the placeholder record when none was stored (the page still renders).
func venueFor(sess *session_models.PortalSession, c *gin.Context) *venue_models.Venue {
	if sess.SelectedVenue != nil {
		return sess.SelectedVenue
	}
	return venue_models.FallbackVenue(c.Query("venueId"))
}

// GetCalendar renders the displayed month against the availability lookup.
func (bc *BookingController) GetCalendar(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	venue := venueFor(sess, c)
	c.JSON(http.StatusOK, bc.flowView(sess, bc.Lookup(venue.ID)))
}

// PrevMonth navigates back one month and clears the selection.
func (bc *BookingController) PrevMonth(c *gin.Context) {
	bc.navigate(c, func(f *booking_models.Flow) { f.PrevMonth() })
}

// NextMonth navigates forward one month and clears the selection.
func (bc *BookingController) NextMonth(c *gin.Context) {
	bc.navigate(c, func(f *booking_models.Flow) { f.NextMonth() })
}

func (bc *BookingController) navigate(c *gin.Context, step func(*booking_models.Flow)) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	step(sess.BookingFlow())
	if err := bc.Store.Save(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	venue := venueFor(sess, c)
	c.JSON(http.StatusOK, bc.flowView(sess, bc.Lookup(venue.ID)))
}

// SelectDate handles a calendar day click.
func (bc *BookingController) SelectDate(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	if err := sess.BookingFlow().SelectDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := bc.Store.Save(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	venue := venueFor(sess, c)
	c.JSON(http.StatusOK, bc.flowView(sess, bc.Lookup(venue.ID)))
}

// SelectSession handles the "Book Now" action for a session. A session the
// grid shows as booked is refused with 409; the UI never offers it.
func (bc *BookingController) SelectSession(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req SelectSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	venue := venueFor(sess, c)
	lookup := bc.Lookup(venue.ID)

	if err := sess.BookingFlow().SelectSession(req.Session, lookup); err != nil {
		status := http.StatusBadRequest
		if err == booking_models.ErrSessionUnavailable {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if err := bc.Store.Save(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, bc.flowView(sess, lookup))
}

// UpdateDetails replaces the booking form fields.
func (bc *BookingController) UpdateDetails(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var fields booking_models.FormFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	sess.BookingFlow().UpdateFields(fields)
	if err := bc.Store.Save(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	venue := venueFor(sess, c)
	c.JSON(http.StatusOK, bc.flowView(sess, bc.Lookup(venue.ID)))
}

// Submit runs one submission attempt. Validation failures come back as 400
// without touching the network; gateway outcomes are reported through the
// flow state (succeeded, or failed with the surfaced message).
func (bc *BookingController) Submit(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	venue := venueFor(sess, c)
	flow := sess.BookingFlow()

	if err := flow.Submit(c.Request.Context(), bc.API, venue, sess.User); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := bc.Store.Save(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	switch flow.State {
	case booking_models.StateSucceeded:
		logger.InfoLogger.Infof("Booking submitted for venue %s by session %s", venue.ID, sess.ID)
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Booking created successfully!", "state": flow.State})
	case booking_models.StateFailed:
		c.JSON(http.StatusOK, gin.H{"success": false, "message": flow.FailureMessage, "state": flow.State})
	default:
		// Submit was a no-op (already submitting or already succeeded).
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Submission already in progress", "state": flow.State})
	}
}

// Cancel abandons the booking form and clears the selection.
func (bc *BookingController) Cancel(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	sess.BookingFlow().Cancel()
	if err := bc.Store.Save(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	venue := venueFor(sess, c)
	c.JSON(http.StatusOK, bc.flowView(sess, bc.Lookup(venue.ID)))
}

// ListBookings returns existing bookings across the admin's venues, with
// the status filter and sort the bookings page applies.
func (bc *BookingController) ListBookings(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if sess.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": booking_models.MsgNotLoggedIn})
		return
	}

	records, err := bc.API.BookingsByProperty(c.Request.Context(), sess.User.ID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch bookings for admin %s: %v", sess.User.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	filtered := booking_models.FilterRecords(records, c.Query("status"), c.Query("sortBy"))
	c.JSON(http.StatusOK, gin.H{"bookings": filtered, "total": len(filtered)})
}
