package booking_models

import (
	"context"
	"time"

	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/availability_models"
	"github.com/hallbook/hallbook/models/calendar_models"
	"github.com/hallbook/hallbook/models/user_models"
	"github.com/hallbook/hallbook/models/venue_models"
)

// Flow is the booking-flow state machine for one visitor and one venue:
// displayed month, the in-progress date/session selection, the form fields
// and the submission lifecycle. It is a plain value the session store
// serializes between requests; every transition happens through a method.
type Flow struct {
	Month           calendar_models.Month `json:"month"`
	SelectedDate    time.Time             `json:"selectedDate"`
	SelectedSession string                `json:"selectedSession"`
	ShowForm        bool                  `json:"showForm"`
	Fields          FormFields            `json:"fields"`
	State           SubmissionState       `json:"state"`
	FailureMessage  string                `json:"failureMessage,omitempty"`
}

// NewFlow starts a flow on the month containing today, with nothing
// selected and the submission machine idle.
func NewFlow() *Flow {
	return &Flow{
		Month: calendar_models.CurrentMonth(),
		State: StateIdle,
	}
}

// HasSelection reports whether both a date and a session are chosen.
func (f *Flow) HasSelection() bool {
	return !f.SelectedDate.IsZero() && f.SelectedSession != ""
}

// clearSelection drops the date/session pair and closes the form.
func (f *Flow) clearSelection() {
	f.SelectedDate = time.Time{}
	f.SelectedSession = ""
	f.ShowForm = false
}

// PrevMonth navigates to the preceding month. Navigating away invalidates
// any selection, which referred to a day no longer rendered.
func (f *Flow) PrevMonth() {
	f.Month = f.Month.Prev()
	f.clearSelection()
}

// NextMonth navigates to the following month and clears the selection.
func (f *Flow) NextMonth() {
	f.Month = f.Month.Next()
	f.clearSelection()
}

// SelectDate picks a day from the displayed month. It resets any chosen
// session and closes an open form; the visitor picks a session next.
func (f *Flow) SelectDate(date time.Time) error {
	if !f.Month.Contains(date) {
		return ErrDateOutsideMonth
	}
	f.SelectedDate = date
	f.SelectedSession = ""
	f.ShowForm = false
	return nil
}

// SelectSession picks a session on the selected date and opens the booking
// form. The session must be available per the lookup: the grid never offers
// a booked session, so refusing here only stops dishonest callers. Choosing
// a session also clears the residue of a finished submission.
func (f *Flow) SelectSession(session string, lookup availability_models.Lookup) error {
	if f.SelectedDate.IsZero() {
		return ErrNoDateSelected
	}
	if session != availability_models.SessionAfternoon && session != availability_models.SessionEvening {
		return ErrUnknownSession
	}

	slots := lookup.SessionAvailability(f.SelectedDate)
	status := slots.Afternoon
	if session == availability_models.SessionEvening {
		status = slots.Evening
	}
	if status != availability_models.StatusAvailable {
		return ErrSessionUnavailable
	}

	f.SelectedSession = session
	f.ShowForm = true
	if f.State == StateFailed || f.State == StateSucceeded {
		f.State = StateIdle
	}
	f.FailureMessage = ""
	return nil
}

// UpdateFields replaces the form fields. Editing a field after a rejection
// clears the failure so the corrected form can be resubmitted.
func (f *Flow) UpdateFields(fields FormFields) {
	f.Fields = fields
	if f.State == StateFailed || f.State == StateSucceeded {
		f.State = StateIdle
		f.FailureMessage = ""
	}
}

// Cancel abandons the booking form: selection cleared, machine back to idle.
// Typed fields are kept in case the visitor reopens the form.
func (f *Flow) Cancel() {
	f.clearSelection()
	f.State = StateIdle
	f.FailureMessage = ""
}

// Submit runs one submission attempt through the gateway.
//
// The machine only leaves idle or failed: a submit while submitting or after
// success is a no-op, which is what makes a double-click harmless regardless
// of what any UI disables. Validation failures leave the state untouched and
// never reach the network. On success the form resets and the selection
// clears; on failure both are kept so the visitor can correct and resubmit.
func (f *Flow) Submit(ctx context.Context, gw Gateway, venue *venue_models.Venue, user *user_models.User) error {
	if f.State == StateSubmitting || f.State == StateSucceeded {
		logger.WarnLogger.Warnf("Ignoring submit in state %q", f.State)
		return nil
	}

	if err := f.Fields.Validate(); err != nil {
		return err
	}
	if !f.HasSelection() {
		return ErrMissingFields
	}
	if user == nil || user.ID == "" {
		return ErrNotLoggedIn
	}

	req, err := BuildRequest(f.Fields, f.SelectedDate, f.SelectedSession, venue, user)
	if err != nil {
		return err
	}

	f.State = StateSubmitting
	f.FailureMessage = ""

	conf, err := gw.CreateBooking(ctx, req)
	if err != nil {
		logger.ErrorLogger.Errorf("Create booking call failed for property %s: %v", req.PropertyID, err)
		f.State = StateFailed
		f.FailureMessage = MsgNetworkError
		return nil
	}

	if !conf.Success {
		msg := conf.Message
		if msg == "" {
			msg = MsgBookingFailed
		}
		logger.WarnLogger.Warnf("Booking rejected for property %s on %s: %s", req.PropertyID, req.Date, msg)
		f.State = StateFailed
		f.FailureMessage = msg
		return nil
	}

	logger.InfoLogger.Infof("Booking created for property %s on %s (%s)", req.PropertyID, req.Date, req.Session)
	f.State = StateSucceeded
	f.Fields = FormFields{}
	f.clearSelection()
	return nil
}
