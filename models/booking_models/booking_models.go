package booking_models

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hallbook/hallbook/models/availability_models"
	"github.com/hallbook/hallbook/models/user_models"
	"github.com/hallbook/hallbook/models/venue_models"
)

// SubmissionState is the lifecycle of one booking submission.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// User-facing messages. Application rejections surface the server's message
// verbatim when present; these are the fallbacks.
const (
	MsgNetworkError  = "Network error. Please check your connection and try again."
	MsgBookingFailed = "Booking failed. Please try again."
	MsgMissingFields = "Please fill in all required fields"
	MsgNotLoggedIn   = "User not found. Please login again."

	defaultTakenBy = "Online Booking"
)

var (
	// ErrMissingFields is the local validation error: a required field or the
	// date/session selection is absent. It never reaches the network.
	ErrMissingFields = errors.New(MsgMissingFields)
	// ErrNotLoggedIn means no current user is attached to the session.
	ErrNotLoggedIn = errors.New(MsgNotLoggedIn)
	// ErrNoDateSelected means a session was chosen before a date.
	ErrNoDateSelected = errors.New("select a date before choosing a session")
	// ErrSessionUnavailable means the chosen session is booked on that date.
	// A correct caller never offers the action; the flow refuses it anyway.
	ErrSessionUnavailable = errors.New("session is not available on the selected date")
	// ErrDateOutsideMonth means the date is not rendered in the displayed month.
	ErrDateOutsideMonth = errors.New("date is outside the displayed month")
	// ErrUnknownSession means the session name is neither afternoon nor evening.
	ErrUnknownSession = errors.New("unknown session")
)

// FormFields are the raw booking form inputs. They stay strings until
// request construction, exactly as typed, so a failed submission can be
// corrected and resubmitted.
type FormFields struct {
	CustomerName  string `json:"customerName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	EventName     string `json:"eventName"`
	NoOfPersons   string `json:"noOfPersons"`
	AdvanceAmount string `json:"advanceAmount"`
	Paid          string `json:"paid"`
	TakenBy       string `json:"takenBy"`
}

// BookingRequest is the createBooking payload sent to the booking store.
// It is constructed at submit time, sent once and discarded; the idempotency
// key lets the store deduplicate an accidental double submit.
type BookingRequest struct {
	Date           string `json:"date"`
	Session        string `json:"session"`
	CustomerName   string `json:"customerName"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
	EventName      string `json:"eventName"`
	NoOfPersons    int    `json:"noOfPersons"`
	PropertyID     string `json:"propertyId"`
	CustomerID     string `json:"customerId"`
	BookingFrom    string `json:"bookingFrom"`
	AdvanceAmount  int    `json:"advanceAmount"`
	TakenBy        string `json:"takenBy"`
	Paid           int    `json:"paid"`
	IdempotencyKey string `json:"idempotencyKey"`
}

// Confirmation is the booking store's answer to a submission. Only the
// success flag is contractual; Message accompanies rejections.
type Confirmation struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
}

// Gateway is the outbound boundary that delivers a booking request to the
// booking store. A returned error is a transport failure; an unsuccessful
// Confirmation is an application-level rejection.
type Gateway interface {
	CreateBooking(ctx context.Context, req *BookingRequest) (*Confirmation, error)
}

// Validate checks that every required field is present and that noOfPersons
// parses as a positive integer (non-numeric input counts as missing).
// The date/session selection is validated by the flow, which owns it.
func (f FormFields) Validate() error {
	if f.CustomerName == "" || f.PhoneNumber == "" || f.Email == "" || f.EventName == "" {
		return ErrMissingFields
	}
	persons, err := strconv.Atoi(strings.TrimSpace(f.NoOfPersons))
	if err != nil || persons <= 0 {
		return ErrMissingFields
	}
	return nil
}

// BuildRequest constructs the outbound payload from validated fields, a
// populated selection, the venue being booked and the acting user. The
// session goes out capitalized ("Afternoon"/"Evening"); bookingFrom is
// derived from the user's role, never from input.
func BuildRequest(fields FormFields, date time.Time, session string, venue *venue_models.Venue, user *user_models.User) (*BookingRequest, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	if date.IsZero() || session == "" {
		return nil, ErrMissingFields
	}
	if user == nil || user.ID == "" {
		return nil, ErrNotLoggedIn
	}

	persons, _ := strconv.Atoi(strings.TrimSpace(fields.NoOfPersons))

	takenBy := fields.TakenBy
	if takenBy == "" {
		takenBy = defaultTakenBy
	}

	return &BookingRequest{
		Date:           availability_models.DateKey(date),
		Session:        capitalizeSession(session),
		CustomerName:   fields.CustomerName,
		PhoneNumber:    fields.PhoneNumber,
		Email:          fields.Email,
		EventName:      fields.EventName,
		NoOfPersons:    persons,
		PropertyID:     venue.ID,
		CustomerID:     user.ID,
		BookingFrom:    user.BookingFrom(),
		AdvanceAmount:  intOrZero(fields.AdvanceAmount),
		TakenBy:        takenBy,
		Paid:           intOrZero(fields.Paid),
		IdempotencyKey: uuid.NewString(),
	}, nil
}

func capitalizeSession(session string) string {
	if session == availability_models.SessionAfternoon {
		return "Afternoon"
	}
	return "Evening"
}

// intOrZero parses optional money fields; blank or junk input becomes 0.
func intOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
