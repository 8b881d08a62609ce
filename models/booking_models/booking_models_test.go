package booking_models

import (
	"testing"
	"time"

	"github.com/hallbook/hallbook/models/user_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormFieldsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FormFields)
		ok     bool
	}{
		{"complete", func(*FormFields) {}, true},
		{"missing name", func(f *FormFields) { f.CustomerName = "" }, false},
		{"missing phone", func(f *FormFields) { f.PhoneNumber = "" }, false},
		{"missing email", func(f *FormFields) { f.Email = "" }, false},
		{"missing event", func(f *FormFields) { f.EventName = "" }, false},
		{"blank persons", func(f *FormFields) { f.NoOfPersons = "" }, false},
		{"non numeric persons", func(f *FormFields) { f.NoOfPersons = "a lot" }, false},
		{"negative persons", func(f *FormFields) { f.NoOfPersons = "-5" }, false},
		{"padded persons", func(f *FormFields) { f.NoOfPersons = " 120 " }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)
			err := fields.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMissingFields)
			}
		})
	}
}

func TestBuildRequestDefaults(t *testing.T) {
	fields := validFields()
	date := time.Date(2025, time.July, 23, 0, 0, 0, 0, time.UTC)

	req, err := BuildRequest(fields, date, "evening", testVenue(), testUser())
	require.NoError(t, err)

	assert.Equal(t, "2025-07-23", req.Date)
	assert.Equal(t, "Evening", req.Session)
	assert.Equal(t, "online", req.BookingFrom)
	assert.Equal(t, "Online Booking", req.TakenBy)
	assert.Zero(t, req.AdvanceAmount, "blank advance becomes zero")
	assert.Zero(t, req.Paid)
	assert.NotEmpty(t, req.IdempotencyKey)
}

func TestBuildRequestAdminBooksOffline(t *testing.T) {
	fields := validFields()
	fields.TakenBy = "Front Desk"
	fields.AdvanceAmount = "5000"
	fields.Paid = "2000"
	date := time.Date(2025, time.July, 23, 0, 0, 0, 0, time.UTC)
	admin := &user_models.User{ID: "admin-1", Role: user_models.RoleAdmin}

	req, err := BuildRequest(fields, date, "afternoon", testVenue(), admin)
	require.NoError(t, err)

	assert.Equal(t, "offline", req.BookingFrom)
	assert.Equal(t, "Front Desk", req.TakenBy)
	assert.Equal(t, 5000, req.AdvanceAmount)
	assert.Equal(t, 2000, req.Paid)
}

func TestBuildRequestJunkMoneyFields(t *testing.T) {
	fields := validFields()
	fields.AdvanceAmount = "five thousand"
	fields.Paid = "-100"
	date := time.Date(2025, time.July, 23, 0, 0, 0, 0, time.UTC)

	req, err := BuildRequest(fields, date, "afternoon", testVenue(), testUser())
	require.NoError(t, err)
	assert.Zero(t, req.AdvanceAmount)
	assert.Zero(t, req.Paid)
}

func TestBuildRequestRequiresSelectionAndUser(t *testing.T) {
	fields := validFields()
	date := time.Date(2025, time.July, 23, 0, 0, 0, 0, time.UTC)

	_, err := BuildRequest(fields, time.Time{}, "afternoon", testVenue(), testUser())
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = BuildRequest(fields, date, "", testVenue(), testUser())
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = BuildRequest(fields, date, "afternoon", testVenue(), nil)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestFilterRecords(t *testing.T) {
	records := []Record{
		{ID: 1, Status: "confirmed", EventDate: "2025-08-03", BookedDate: "2025-07-01", TotalAmount: 50000},
		{ID: 2, Status: "pending", EventDate: "2025-08-01", BookedDate: "2025-07-03", TotalAmount: 80000},
		{ID: 3, Status: "Confirmed", EventDate: "2025-08-02", BookedDate: "2025-07-02", TotalAmount: 20000},
	}

	t.Run("status filter is case insensitive", func(t *testing.T) {
		out := FilterRecords(records, "confirmed", "")
		require.Len(t, out, 2)
		assert.Equal(t, 3, out[0].ID)
		assert.Equal(t, 1, out[1].ID)
	})

	t.Run("all keeps everything sorted by event date", func(t *testing.T) {
		out := FilterRecords(records, "all", "eventDate")
		require.Len(t, out, 3)
		assert.Equal(t, []int{2, 3, 1}, []int{out[0].ID, out[1].ID, out[2].ID})
	})

	t.Run("sort by booked date", func(t *testing.T) {
		out := FilterRecords(records, "", "bookedDate")
		assert.Equal(t, []int{1, 3, 2}, []int{out[0].ID, out[1].ID, out[2].ID})
	})

	t.Run("sort by amount descending", func(t *testing.T) {
		out := FilterRecords(records, "", "totalAmount")
		assert.Equal(t, []int{2, 1, 3}, []int{out[0].ID, out[1].ID, out[2].ID})
	})
}
