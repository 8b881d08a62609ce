package user_models

import "encoding/json"

// Roles recognized by the portal. The booking store reports the role as a
// plain string on login; anything other than "admin" is treated as a regular
// user when deriving booking metadata.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the current-user record returned by the booking store's login
// endpoint and carried in the portal session for the rest of the visit.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phoneNumber,omitempty"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// BookingFrom derives the channel a booking is taken through. Admins book
// on behalf of walk-in customers ("offline"); everyone else books "online".
// This is a business rule of request construction, not user input.
func (u *User) BookingFrom() string {
	if u.IsAdmin() {
		return "offline"
	}
	return "online"
}

// FromJSON decodes a stored user record. A decode failure returns nil so
// callers treat the session as logged out rather than failing the request.
func FromJSON(raw []byte) *User {
	if len(raw) == 0 {
		return nil
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" {
		return nil
	}
	return &u
}
