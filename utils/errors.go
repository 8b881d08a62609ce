// utils/errors.go
package utils

import "errors"

// ErrSessionNotFound is returned when no portal session is attached to the
// request context.
var ErrSessionNotFound = errors.New("authentication required: session not found")
