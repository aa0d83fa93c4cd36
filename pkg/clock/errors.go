package clock

import "errors"

// ErrInvalidTimeFormat is returned when a clock string does not match
// the "H:MM am|pm" pattern. Malformed input is rejected at the API
// boundary and never reaches capacity checks.
var ErrInvalidTimeFormat = errors.New("clock: invalid time format")
