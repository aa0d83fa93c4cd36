// Package clock works with café wall-clock times as minutes of day.
//
// All capacity reasoning happens on the unwrapped integer minute line:
// a session that starts at 23:30 for 60 minutes ends at minute 1470,
// not at minute 30. Wrapping modulo a day is applied only when a value
// is formatted for display.
package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of the wall-clock day in minutes.
const MinutesPerDay = 24 * 60

// Minute is a time expressed as minutes since midnight. Interval ends
// may legitimately exceed MinutesPerDay when a session crosses midnight.
type Minute int

// clockPattern matches "H:MM" with an optional am/pm suffix, e.g.
// "7:30 pm", "12:00am", "9:05".
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)?$`)

// Parse converts a 12-hour clock string to a minute of day.
// Hour 12 am maps to 0, hour 12 pm stays 12, other pm hours gain 12.
// A string without a meridiem is taken as given (1..12 o'clock range).
// Returns ErrInvalidTimeFormat when the string does not match.
func Parse(s string) (Minute, error) {
	m := clockPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour out of range in %q", ErrInvalidTimeFormat, s)
	}

	min, err := strconv.Atoi(m[2])
	if err != nil || min > 59 {
		return 0, fmt.Errorf("%w: minutes out of range in %q", ErrInvalidTimeFormat, s)
	}

	switch m[3] {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}

	return Minute(hour*60 + min), nil
}

// Clock formats the minute as a 12-hour clock string, wrapping values
// outside [0, MinutesPerDay) back into a single day.
func (m Minute) Clock() string {
	wrapped := int(m) % MinutesPerDay
	if wrapped < 0 {
		wrapped += MinutesPerDay
	}

	hour := wrapped / 60
	min := wrapped % 60

	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, min, meridiem)
}

// String implements fmt.Stringer.
func (m Minute) String() string {
	return m.Clock()
}

// IntervalEnd returns start + duration on the unwrapped minute line.
// Callers decide whether to wrap for display; capacity math never wraps.
func IntervalEnd(start Minute, durationMinutes int) Minute {
	return start + Minute(durationMinutes)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share at
// least one minute. Intervals that merely touch at a boundary do not
// overlap.
func Overlaps(aStart, aEnd, bStart, bEnd Minute) bool {
	return aStart < bEnd && bStart < aEnd
}
