package domain

import (
	"fmt"

	"github.com/playgrid/PGC-StationService/pkg/clock"
)

// CafeConfig holds a café's fixed inventory and opening hours. The
// capacity per station type bounds every unit-minute of the day; it is
// edited by staff and treated as read-only by the booking flow.
type CafeConfig struct {
	CafeID      int64
	OpenMinute  clock.Minute
	CloseMinute clock.Minute
	Capacities  map[StationType]int
}

// Capacity returns the configured number of physical units for the
// station type; zero when the café does not own that type.
func (c *CafeConfig) Capacity(st StationType) int {
	return c.Capacities[st]
}

// Validate rejects impossible configuration. A broken café setup must
// fail at configuration time, never per booking.
func (c *CafeConfig) Validate() error {
	if c.OpenMinute < 0 || c.OpenMinute >= clock.MinutesPerDay {
		return fmt.Errorf("%w: open minute %d out of range", ErrInvalidConfig, c.OpenMinute)
	}
	if c.CloseMinute <= c.OpenMinute || c.CloseMinute > clock.MinutesPerDay {
		return fmt.Errorf("%w: close minute %d must be after open minute %d", ErrInvalidConfig, c.CloseMinute, c.OpenMinute)
	}
	for st, capacity := range c.Capacities {
		if !st.IsValid() {
			return fmt.Errorf("%w: unknown station type %q", ErrInvalidConfig, st)
		}
		if capacity < 0 {
			return fmt.Errorf("%w: negative capacity %d for %s", ErrInvalidConfig, capacity, st)
		}
	}
	return nil
}
