package domain

// UnitStatus is the live-dashboard state of one physical unit
type UnitStatus string

const (
	UnitFree       UnitStatus = "free"
	UnitBusy       UnitStatus = "busy"
	UnitEndingSoon UnitStatus = "ending_soon"
)

// UnitAssignment maps one numbered physical unit to whoever occupies it
// right now. Assignments are derived for presentation on every status
// query and are never persisted.
type UnitAssignment struct {
	UnitNumber int
	Label      string // e.g. "PS5-03"
	Status     UnitStatus

	// occupied units only
	CustomerName     string
	ReservationID    *int64
	TimerID          *string
	RemainingMinutes *int // nil for open-ended membership sessions
	ElapsedMinutes   *int
	EndsAtClock      *string // formatted wall-clock end, time-boxed sessions only
}

// IsFree returns true when nothing occupies the unit
func (u *UnitAssignment) IsFree() bool {
	return u.Status == UnitFree
}
