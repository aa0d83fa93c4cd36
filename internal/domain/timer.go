package domain

import "time"

// TimerStatus represents the state of a membership timer
type TimerStatus string

const (
	TimerActive  TimerStatus = "active"
	TimerStopped TimerStatus = "stopped"
)

// TimerSubscription is an open-ended membership session on a fixed
// station: it starts when the member sits down and has no scheduled end.
// Billing by elapsed time happens outside this service.
type TimerSubscription struct {
	ID           string // uuid
	CafeID       int64
	MemberID     int64
	CustomerName string
	StationType  StationType
	UnitNumber   int // fixed physical unit the membership is bound to
	StartedAt    time.Time
	Status       TimerStatus
	StoppedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the timer is running
func (t *TimerSubscription) IsActive() bool {
	return t.Status == TimerActive
}

// ElapsedMinutes returns whole minutes since the timer started. There
// is no upper bound for open-ended sessions.
func (t *TimerSubscription) ElapsedMinutes(now time.Time) int {
	return int(now.Sub(t.StartedAt) / time.Minute)
}

// UnitLabel returns the dashboard label of the bound unit, e.g. "PC-07".
func (t *TimerSubscription) UnitLabel() string {
	return t.StationType.UnitLabel(t.UnitNumber)
}
