package domain

import (
	"time"

	"github.com/playgrid/PGC-StationService/pkg/clock"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
)

// Reservation represents a time-boxed claim on N physical units of one
// station type. Cancelled reservations are terminal and are kept for
// audit; they are never physically deleted.
type Reservation struct {
	ID              int64
	CafeID          int64
	UserID          int64
	StationType     StationType
	Quantity        int // number of physical units reserved
	PlayerCount     int // controllers/players per unit, the pricing tier axis
	Date            time.Time
	StartMinute     clock.Minute
	DurationMinutes int
	Status          ReservationStatus

	CustomerName string
	UnitPrice    int  // price per unit, resolved at booking time
	TotalPrice   int  // UnitPrice * Quantity
	PriceFlagged bool // true when pricing fell through to 0 (configuration gap)
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndMinute returns the unwrapped end of the reserved interval; it may
// exceed a day when the session crosses midnight.
func (r *Reservation) EndMinute() clock.Minute {
	return clock.IntervalEnd(r.StartMinute, r.DurationMinutes)
}

// IsActive returns true if the reservation still counts against capacity
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation may still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsRunning returns true if the session is currently in progress
func (r *Reservation) IsRunning() bool {
	return r.Status == StatusInProgress
}

// Overlaps reports whether the reservation occupies any minute of the
// given interval on the unwrapped minute line.
func (r *Reservation) Overlaps(start, end clock.Minute) bool {
	return clock.Overlaps(r.StartMinute, r.EndMinute(), start, end)
}

// EndsAt returns the absolute wall-clock end of the reserved interval
// on its date.
func (r *Reservation) EndsAt() time.Time {
	midnight := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, r.Date.Location())
	return midnight.Add(time.Duration(r.EndMinute()) * time.Minute)
}

// DayFilter selects reservations of one café on one date, optionally
// narrowed to a station type or status.
type DayFilter struct {
	CafeID          int64
	Date            time.Time
	StationType     *StationType
	Status          *ReservationStatus
	IncludeInactive bool // include cancelled reservations (audit views)
}

// InactiveStatuses список статусов, не учитываемых при подсчете вместимости
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, учитываемых при подсчете вместимости
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
