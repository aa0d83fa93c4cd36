package capacity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/pkg/clock"
)

func mustParse(t *testing.T, s string) clock.Minute {
	t.Helper()
	m, err := clock.Parse(s)
	require.NoError(t, err)
	return m
}

func reservation(st domain.StationType, quantity int, start clock.Minute, duration int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		StationType:     st,
		Quantity:        quantity,
		StartMinute:     start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestValidate_AcceptsWhenRoomLeft(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.StationPS5, 1, mustParse(t, "6:00 pm"), 60, domain.StatusConfirmed),
	}

	cand := Candidate{
		StationType:     domain.StationPS5,
		Start:           mustParse(t, "6:30 pm"),
		DurationMinutes: 30,
		Quantity:        1,
	}

	require.NoError(t, Validate(2, cand, existing))
}

// Scenario from the booking flow: capacity 2, reservation A holds one
// unit 18:00-19:00, request B wants both units at 18:30 for 30 minutes.
func TestValidate_RejectsWithAvailableCount(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.StationPS5, 1, mustParse(t, "6:00 pm"), 60, domain.StatusConfirmed),
	}

	cand := Candidate{
		StationType:     domain.StationPS5,
		Start:           mustParse(t, "6:30 pm"),
		DurationMinutes: 30,
		Quantity:        2,
	}

	err := Validate(2, cand, existing)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 1, capErr.Available)
}

func TestValidate_IgnoresCancelledAndOtherTypes(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.StationPS5, 2, mustParse(t, "6:00 pm"), 60, domain.StatusCancelled),
		reservation(domain.StationPool, 2, mustParse(t, "6:00 pm"), 60, domain.StatusConfirmed),
	}

	cand := Candidate{
		StationType:     domain.StationPS5,
		Start:           mustParse(t, "6:00 pm"),
		DurationMinutes: 60,
		Quantity:        2,
	}

	require.NoError(t, Validate(2, cand, existing))
}

func TestValidate_TouchingIntervalsDoNotCollide(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.StationPS5, 2, mustParse(t, "5:00 pm"), 60, domain.StatusConfirmed),
	}

	cand := Candidate{
		StationType:     domain.StationPS5,
		Start:           mustParse(t, "6:00 pm"),
		DurationMinutes: 60,
		Quantity:        2,
	}

	require.NoError(t, Validate(2, cand, existing))
}

func TestValidate_MidnightCrossingUsesUnwrappedLine(t *testing.T) {
	// Сессия 23:30 + 60 минут занимает минуты 1410..1470 и не должна
	// давать ложную доступность после полуночи
	existing := []*domain.Reservation{
		reservation(domain.StationVR, 1, mustParse(t, "11:30 pm"), 60, domain.StatusConfirmed),
	}

	cand := Candidate{
		StationType:     domain.StationVR,
		Start:           clock.Minute(1440), // 12:00 am следующего отрезка
		DurationMinutes: 30,
		Quantity:        1,
	}

	err := Validate(1, cand, existing)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

// Scenario continuation: the scanner must report 7:00 pm, the first
// minute both units are free again.
func TestNextAvailable_FindsFirstFreeStep(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.StationPS5, 1, mustParse(t, "6:00 pm"), 60, domain.StatusConfirmed),
	}

	cand := Candidate{
		StationType:     domain.StationPS5,
		Start:           mustParse(t, "6:30 pm"),
		DurationMinutes: 30,
		Quantity:        2,
	}

	next, err := NextAvailable(2, cand, existing, 15, clock.Minute(clock.MinutesPerDay))
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, "7:00 pm"), next)
	assert.Equal(t, "7:00 pm", next.Clock())
}

func TestNextAvailable_ReturnsCandidateStartWhenItFits(t *testing.T) {
	cand := Candidate{
		StationType:     domain.StationPS5,
		Start:           mustParse(t, "6:30 pm"),
		DurationMinutes: 30,
		Quantity:        1,
	}

	next, err := NextAvailable(2, cand, nil, 15, clock.Minute(clock.MinutesPerDay))
	require.NoError(t, err)
	assert.Equal(t, cand.Start, next)
}

func TestNextAvailable_NoAvailabilityToday(t *testing.T) {
	// Обе станции заняты до закрытия
	existing := []*domain.Reservation{
		reservation(domain.StationPool, 2, mustParse(t, "10:00 pm"), 120, domain.StatusConfirmed),
	}

	cand := Candidate{
		StationType:     domain.StationPool,
		Start:           mustParse(t, "10:30 pm"),
		DurationMinutes: 60,
		Quantity:        1,
	}

	_, err := NextAvailable(2, cand, existing, 15, clock.Minute(clock.MinutesPerDay))
	require.ErrorIs(t, err, ErrNoAvailabilityToday)
}

func TestNextAvailable_AllStepsBeforeResultReject(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.StationPC, 3, mustParse(t, "2:00 pm"), 180, domain.StatusConfirmed),
		reservation(domain.StationPC, 1, mustParse(t, "4:00 pm"), 120, domain.StatusConfirmed),
	}

	cand := Candidate{
		StationType:     domain.StationPC,
		Start:           mustParse(t, "2:30 pm"),
		DurationMinutes: 60,
		Quantity:        2,
	}

	const step = 15
	next, err := NextAvailable(4, cand, existing, step, clock.Minute(clock.MinutesPerDay))
	require.NoError(t, err)

	probe := cand
	for tm := cand.Start; tm < next; tm += step {
		probe.Start = tm
		require.Error(t, Validate(4, probe, existing), "step %s must reject", tm.Clock())
	}

	probe.Start = next
	require.NoError(t, Validate(4, probe, existing))
}

// Randomized check of the capacity invariant: whenever Validate accepts,
// no minute of the candidate interval may push the per-minute occupancy
// over capacity (difference-array cross-check).
func TestValidate_RandomizedInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		capacity := 1 + rng.Intn(5)

		var existing []*domain.Reservation
		occupancy := make([]int, 2*clock.MinutesPerDay)

		// Наполняем день случайными бронями, которые сами по себе
		// не нарушают вместимость
		for i := 0; i < 20; i++ {
			start := clock.Minute(rng.Intn(clock.MinutesPerDay))
			duration := 30 * (1 + rng.Intn(6))
			quantity := 1 + rng.Intn(capacity)

			cand := Candidate{StationType: domain.StationPS5, Start: start, DurationMinutes: duration, Quantity: quantity}
			if Validate(capacity, cand, existing) != nil {
				continue
			}

			existing = append(existing, reservation(domain.StationPS5, quantity, start, duration, domain.StatusConfirmed))
			for m := int(start); m < int(start)+duration; m++ {
				occupancy[m] += quantity
			}
		}

		for m, occupied := range occupancy {
			require.LessOrEqual(t, occupied, capacity, "trial %d: minute %d oversubscribed", trial, m)
		}
	}
}
