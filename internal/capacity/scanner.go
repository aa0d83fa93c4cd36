package capacity

import (
	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/pkg/clock"
)

// NextAvailable ищет самое раннее время t >= cand.Start, в которое
// кандидат проходит проверку вместимости. Время перебирается с
// фиксированным шагом stepMinutes до горизонта закрытия кафе; слот
// должен целиком закончиться до closeMinute. Если до конца дня ничего
// не нашлось, возвращается ErrNoAvailabilityToday.
//
// Сложность линейна по числу шагов и броней - для одного кафе это
// десятки записей, не тысячи.
func NextAvailable(
	capacity int,
	cand Candidate,
	reservations []*domain.Reservation,
	stepMinutes int,
	closeMinute clock.Minute,
) (clock.Minute, error) {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultScanStepMinutes
	}

	probe := cand
	for t := cand.Start; clock.IntervalEnd(t, cand.DurationMinutes) <= closeMinute; t += clock.Minute(stepMinutes) {
		probe.Start = t
		if err := Validate(capacity, probe, reservations); err == nil {
			return t, nil
		}
	}

	return 0, ErrNoAvailabilityToday
}
