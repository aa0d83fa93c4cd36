// Package capacity решает, помещается ли запрашиваемая бронь в
// фиксированный парк станций кафе. Проверка и сканер - чистые функции
// от своих входов: их можно запускать из любого числа горутин.
package capacity

import (
	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/pkg/clock"
)

// Candidate описывает запрашиваемый слот бронирования
type Candidate struct {
	StationType     domain.StationType
	Start           clock.Minute
	DurationMinutes int
	Quantity        int // количество физических станций
}

// End возвращает конец интервала кандидата на неразвернутой
// минутной оси (может превышать 1440 при переходе через полночь)
func (c Candidate) End() clock.Minute {
	return clock.IntervalEnd(c.Start, c.DurationMinutes)
}

// Committed суммирует quantity всех активных броней, чьи интервалы
// пересекают интервал кандидата. Границы интервалов не считаются
// пересечением: бронь, заканчивающаяся ровно в начале кандидата,
// не занимает ни одной его минуты.
func Committed(cand Candidate, reservations []*domain.Reservation) int {
	committed := 0

	for _, r := range reservations {
		// Отмененные брони не занимают станции
		if !r.IsActive() {
			continue
		}
		if r.StationType != cand.StationType {
			continue
		}
		if r.Overlaps(cand.Start, cand.End()) {
			committed += r.Quantity
		}
	}

	return committed
}

// Validate принимает кандидата, если на каждой минуте его интервала
// хватает свободных станций: committed + quantity <= capacity.
// При отказе возвращает *CapacityError с количеством оставшихся станций.
func Validate(capacity int, cand Candidate, reservations []*domain.Reservation) error {
	committed := Committed(cand, reservations)

	available := capacity - committed
	if available < 0 {
		available = 0
	}

	if committed+cand.Quantity > capacity {
		return &CapacityError{Available: available}
	}

	return nil
}
