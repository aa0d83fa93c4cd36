// Package assignment раскладывает активные брони и членские таймеры по
// номерам физических станций для живого табло. Раскладка производная:
// она пересчитывается на каждом запросе статуса и нигде не хранится.
package assignment

import (
	"sort"
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/pkg/clock"
	"github.com/playgrid/PGC-StationService/pkg/ptr"
)

// Assign строит раскладку станций одного типа на момент now.
//
// Порядок назначения детерминированный:
//  1. членские таймеры занимают свои закрепленные номера станций;
//  2. брони, чей интервал покрывает now, раскладываются first-fit в
//     порядке поступления (created_at, затем id): каждая бронь занимает
//     quantity свободных станций с наименьшими номерами;
//  3. незанятые станции помечаются free.
//
// При одинаковых входах раскладка всегда одна и та же.
func Assign(
	st domain.StationType,
	capacity int,
	now time.Time,
	reservations []*domain.Reservation,
	timers []*domain.TimerSubscription,
) []domain.UnitAssignment {
	units := make([]domain.UnitAssignment, capacity)
	for i := range units {
		units[i] = domain.UnitAssignment{
			UnitNumber: i + 1,
			Label:      st.UnitLabel(i + 1),
			Status:     domain.UnitFree,
		}
	}

	// Шаг 1: закрепленные станции членских таймеров имеют приоритет
	for _, timer := range timers {
		if !timer.IsActive() || timer.StationType != st {
			continue
		}
		idx := timer.UnitNumber - 1
		if idx < 0 || idx >= capacity || !units[idx].IsFree() {
			continue
		}

		tmr := timer
		units[idx].Status = domain.UnitBusy
		units[idx].CustomerName = tmr.CustomerName
		units[idx].TimerID = &tmr.ID
		units[idx].ElapsedMinutes = ptr.Ptr(tmr.ElapsedMinutes(now))
		// Открытая сессия: remaining не определен
	}

	// Шаг 2: брони в порядке поступления, first-fit по свободным номерам
	active := coveringNow(st, now, reservations)
	sort.SliceStable(active, func(i, j int) bool {
		if !active[i].CreatedAt.Equal(active[j].CreatedAt) {
			return active[i].CreatedAt.Before(active[j].CreatedAt)
		}
		return active[i].ID < active[j].ID
	})

	for _, r := range active {
		res := r
		assigned := 0

		for i := range units {
			if assigned == res.Quantity {
				break
			}
			if !units[i].IsFree() {
				continue
			}

			remaining := remainingMinutes(res, now)
			units[i].Status = unitStatus(remaining)
			units[i].CustomerName = res.CustomerName
			units[i].ReservationID = &res.ID
			units[i].RemainingMinutes = ptr.Ptr(remaining)
			units[i].EndsAtClock = ptr.Ptr(res.EndMinute().Clock())
			assigned++
		}
	}

	return units
}

// coveringNow отбирает брони, чей интервал покрывает текущую минуту.
// Завершенные и отмененные сессии станцию не занимают.
func coveringNow(st domain.StationType, now time.Time, reservations []*domain.Reservation) []*domain.Reservation {
	nowMinute := minuteOfDay(now)

	covering := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.StationType != st {
			continue
		}
		if r.Status != domain.StatusPending && r.Status != domain.StatusConfirmed && r.Status != domain.StatusInProgress {
			continue
		}
		if r.StartMinute <= nowMinute && nowMinute < r.EndMinute() {
			covering = append(covering, r)
		}
	}

	return covering
}

func remainingMinutes(r *domain.Reservation, now time.Time) int {
	return int(r.EndMinute()) - int(minuteOfDay(now))
}

// unitStatus помечает станцию ending_soon в последние минуты сессии
func unitStatus(remaining int) domain.UnitStatus {
	if remaining > 0 && remaining <= domain.EndingSoonThresholdMinutes {
		return domain.UnitEndingSoon
	}
	return domain.UnitBusy
}

func minuteOfDay(now time.Time) clock.Minute {
	return clock.Minute(now.Hour()*60 + now.Minute())
}
