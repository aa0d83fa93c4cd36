package tracker

import (
	"sync"
	"time"
)

// Tracker отслеживает завершения сессий. Единственное состояние -
// множество уже уведомленных сущностей, поэтому повторный вызов с теми
// же входами никогда не дает повторного события (at-most-once в рамках
// жизни процесса; после рестарта возможно повторное уведомление, что
// приемлемо для информационного события).
type Tracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// New создает трекер с пустой памятью уведомлений
func New() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// Tick просматривает текущий набор сессий на момент now и возвращает
// события для сессий, чье время вышло и о которых еще не сообщалось.
// Медленный или задержанный повторный вызов не дает двойных событий:
// сущность попадает в память при первом обнаружении перехода
// remaining <= 0.
func (t *Tracker) Tick(now time.Time, sessions []Session) []SessionEnded {
	t.mu.Lock()
	defer t.mu.Unlock()

	var events []SessionEnded

	for i := range sessions {
		s := &sessions[i]
		if !s.Ended(now) {
			continue
		}
		if _, notified := t.seen[s.ID]; notified {
			continue
		}

		t.seen[s.ID] = struct{}{}
		events = append(events, SessionEnded{
			EntityID:        s.ID,
			CustomerName:    s.CustomerName,
			StationLabel:    s.StationLabel,
			StationType:     string(s.StationType),
			DurationMinutes: s.DurationMinutes,
			EndedAt:         s.EndsAt,
			ReservationID:   s.ReservationID,
		})
	}

	return events
}

// Prune ограничивает память уведомлений: записи о сущностях, которых
// больше нет в живом наборе, удаляются. Вызывается после Tick, чтобы
// множество не росло бесконечно.
func (t *Tracker) Prune(live []Session) {
	t.mu.Lock()
	defer t.mu.Unlock()

	liveIDs := make(map[string]struct{}, len(live))
	for i := range live {
		liveIDs[live[i].ID] = struct{}{}
	}

	for id := range t.seen {
		if _, ok := liveIDs[id]; !ok {
			delete(t.seen, id)
		}
	}
}

// NotifiedCount возвращает размер памяти уведомлений (для тестов и метрик)
func (t *Tracker) NotifiedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
