// Package tracker следит за идущими сессиями (брони in_progress и
// активные членские таймеры) и ровно один раз сообщает о каждом
// завершении. Трекер не владеет временем: его дергают снаружи с
// текущим временем и текущим набором сессий, поэтому он тестируется
// без реальных часов.
package tracker

import (
	"fmt"
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// Session единый вид отслеживаемой сущности: ограниченная по времени
// бронь или открытый членский таймер
type Session struct {
	ID           string // "reservation:<id>" или "timer:<uuid>"
	CustomerName string
	StationLabel string
	StationType  domain.StationType

	// ограниченные сессии
	DurationMinutes int
	EndsAt          time.Time

	// OpenEnded: сессия без запланированного конца, remaining не
	// определен, завершение не наступает
	OpenEnded bool
	StartedAt time.Time

	// ReservationID заполнен для сессий-броней: по завершении бронь
	// переводится в completed
	ReservationID *int64
}

// RemainingMinutes осталось минут до конца; отрицательно после конца.
// Для открытых сессий не определено и возвращает 0.
func (s *Session) RemainingMinutes(now time.Time) int {
	if s.OpenEnded {
		return 0
	}
	return int(s.EndsAt.Sub(now) / time.Minute)
}

// ElapsedMinutes прошло минут с начала сессии; без верхней границы
func (s *Session) ElapsedMinutes(now time.Time) int {
	return int(now.Sub(s.StartedAt) / time.Minute)
}

// Ended сообщает, что время ограниченной сессии вышло
func (s *Session) Ended(now time.Time) bool {
	return !s.OpenEnded && !s.EndsAt.After(now)
}

// FromReservation строит сессию из идущей брони
func FromReservation(r *domain.Reservation) Session {
	id := r.ID
	midnight := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, r.Date.Location())

	return Session{
		ID:              fmt.Sprintf("reservation:%d", r.ID),
		CustomerName:    r.CustomerName,
		StationLabel:    r.StationType.Label(),
		StationType:     r.StationType,
		DurationMinutes: r.DurationMinutes,
		EndsAt:          r.EndsAt(),
		StartedAt:       midnight.Add(time.Duration(r.StartMinute) * time.Minute),
		ReservationID:   &id,
	}
}

// FromTimer строит открытую сессию из членского таймера
func FromTimer(t *domain.TimerSubscription) Session {
	return Session{
		ID:           fmt.Sprintf("timer:%s", t.ID),
		CustomerName: t.CustomerName,
		StationLabel: t.UnitLabel(),
		StationType:  t.StationType,
		OpenEnded:    true,
		StartedAt:    t.StartedAt,
	}
}

// SessionEnded одноразовое уведомление о завершении сессии.
// Информационное событие для презентационного слоя, не ошибка.
type SessionEnded struct {
	EntityID        string    `json:"entity_id"`
	CustomerName    string    `json:"customer_name"`
	StationLabel    string    `json:"station_label"`
	StationType     string    `json:"station_type"`
	DurationMinutes int       `json:"duration_minutes"`
	EndedAt         time.Time `json:"ended_at"`

	ReservationID *int64 `json:"reservation_id,omitempty"`
}
