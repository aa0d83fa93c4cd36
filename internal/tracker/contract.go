package tracker

import (
	"context"
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней для трекера
type ReservationRepository interface {
	ListRunning(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// TimerRepository интерфейс репозитория членских таймеров
type TimerRepository interface {
	ListActive(ctx context.Context) ([]*domain.TimerSubscription, error)
}

// EventPublisher публикует события завершения сессий в ленту уведомлений
type EventPublisher interface {
	PublishSessionEnded(ctx context.Context, event SessionEnded) error
}

// MetricsCollector интерфейс метрик трекера
type MetricsCollector interface {
	IncSessionsEnded(stationType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
