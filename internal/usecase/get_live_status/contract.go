package get_live_status

import (
	"context"
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListForDay(ctx context.Context, filter domain.DayFilter) ([]*domain.Reservation, error)
}

// TimerRepository интерфейс репозитория таймеров
type TimerRepository interface {
	ListActive(ctx context.Context, cafeID int64) ([]*domain.TimerSubscription, error)
}

// ConfigRepository интерфейс репозитория конфигурации кафе
type ConfigRepository interface {
	Get(ctx context.Context, cafeID int64) (*domain.CafeConfig, error)
}

// StatusCache интерфейс кеша живого статуса
type StatusCache interface {
	Get(ctx context.Context, cafeID int64) ([]byte, error)
	Set(ctx context.Context, cafeID int64, snapshot []byte) error
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
