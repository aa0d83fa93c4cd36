package create_booking

import (
	"context"
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListForDay(ctx context.Context, filter domain.DayFilter) ([]*domain.Reservation, error)
}

// ConfigRepository интерфейс репозитория конфигурации кафе
type ConfigRepository interface {
	Get(ctx context.Context, cafeID int64) (*domain.CafeConfig, error)
	ListTiers(ctx context.Context, cafeID int64) ([]*domain.PricingTier, error)
}

// StatusCache интерфейс кеша живого статуса
type StatusCache interface {
	Invalidate(ctx context.Context, cafeID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
