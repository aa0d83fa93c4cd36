package reservations

import (
	"context"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListForDay(ctx context.Context, filter domain.DayFilter) ([]*domain.Reservation, error)
	ListForUser(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
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
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
