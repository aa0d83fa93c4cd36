package get_availability

import (
	"context"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListForDay(ctx context.Context, filter domain.DayFilter) ([]*domain.Reservation, error)
}

// ConfigRepository интерфейс репозитория конфигурации кафе
type ConfigRepository interface {
	Get(ctx context.Context, cafeID int64) (*domain.CafeConfig, error)
	ListTiers(ctx context.Context, cafeID int64) ([]*domain.PricingTier, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
