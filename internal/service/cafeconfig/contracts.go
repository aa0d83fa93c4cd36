package cafeconfig

import (
	"context"

	"github.com/playgrid/PGC-StationService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации кафе
type ConfigRepository interface {
	Get(ctx context.Context, cafeID int64) (*domain.CafeConfig, error)
	Upsert(ctx context.Context, cfg *domain.CafeConfig) error
	ListTiers(ctx context.Context, cafeID int64) ([]*domain.PricingTier, error)
	ReplaceTiers(ctx context.Context, cafeID int64, tiers []*domain.PricingTier) error
}

// StatusCache интерфейс кеша живого статуса
type StatusCache interface {
	Invalidate(ctx context.Context, cafeID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
