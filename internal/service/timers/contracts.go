package timers

import (
	"context"
	"time"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/internal/integrations/memberservice"
)

// TimerRepository интерфейс репозитория таймеров
type TimerRepository interface {
	Create(ctx context.Context, t *domain.TimerSubscription) (*domain.TimerSubscription, error)
	GetByID(ctx context.Context, id string) (*domain.TimerSubscription, error)
	ListActive(ctx context.Context, cafeID int64) ([]*domain.TimerSubscription, error)
	Stop(ctx context.Context, id string) error
}

// ConfigRepository интерфейс репозитория конфигурации кафе
type ConfigRepository interface {
	Get(ctx context.Context, cafeID int64) (*domain.CafeConfig, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMemberWithGracefulDegradation(ctx context.Context, memberID int64) (*memberservice.Member, error)
}

// StatusCache интерфейс кеша живого статуса
type StatusCache interface {
	Invalidate(ctx context.Context, cafeID int64) error
}

// TimeProvider интерфейс для получения текущего времени
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
