package get_active_timers

import (
	"context"

	"github.com/playgrid/PGC-StationService/internal/service/timers/models"
)

type TimerService interface {
	ListActive(ctx context.Context, cafeID int64) (*models.TimerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
