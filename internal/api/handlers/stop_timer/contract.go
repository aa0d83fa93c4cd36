package stop_timer

import (
	"context"

	"github.com/playgrid/PGC-StationService/internal/service/timers/models"
)

type TimerService interface {
	Stop(ctx context.Context, timerID string) (*models.TimerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
