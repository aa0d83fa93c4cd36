package start_timer

import (
	"context"

	"github.com/playgrid/PGC-StationService/internal/service/timers/models"
)

type TimerService interface {
	Start(ctx context.Context, req *models.StartTimerRequest) (*models.TimerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
