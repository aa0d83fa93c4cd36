package get_live_status

import (
	"context"

	getLiveStatus "github.com/playgrid/PGC-StationService/internal/usecase/get_live_status"
)

type LiveStatusUseCase interface {
	Execute(ctx context.Context, cafeID int64) (*getLiveStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
