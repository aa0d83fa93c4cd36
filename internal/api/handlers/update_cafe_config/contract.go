package update_cafe_config

import (
	"context"

	"github.com/playgrid/PGC-StationService/internal/service/cafeconfig/models"
)

type ConfigService interface {
	Update(ctx context.Context, cafeID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
