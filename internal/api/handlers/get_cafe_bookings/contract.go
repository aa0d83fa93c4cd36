package get_cafe_bookings

import (
	"context"

	"github.com/playgrid/PGC-StationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetCafeReservations(ctx context.Context, req *models.GetCafeReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
