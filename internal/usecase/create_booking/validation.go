package create_booking

import (
	"fmt"
	"strings"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/pkg/clock"
)

// validateRequest проверяет входные данные до обращения к БД
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}
	if req.CafeID <= 0 {
		return fmt.Errorf("%w: cafe ID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.StationType) == "" {
		return fmt.Errorf("%w: station type is required", ErrInvalidInput)
	}
	if req.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	if req.PlayerCount < 1 {
		return fmt.Errorf("%w: player count must be at least 1", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.TierDurationShort {
		return fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.TierDurationShort)
	}
	if req.DurationMinutes%domain.TierDurationShort != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes", ErrInvalidInput, domain.TierDurationShort)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	return nil
}

// validateWorkingHours проверяет, что интервал укладывается в часы
// работы кафе. Для круглосуточных кафе (закрытие в полночь) сессия
// может переходить на следующие сутки, поэтому верхняя граница не
// проверяется.
func validateWorkingHours(cfg *domain.CafeConfig, start clock.Minute, durationMinutes int) error {
	if start < cfg.OpenMinute || start >= cfg.CloseMinute {
		return ErrOutsideWorkingHours
	}
	if cfg.CloseMinute == clock.MinutesPerDay {
		return nil
	}
	if clock.IntervalEnd(start, durationMinutes) > cfg.CloseMinute {
		return ErrOutsideWorkingHours
	}
	return nil
}
