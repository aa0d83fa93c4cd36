package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/playgrid/PGC-StationService/internal/capacity"
	"github.com/playgrid/PGC-StationService/internal/domain"
	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	"github.com/playgrid/PGC-StationService/internal/pricing"
	"github.com/playgrid/PGC-StationService/pkg/clock"
	"github.com/playgrid/PGC-StationService/pkg/ptr"
)

// UseCase use case проверки доступности станций.
// Чистое чтение без блокировок: ответ информационный, настоящая
// проверка повторяется в сериализуемой транзакции при создании брони.
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	scanStepMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	scanStepMinutes int,
	logger Logger,
) *UseCase {
	if scanStepMinutes <= 0 {
		scanStepMinutes = domain.DefaultScanStepMinutes
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		scanStepMinutes: scanStepMinutes,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: cafe=%d, type=%s, date=%s, time=%s, duration=%d, quantity=%d",
		req.CafeID, req.StationType, req.Date.Format(domain.DateFormat),
		req.StartTime, req.DurationMinutes, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	st, err := domain.ParseStationType(req.StationType)
	if err != nil {
		uc.logger.Warn("GetAvailability: unknown station type=%s", req.StationType)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := clock.Parse(req.StartTime)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid start time=%q", req.StartTime)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.StartTime)
	}

	// 2. Получаем конфигурацию кафе
	cfg, err := uc.configRepo.Get(ctx, req.CafeID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailability: cafe=%d not configured", req.CafeID)
			return nil, ErrCafeNotFound
		}
		uc.logger.Error("GetAvailability: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	stationCapacity := cfg.Capacity(st)
	if stationCapacity == 0 {
		uc.logger.Warn("GetAvailability: cafe=%d has no %s stations", req.CafeID, st)
		return nil, ErrStationNotOffered
	}

	// 3. Получаем активные брони этого типа на дату
	reservations, err := uc.reservationRepo.ListForDay(ctx, domain.DayFilter{
		CafeID:      req.CafeID,
		Date:        req.Date,
		StationType: ptr.Ptr(st),
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 4. Проверяем запрошенный интервал
	cand := capacity.Candidate{
		StationType:     st,
		Start:           start,
		DurationMinutes: req.DurationMinutes,
		Quantity:        req.Quantity,
	}

	resp := &Response{
		Remaining: stationCapacity - capacity.Committed(cand, reservations),
	}
	if resp.Remaining < 0 {
		resp.Remaining = 0
	}
	resp.Available = capacity.Validate(stationCapacity, cand, reservations) == nil

	// 5. Если не помещается - ищем ближайшее подходящее время
	if !resp.Available {
		if next, scanErr := capacity.NextAvailable(stationCapacity, cand, reservations, uc.scanStepMinutes, cfg.CloseMinute); scanErr == nil {
			resp.NextAvailable = ptr.Ptr(next.Clock())
		}
	}

	// 6. Считаем предварительную цену
	tiers, err := uc.configRepo.ListTiers(ctx, req.CafeID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list tiers: %v", err)
		return nil, fmt.Errorf("%w: failed to list tiers: %v", ErrInternal, err)
	}
	quote := pricing.Resolve(domain.NewTierTable(tiers), st, req.PlayerCount, req.DurationMinutes)
	resp.UnitPrice = quote.UnitPrice
	resp.TotalPrice = quote.Total(req.Quantity)
	resp.PriceFlagged = quote.Undefined

	uc.logger.Info("GetAvailability: cafe=%d, type=%s: available=%v, remaining=%d, next=%v",
		req.CafeID, st, resp.Available, resp.Remaining, resp.NextAvailable)

	return resp, nil
}

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req.CafeID <= 0 {
		return fmt.Errorf("%w: cafe ID must be positive", ErrInvalidInput)
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
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
