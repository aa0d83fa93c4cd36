package create_booking

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
	"github.com/playgrid/PGC-StationService/pkg/txmanager"
)

// UseCase use case для создания бронирования станций
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	statusCache     StatusCache
	txManager       TransactionManager
	timeProvider    TimeProvider
	scanStepMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	statusCache StatusCache,
	txManager TransactionManager,
	scanStepMinutes int,
	logger Logger,
) *UseCase {
	if scanStepMinutes <= 0 {
		scanStepMinutes = domain.DefaultScanStepMinutes
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		statusCache:     statusCache,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		scanStepMinutes: scanStepMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка вместимости и вставка видят один снимок дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, cafe=%d, type=%s, quantity=%d, date=%s, time=%s, duration=%d",
		req.UserID, req.CafeID, req.StationType, req.Quantity,
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем тип станции
	st, err := domain.ParseStationType(req.StationType)
	if err != nil {
		uc.logger.Warn("CreateBooking: unknown station type=%s", req.StationType)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Разбираем время начала ("6:00 pm" -> минута дня)
	start, err := clock.Parse(req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time=%q", req.StartTime)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.StartTime)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем конфигурацию кафе
		cfg, err := uc.configRepo.Get(txCtx, req.CafeID)
		if err != nil {
			if errors.Is(err, configRepo.ErrConfigNotFound) {
				uc.logger.Warn("CreateBooking: cafe=%d not configured", req.CafeID)
				return ErrCafeNotFound
			}
			uc.logger.Error("CreateBooking: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		stationCapacity := cfg.Capacity(st)
		if stationCapacity == 0 {
			uc.logger.Warn("CreateBooking: cafe=%d has no %s stations", req.CafeID, st)
			return ErrStationNotOffered
		}

		// 4.2. Проверяем часы работы
		if err := validateWorkingHours(cfg, start, req.DurationMinutes); err != nil {
			uc.logger.Warn("CreateBooking: interval %s+%dmin outside working hours of cafe=%d",
				req.StartTime, req.DurationMinutes, req.CafeID)
			return err
		}

		// 4.3. Получаем активные брони этого типа на дату с блокировкой (FOR UPDATE)
		filter := domain.DayFilter{
			CafeID:      req.CafeID,
			Date:        req.Date,
			StationType: ptr.Ptr(st),
		}
		reservations, err := uc.reservationRepo.ListForDay(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 4.4. Проверяем вместимость на каждой минуте интервала
		cand := capacity.Candidate{
			StationType:     st,
			Start:           start,
			DurationMinutes: req.DurationMinutes,
			Quantity:        req.Quantity,
		}
		if err := capacity.Validate(stationCapacity, cand, reservations); err != nil {
			var capErr *capacity.CapacityError
			if !errors.As(err, &capErr) {
				uc.logger.Error("CreateBooking: capacity check failed: %v", err)
				return fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
			}

			// Подсказываем ближайшее время, когда запрос поместится
			capacityErr := &CapacityError{Available: capErr.Available}
			if next, scanErr := capacity.NextAvailable(stationCapacity, cand, reservations, uc.scanStepMinutes, cfg.CloseMinute); scanErr == nil {
				capacityErr.NextAvailable = ptr.Ptr(next.Clock())
			}
			uc.logger.Warn("CreateBooking: capacity exceeded for cafe=%d, type=%s: %d available, next=%v",
				req.CafeID, st, capacityErr.Available, capacityErr.NextAvailable)
			return capacityErr
		}

		// 4.5. Считаем цену по таблице тарифов
		tiers, err := uc.configRepo.ListTiers(txCtx, req.CafeID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list tiers: %v", err)
			return fmt.Errorf("%w: failed to list tiers: %v", ErrInternal, err)
		}
		quote := pricing.Resolve(domain.NewTierTable(tiers), st, req.PlayerCount, req.DurationMinutes)
		if quote.Undefined {
			// Бронь проходит с нулевой ценой, но помечается для ручной
			// проверки персоналом
			uc.logger.Warn("CreateBooking: no pricing tier for cafe=%d, type=%s, players=%d, duration=%d",
				req.CafeID, st, req.PlayerCount, req.DurationMinutes)
		}

		// 4.6. Создаем бронирование
		res := &domain.Reservation{
			CafeID:          req.CafeID,
			UserID:          req.UserID,
			StationType:     st,
			Quantity:        req.Quantity,
			PlayerCount:     req.PlayerCount,
			Date:            req.Date,
			StartMinute:     start,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusConfirmed,
			CustomerName:    req.CustomerName,
			UnitPrice:       quote.UnitPrice,
			TotalPrice:      quote.Total(req.Quantity),
			PriceFlagged:    quote.Undefined,
			Notes:           req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationConflict) {
			uc.logger.Warn("CreateBooking: serialization retries exhausted for cafe=%d: %v", req.CafeID, err)
			return nil, ErrConcurrentConflict
		}
		return nil, err
	}

	// 5. Снимаем снимок живого статуса кафе
	if err := uc.statusCache.Invalidate(ctx, req.CafeID); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate status cache for cafe=%d: %v", req.CafeID, err)
	}

	uc.logger.Info("CreateBooking: successfully created reservation id=%d, total=%d", result.ID, result.TotalPrice)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		CafeID:          result.CafeID,
		StationType:     string(result.StationType),
		Quantity:        result.Quantity,
		PlayerCount:     result.PlayerCount,
		Date:            result.Date.Format(domain.DateFormat),
		StartTime:       result.StartMinute.Clock(),
		EndTime:         result.EndMinute().Clock(),
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CustomerName:    result.CustomerName,
		UnitPrice:       result.UnitPrice,
		TotalPrice:      result.TotalPrice,
		PriceFlagged:    result.PriceFlagged,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
