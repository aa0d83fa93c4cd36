package get_live_status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/playgrid/PGC-StationService/internal/assignment"
	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/internal/infra/cache/statuscache"
	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	"github.com/playgrid/PGC-StationService/pkg/clock"
)

// UseCase use case живого статуса кафе для дашборда оператора.
// Снимок короткоживущий и кешируется в Redis: дашборды опрашивают
// сервис чаще, чем меняется занятость станций.
type UseCase struct {
	reservationRepo ReservationRepository
	timerRepo       TimerRepository
	configRepo      ConfigRepository
	statusCache     StatusCache
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	timerRepo TimerRepository,
	configRepo ConfigRepository,
	statusCache StatusCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timerRepo:       timerRepo,
		configRepo:      configRepo,
		statusCache:     statusCache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute собирает снимок живого статуса кафе
func (uc *UseCase) Execute(ctx context.Context, cafeID int64) (*Response, error) {
	if cafeID <= 0 {
		return nil, fmt.Errorf("%w: cafe ID must be positive", ErrInvalidInput)
	}

	// 1. Пробуем кеш
	if data, err := uc.statusCache.Get(ctx, cafeID); err == nil {
		var cached Response
		if err := json.Unmarshal(data, &cached); err == nil {
			uc.logger.Info("GetLiveStatus: cache hit for cafe=%d", cafeID)
			return &cached, nil
		}
		uc.logger.Warn("GetLiveStatus: corrupt cache entry for cafe=%d, rebuilding", cafeID)
	} else if !errors.Is(err, statuscache.ErrCacheMiss) {
		uc.logger.Warn("GetLiveStatus: cache error for cafe=%d: %v", cafeID, err)
	}

	// 2. Получаем конфигурацию кафе
	cfg, err := uc.configRepo.Get(ctx, cafeID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetLiveStatus: cafe=%d not configured", cafeID)
			return nil, ErrCafeNotFound
		}
		uc.logger.Error("GetLiveStatus: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 3. Собираем брони, способные идти прямо сейчас: сегодняшние плюс
	// вчерашние, перешедшие за полночь
	reservations, err := uc.loadRunningReservations(ctx, cafeID, now)
	if err != nil {
		return nil, err
	}

	// 4. Активные членские таймеры
	timers, err := uc.timerRepo.ListActive(ctx, cafeID)
	if err != nil {
		uc.logger.Error("GetLiveStatus: failed to list timers: %v", err)
		return nil, fmt.Errorf("%w: failed to list timers: %v", ErrInternal, err)
	}

	// 5. Раскладываем занятость по станциям каждого типа
	resp := &Response{
		CafeID:      cafeID,
		GeneratedAt: now,
		Stations:    make([]StationGroup, 0, len(cfg.Capacities)),
	}
	for _, st := range domain.AllStationTypes {
		capacity := cfg.Capacity(st)
		if capacity == 0 {
			continue
		}
		units := assignment.Assign(st, capacity, now, reservations, timers)
		resp.Stations = append(resp.Stations, fromAssignments(st, units))
	}

	// 6. Кладем снимок в кеш; ошибка кеша не ломает ответ
	if data, err := json.Marshal(resp); err == nil {
		if err := uc.statusCache.Set(ctx, cafeID, data); err != nil {
			uc.logger.Warn("GetLiveStatus: failed to cache snapshot for cafe=%d: %v", cafeID, err)
		}
	}

	uc.logger.Info("GetLiveStatus: built snapshot for cafe=%d, %d station groups", cafeID, len(resp.Stations))
	return resp, nil
}

// loadRunningReservations загружает сегодняшние брони и вчерашние,
// перешедшие за полночь. Вчерашние сдвигаются на сегодняшнюю ось
// минут (отрицательное начало), чтобы раскладка видела их идущими.
func (uc *UseCase) loadRunningReservations(ctx context.Context, cafeID int64, now time.Time) ([]*domain.Reservation, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	reservations, err := uc.reservationRepo.ListForDay(ctx, domain.DayFilter{CafeID: cafeID, Date: today})
	if err != nil {
		uc.logger.Error("GetLiveStatus: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	yesterdays, err := uc.reservationRepo.ListForDay(ctx, domain.DayFilter{CafeID: cafeID, Date: today.AddDate(0, 0, -1)})
	if err != nil {
		uc.logger.Error("GetLiveStatus: failed to list yesterday reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}
	for _, r := range yesterdays {
		if r.EndMinute() <= clock.MinutesPerDay {
			continue
		}
		shifted := *r
		shifted.StartMinute -= clock.MinutesPerDay
		reservations = append(reservations, &shifted)
	}

	return reservations, nil
}
