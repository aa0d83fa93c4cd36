package timers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/internal/integrations/memberservice"
	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	timerRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/timer"
	"github.com/playgrid/PGC-StationService/internal/service/timers/models"
)

// Service сервис для работы с безлимитными таймерами членства
type Service struct {
	timerRepo    TimerRepository
	configRepo   ConfigRepository
	memberClient MemberServiceClient
	statusCache  StatusCache
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса таймеров
func NewService(
	timerRepo TimerRepository,
	configRepo ConfigRepository,
	memberClient MemberServiceClient,
	statusCache StatusCache,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		timerRepo:    timerRepo,
		configRepo:   configRepo,
		memberClient: memberClient,
		statusCache:  statusCache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start запускает таймер членства на конкретной станции.
//
// Станция фиксируется за таймером на всё время сессии: член клуба сидит
// за своей машиной, пока оператор не остановит таймер. Конца у сессии
// нет, поэтому проверяется только занятость станции сейчас, без
// календаря бронирований.
func (s *Service) Start(ctx context.Context, req *models.StartTimerRequest) (*models.TimerResponse, error) {
	s.logger.Info("Start: starting timer for member=%d at cafe=%d, unit=%d", req.MemberID, req.CafeID, req.UnitNumber)

	st, err := domain.ParseStationType(req.StationType)
	if err != nil {
		s.logger.Warn("Start: invalid station type=%s", req.StationType)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.UnitNumber < 1 {
		s.logger.Warn("Start: invalid unit number=%d", req.UnitNumber)
		return nil, fmt.Errorf("%w: unit number must be positive", ErrInvalidInput)
	}

	// Проверяем, что станция существует в парке кафе
	cfg, err := s.configRepo.Get(ctx, req.CafeID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Start: cafe=%d not configured", req.CafeID)
			return nil, ErrCafeNotFound
		}
		s.logger.Error("Start: failed to fetch config for cafe=%d: %v", req.CafeID, err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}
	if req.UnitNumber > cfg.Capacity(st) {
		s.logger.Warn("Start: unit=%d out of range for cafe=%d, type=%s (capacity %d)",
			req.UnitNumber, req.CafeID, st, cfg.Capacity(st))
		return nil, ErrUnitOutOfRange
	}

	// Проверяем, что станция не занята другим активным таймером
	active, err := s.timerRepo.ListActive(ctx, req.CafeID)
	if err != nil {
		s.logger.Error("Start: failed to list active timers for cafe=%d: %v", req.CafeID, err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}
	for _, t := range active {
		if t.StationType == st && t.UnitNumber == req.UnitNumber {
			s.logger.Warn("Start: unit %s occupied by timer=%s", st.UnitLabel(req.UnitNumber), t.ID)
			return nil, ErrUnitOccupied
		}
	}

	// Подтягиваем имя из MemberService; при недоступности сервиса
	// используем имя, введенное оператором
	customerName := req.CustomerName
	member, err := s.memberClient.GetMemberWithGracefulDegradation(ctx, req.MemberID)
	switch {
	case err == nil:
		if member.DisplayName != "" {
			customerName = member.DisplayName
		}
	case errors.Is(err, memberservice.ErrMemberNotFound):
		s.logger.Warn("Start: member=%d not found", req.MemberID)
		return nil, ErrMemberNotFound
	case errors.Is(err, memberservice.ErrMembershipInactive):
		s.logger.Warn("Start: membership inactive for member=%d", req.MemberID)
		return nil, ErrMembershipInactive
	case errors.Is(err, memberservice.ErrServiceDegraded):
		s.logger.Warn("Start: member service degraded, using operator-provided name for member=%d", req.MemberID)
	default:
		s.logger.Error("Start: member service error for member=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: Start - member service error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	timer := &domain.TimerSubscription{
		ID:           uuid.NewString(),
		CafeID:       req.CafeID,
		MemberID:     req.MemberID,
		CustomerName: customerName,
		StationType:  st,
		UnitNumber:   req.UnitNumber,
		StartedAt:    now,
		Status:       domain.TimerActive,
	}

	created, err := s.timerRepo.Create(ctx, timer)
	if err != nil {
		s.logger.Error("Start: failed to create timer for member=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}

	// Станция только что стала занятой - снимок живого статуса устарел
	if err := s.statusCache.Invalidate(ctx, req.CafeID); err != nil {
		s.logger.Warn("Start: failed to invalidate status cache for cafe=%d: %v", req.CafeID, err)
	}

	s.logger.Info("Start: timer=%s started for member=%d at %s", created.ID, req.MemberID, created.UnitLabel())
	return models.FromDomainTimer(created, now), nil
}

// Stop останавливает активный таймер и возвращает итоговое время сессии
func (s *Service) Stop(ctx context.Context, timerID string) (*models.TimerResponse, error) {
	s.logger.Info("Stop: stopping timer=%s", timerID)

	if err := s.timerRepo.Stop(ctx, timerID); err != nil {
		switch {
		case errors.Is(err, timerRepo.ErrTimerNotFound):
			s.logger.Warn("Stop: timer=%s not found", timerID)
			return nil, ErrTimerNotFound
		case errors.Is(err, timerRepo.ErrTimerAlreadyStopped):
			s.logger.Warn("Stop: timer=%s already stopped", timerID)
			return nil, ErrTimerAlreadyStopped
		default:
			s.logger.Error("Stop: repository error for timer=%s: %v", timerID, err)
			return nil, fmt.Errorf("%w: Stop - repository error: %v", ErrInternal, err)
		}
	}

	stopped, err := s.timerRepo.GetByID(ctx, timerID)
	if err != nil {
		s.logger.Error("Stop: failed to fetch stopped timer=%s: %v", timerID, err)
		return nil, fmt.Errorf("%w: Stop - repository error: %v", ErrInternal, err)
	}

	if err := s.statusCache.Invalidate(ctx, stopped.CafeID); err != nil {
		s.logger.Warn("Stop: failed to invalidate status cache for cafe=%d: %v", stopped.CafeID, err)
	}

	s.logger.Info("Stop: timer=%s stopped after %d minutes", timerID, models.FromDomainTimer(stopped, s.timeProvider.Now()).ElapsedMinutes)
	return models.FromDomainTimer(stopped, s.timeProvider.Now()), nil
}

// ListActive получает активные таймеры кафе для дашборда оператора
func (s *Service) ListActive(ctx context.Context, cafeID int64) (*models.TimerListResponse, error) {
	s.logger.Info("ListActive: fetching active timers for cafe=%d", cafeID)

	timers, err := s.timerRepo.ListActive(ctx, cafeID)
	if err != nil {
		s.logger.Error("ListActive: repository error for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActive: successfully fetched %d timers for cafe=%d", len(timers), cafeID)
	return models.FromDomainTimerList(timers, s.timeProvider.Now()), nil
}
