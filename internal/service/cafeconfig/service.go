package cafeconfig

import (
	"context"
	"errors"
	"fmt"

	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	"github.com/playgrid/PGC-StationService/internal/service/cafeconfig/models"
)

// Service сервис для работы с конфигурацией кафе
type Service struct {
	configRepo  ConfigRepository
	statusCache StatusCache
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса конфигурации кафе
func NewService(
	configRepo ConfigRepository,
	statusCache StatusCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo:  configRepo,
		statusCache: statusCache,
		txManager:   txManager,
		logger:      logger,
	}
}

// Get получает конфигурацию кафе вместе с таблицей тарифов
func (s *Service) Get(ctx context.Context, cafeID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for cafe=%d", cafeID)

	cfg, err := s.configRepo.Get(ctx, cafeID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Get: config for cafe=%d not found", cafeID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Get: repository error for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	tiers, err := s.configRepo.ListTiers(ctx, cafeID)
	if err != nil {
		s.logger.Error("Get: failed to fetch tiers for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched config for cafe=%d, %d tiers", cafeID, len(tiers))
	return models.FromDomainConfig(cfg, tiers), nil
}

// Update перезаписывает конфигурацию кафе: часы работы, вместимость и
// таблицу тарифов. Выполняется в одной транзакции, чтобы проверка
// вместимости не увидела полузаписанную конфигурацию.
func (s *Service) Update(ctx context.Context, cafeID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for cafe=%d", cafeID)

	cfg, err := req.ToDomainConfig(cafeID)
	if err != nil {
		s.logger.Warn("Update: invalid config for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := cfg.Validate(); err != nil {
		s.logger.Warn("Update: config validation failed for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	tiers, err := req.ToDomainTiers(cafeID)
	if err != nil {
		s.logger.Warn("Update: invalid tiers for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.configRepo.Upsert(ctx, cfg); err != nil {
			return err
		}
		return s.configRepo.ReplaceTiers(ctx, cafeID, tiers)
	})
	if err != nil {
		s.logger.Error("Update: transaction failed for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: Update - transaction failed: %v", ErrInternal, err)
	}

	// Вместимость могла уменьшиться - снимок живого статуса устарел
	if err := s.statusCache.Invalidate(ctx, cafeID); err != nil {
		s.logger.Warn("Update: failed to invalidate status cache for cafe=%d: %v", cafeID, err)
	}

	s.logger.Info("Update: successfully updated config for cafe=%d", cafeID)
	return models.FromDomainConfig(cfg, tiers), nil
}
