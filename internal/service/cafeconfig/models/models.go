package models

import (
	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/pkg/clock"
)

// Request модели

// TierRequest один тариф в запросе обновления конфигурации
type TierRequest struct {
	StationType     string `json:"stationType"`
	Players         int    `json:"players"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int    `json:"price"`
}

// UpdateConfigRequest запрос на обновление конфигурации кафе
type UpdateConfigRequest struct {
	OpenTime   string         `json:"openTime"`  // "10:00 am"
	CloseTime  string         `json:"closeTime"` // "11:00 pm"
	Capacities map[string]int `json:"capacities"`
	Tiers      []TierRequest  `json:"tiers"`
}

// ToDomainConfig конвертирует request в domain конфигурацию
func (r *UpdateConfigRequest) ToDomainConfig(cafeID int64) (*domain.CafeConfig, error) {
	openMinute, err := clock.Parse(r.OpenTime)
	if err != nil {
		return nil, err
	}
	closeMinute, err := clock.Parse(r.CloseTime)
	if err != nil {
		return nil, err
	}
	// "12:00 am" в качестве закрытия означает конец дня, не его начало
	if closeMinute == 0 {
		closeMinute = clock.MinutesPerDay
	}

	capacities := make(map[domain.StationType]int, len(r.Capacities))
	for name, capacity := range r.Capacities {
		st, err := domain.ParseStationType(name)
		if err != nil {
			return nil, err
		}
		capacities[st] = capacity
	}

	return &domain.CafeConfig{
		CafeID:      cafeID,
		OpenMinute:  openMinute,
		CloseMinute: closeMinute,
		Capacities:  capacities,
	}, nil
}

// ToDomainTiers конвертирует тарифы запроса в domain модели
func (r *UpdateConfigRequest) ToDomainTiers(cafeID int64) ([]*domain.PricingTier, error) {
	tiers := make([]*domain.PricingTier, 0, len(r.Tiers))
	for _, t := range r.Tiers {
		st, err := domain.ParseStationType(t.StationType)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, &domain.PricingTier{
			CafeID:          cafeID,
			StationType:     st,
			Players:         t.Players,
			DurationMinutes: t.DurationMinutes,
			Price:           t.Price,
		})
	}
	return tiers, nil
}

// Response модели

// TierResponse один тариф в ответе
type TierResponse struct {
	StationType     string `json:"stationType"`
	Players         int    `json:"players"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int    `json:"price"`
}

// ConfigResponse ответ с конфигурацией кафе
type ConfigResponse struct {
	CafeID     int64          `json:"cafeId"`
	OpenTime   string         `json:"openTime"`  // "10:00 am"
	CloseTime  string         `json:"closeTime"` // "11:00 pm"
	Capacities map[string]int `json:"capacities"`
	Tiers      []TierResponse `json:"tiers"`
}

// FromDomainConfig конвертирует domain модели в DTO
func FromDomainConfig(cfg *domain.CafeConfig, tiers []*domain.PricingTier) *ConfigResponse {
	capacities := make(map[string]int, len(cfg.Capacities))
	for st, capacity := range cfg.Capacities {
		capacities[string(st)] = capacity
	}

	tierList := make([]TierResponse, 0, len(tiers))
	for _, t := range tiers {
		tierList = append(tierList, TierResponse{
			StationType:     string(t.StationType),
			Players:         t.Players,
			DurationMinutes: t.DurationMinutes,
			Price:           t.Price,
		})
	}

	return &ConfigResponse{
		CafeID:     cfg.CafeID,
		OpenTime:   cfg.OpenMinute.Clock(),
		CloseTime:  cfg.CloseMinute.Clock(),
		Capacities: capacities,
		Tiers:      tierList,
	}
}
