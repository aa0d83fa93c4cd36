package cafeconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/PGC-StationService/internal/domain"
	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	"github.com/playgrid/PGC-StationService/internal/service/cafeconfig/models"
	"github.com/playgrid/PGC-StationService/pkg/clock"
)

type fakeConfigRepo struct {
	cfg      *domain.CafeConfig
	tiers    []*domain.PricingTier
	upserted *domain.CafeConfig
	replaced []*domain.PricingTier
}

func (f *fakeConfigRepo) Get(_ context.Context, _ int64) (*domain.CafeConfig, error) {
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, cfg *domain.CafeConfig) error {
	f.upserted = cfg
	return nil
}

func (f *fakeConfigRepo) ListTiers(_ context.Context, _ int64) ([]*domain.PricingTier, error) {
	return f.tiers, nil
}

func (f *fakeConfigRepo) ReplaceTiers(_ context.Context, _ int64, tiers []*domain.PricingTier) error {
	f.replaced = tiers
	return nil
}

type fakeCache struct {
	invalidated []int64
}

func (f *fakeCache) Invalidate(_ context.Context, cafeID int64) error {
	f.invalidated = append(f.invalidated, cafeID)
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func updateRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		OpenTime:  "10:00 am",
		CloseTime: "11:00 pm",
		Capacities: map[string]int{
			"ps5": 4,
			"pc":  10,
		},
		Tiers: []models.TierRequest{
			{StationType: "ps5", Players: 2, DurationMinutes: 60, Price: 70},
		},
	}
}

func TestGet_ReturnsConfigWithTiers(t *testing.T) {
	repo := &fakeConfigRepo{
		cfg: &domain.CafeConfig{
			CafeID:      1,
			OpenMinute:  600,
			CloseMinute: 1380,
			Capacities:  map[domain.StationType]int{domain.StationPS5: 4},
		},
		tiers: []*domain.PricingTier{
			{CafeID: 1, StationType: domain.StationPS5, Players: 2, DurationMinutes: 60, Price: 70},
		},
	}
	svc := NewService(repo, &fakeCache{}, &fakeTxManager{}, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "10:00 am", resp.OpenTime)
	assert.Equal(t, "11:00 pm", resp.CloseTime)
	assert.Equal(t, 4, resp.Capacities["ps5"])
	require.Len(t, resp.Tiers, 1)
	assert.Equal(t, 70, resp.Tiers[0].Price)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, &fakeCache{}, &fakeTxManager{}, nopLogger{})

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestUpdate_PersistsTransactionallyAndInvalidates(t *testing.T) {
	repo := &fakeConfigRepo{}
	cache := &fakeCache{}
	tx := &fakeTxManager{}
	svc := NewService(repo, cache, tx, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, updateRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, clock.Minute(600), repo.upserted.OpenMinute)
	assert.Equal(t, clock.Minute(1380), repo.upserted.CloseMinute)
	require.Len(t, repo.replaced, 1)
	assert.Equal(t, []int64{1}, cache.invalidated)
	assert.Equal(t, "11:00 pm", resp.CloseTime)
}

func TestUpdate_MidnightCloseMeansEndOfDay(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, &fakeCache{}, &fakeTxManager{}, nopLogger{})

	req := updateRequest()
	req.CloseTime = "12:00 am"

	_, err := svc.Update(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, clock.Minute(clock.MinutesPerDay), repo.upserted.CloseMinute)
}

func TestUpdate_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.UpdateConfigRequest)
	}{
		{"unparseable open time", func(r *models.UpdateConfigRequest) { r.OpenTime = "25:00" }},
		{"unknown station type", func(r *models.UpdateConfigRequest) { r.Capacities = map[string]int{"gameboy": 1} }},
		{"open after close", func(r *models.UpdateConfigRequest) {
			r.OpenTime = "11:00 pm"
			r.CloseTime = "10:00 am"
		}},
		{"unknown tier station type", func(r *models.UpdateConfigRequest) {
			r.Tiers = []models.TierRequest{{StationType: "gameboy", Players: 1, DurationMinutes: 60, Price: 10}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeConfigRepo{}
			svc := NewService(repo, &fakeCache{}, &fakeTxManager{}, nopLogger{})

			req := updateRequest()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), 1, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}
