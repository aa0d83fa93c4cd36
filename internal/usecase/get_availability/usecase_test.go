package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/PGC-StationService/internal/domain"
	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	"github.com/playgrid/PGC-StationService/pkg/clock"
)

type fakeReservationRepo struct {
	existing []*domain.Reservation
}

func (f *fakeReservationRepo) ListForDay(_ context.Context, _ domain.DayFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeConfigRepo struct {
	cfg   *domain.CafeConfig
	tiers []*domain.PricingTier
}

func (f *fakeConfigRepo) Get(_ context.Context, _ int64) (*domain.CafeConfig, error) {
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) ListTiers(_ context.Context, _ int64) ([]*domain.PricingTier, error) {
	return f.tiers, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustParse(t *testing.T, s string) clock.Minute {
	t.Helper()
	m, err := clock.Parse(s)
	require.NoError(t, err)
	return m
}

func testRequest() *Request {
	return &Request{
		CafeID:          1,
		StationType:     "ps5",
		Date:            time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		StartTime:       "6:30 pm",
		DurationMinutes: 30,
		Quantity:        2,
		PlayerCount:     2,
	}
}

func testFixture(t *testing.T) (*fakeReservationRepo, *fakeConfigRepo) {
	t.Helper()
	repo := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{
				StationType:     domain.StationPS5,
				Quantity:        1,
				StartMinute:     mustParse(t, "6:00 pm"),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	cfg := &fakeConfigRepo{
		cfg: &domain.CafeConfig{
			CafeID:      1,
			OpenMinute:  0,
			CloseMinute: clock.MinutesPerDay,
			Capacities:  map[domain.StationType]int{domain.StationPS5: 2},
		},
		tiers: []*domain.PricingTier{
			{StationType: domain.StationPS5, Players: 2, DurationMinutes: 30, Price: 40},
			{StationType: domain.StationPS5, Players: 2, DurationMinutes: 60, Price: 70},
		},
	}
	return repo, cfg
}

func TestExecute_ReportsShortfallAndNextFit(t *testing.T) {
	repo, cfg := testFixture(t)
	uc := NewUseCase(repo, cfg, 15, nopLogger{})

	// Одна из двух PS5 занята 18:00-19:00; двум станциям на 18:30
	// свободна только одна, обе помещаются с 19:00
	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, 1, resp.Remaining)
	require.NotNil(t, resp.NextAvailable)
	assert.Equal(t, "7:00 pm", *resp.NextAvailable)
	assert.Equal(t, 40, resp.UnitPrice)
	assert.Equal(t, 80, resp.TotalPrice)
}

func TestExecute_AvailableWhenRequestFits(t *testing.T) {
	repo, cfg := testFixture(t)
	uc := NewUseCase(repo, cfg, 15, nopLogger{})

	req := testRequest()
	req.Quantity = 1

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 1, resp.Remaining)
	assert.Nil(t, resp.NextAvailable)
}

func TestExecute_NoFitBeforeClose(t *testing.T) {
	repo, cfg := testFixture(t)
	cfg.cfg.CloseMinute = mustParse(t, "7:00 pm")
	uc := NewUseCase(repo, cfg, 15, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Nil(t, resp.NextAvailable)
}

func TestExecute_CafeNotConfigured(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeConfigRepo{}, 15, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestExecute_StationTypeNotOffered(t *testing.T) {
	repo, cfg := testFixture(t)
	uc := NewUseCase(repo, cfg, 15, nopLogger{})

	req := testRequest()
	req.StationType = "vr"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStationNotOffered)
}
