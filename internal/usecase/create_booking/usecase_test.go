package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/PGC-StationService/internal/domain"
	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	"github.com/playgrid/PGC-StationService/pkg/clock"
	"github.com/playgrid/PGC-StationService/pkg/txmanager"
)

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  []*domain.Reservation
	nextID   int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.created = append(f.created, res)
	return res, nil
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

type fakeCache struct {
	invalidated []int64
}

func (f *fakeCache) Invalidate(_ context.Context, cafeID int64) error {
	f.invalidated = append(f.invalidated, cafeID)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func testConfig() *domain.CafeConfig {
	return &domain.CafeConfig{
		CafeID:      1,
		OpenMinute:  0,
		CloseMinute: clock.MinutesPerDay,
		Capacities: map[domain.StationType]int{
			domain.StationPS5: 2,
			domain.StationPC:  10,
		},
	}
}

func testTiers() []*domain.PricingTier {
	return []*domain.PricingTier{
		{CafeID: 1, StationType: domain.StationPS5, Players: 2, DurationMinutes: 30, Price: 40},
		{CafeID: 1, StationType: domain.StationPS5, Players: 2, DurationMinutes: 60, Price: 70},
	}
}

func validRequest() *Request {
	return &Request{
		UserID:          10,
		CafeID:          1,
		StationType:     "ps5",
		Quantity:        1,
		PlayerCount:     2,
		Date:            time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		StartTime:       "6:00 pm",
		DurationMinutes: 60,
		CustomerName:    "Alice",
	}
}

func newUseCase(repo *fakeReservationRepo, cfg *fakeConfigRepo, cache *fakeCache) *UseCase {
	return NewUseCase(repo, cfg, cache, fakeTxManager{}, 15, nopLogger{})
}

func TestExecute_CreatesConfirmedReservation(t *testing.T) {
	repo := &fakeReservationRepo{}
	cache := &fakeCache{}
	uc := newUseCase(repo, &fakeConfigRepo{cfg: testConfig(), tiers: testTiers()}, cache)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "6:00 pm", resp.StartTime)
	assert.Equal(t, "7:00 pm", resp.EndTime)
	assert.Equal(t, 70, resp.UnitPrice)
	assert.Equal(t, 70, resp.TotalPrice)
	assert.False(t, resp.PriceFlagged)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestExecute_NinetyMinutesPricedAsSumOfSubTiers(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newUseCase(repo, &fakeConfigRepo{cfg: testConfig(), tiers: testTiers()}, &fakeCache{})

	req := validRequest()
	req.Quantity = 2
	req.DurationMinutes = 90

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 90 = 60 + 30: 70 + 40 за станцию, две станции
	assert.Equal(t, 110, resp.UnitPrice)
	assert.Equal(t, 220, resp.TotalPrice)
	assert.False(t, resp.PriceFlagged)
}

func TestExecute_MissingTiersFlagPriceForReview(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newUseCase(repo, &fakeConfigRepo{cfg: testConfig(), tiers: nil}, &fakeCache{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Zero(t, resp.UnitPrice)
	assert.Zero(t, resp.TotalPrice)
	assert.True(t, resp.PriceFlagged)
}

func TestExecute_CapacityExceededSuggestsNextFit(t *testing.T) {
	// Обе PS5 заняты 18:00-19:00; запрос двух станций на 18:30
	// помещается только с 19:00
	repo := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{
				StationType:     domain.StationPS5,
				Quantity:        2,
				StartMinute:     mustParse(t, "6:00 pm"),
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	uc := newUseCase(repo, &fakeConfigRepo{cfg: testConfig(), tiers: testTiers()}, &fakeCache{})

	req := validRequest()
	req.Quantity = 2
	req.StartTime = "6:30 pm"
	req.DurationMinutes = 30

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 0, capErr.Available)
	require.NotNil(t, capErr.NextAvailable)
	assert.Equal(t, "7:00 pm", *capErr.NextAvailable)
	assert.Empty(t, repo.created)
}

func TestExecute_StationTypeNotOffered(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeConfigRepo{cfg: testConfig()}, &fakeCache{})

	req := validRequest()
	req.StationType = "snooker"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStationNotOffered)
}

func TestExecute_CafeNotConfigured(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeConfigRepo{}, &fakeCache{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	cfg := testConfig()
	cfg.OpenMinute = mustParse(t, "10:00 am")
	cfg.CloseMinute = mustParse(t, "11:00 pm")
	uc := newUseCase(&fakeReservationRepo{}, &fakeConfigRepo{cfg: cfg, tiers: testTiers()}, &fakeCache{})

	req := validRequest()
	req.StartTime = "10:30 pm"
	req.DurationMinutes = 60

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_MidnightCrossingAllowedWhenOpenAroundTheClock(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newUseCase(repo, &fakeConfigRepo{cfg: testConfig(), tiers: testTiers()}, &fakeCache{})

	req := validRequest()
	req.StartTime = "11:30 pm"
	req.DurationMinutes = 60

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "12:30 am", resp.EndTime)
}

func TestExecute_RejectsInvalidInput(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeConfigRepo{cfg: testConfig()}, &fakeCache{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero quantity", func(r *Request) { r.Quantity = 0 }},
		{"zero players", func(r *Request) { r.PlayerCount = 0 }},
		{"duration not multiple of 30", func(r *Request) { r.DurationMinutes = 45 }},
		{"empty customer name", func(r *Request) { r.CustomerName = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	req := validRequest()
	req.StartTime = "25:99"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

type conflictTxManager struct{}

func (conflictTxManager) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return fmt.Errorf("%w: giving up after 3 attempts", txmanager.ErrSerializationConflict)
}

func TestExecute_SerializationConflictMapsToConcurrentConflict(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeConfigRepo{cfg: testConfig(), tiers: testTiers()},
		&fakeCache{}, conflictTxManager{}, 15, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrConcurrentConflict)
}
