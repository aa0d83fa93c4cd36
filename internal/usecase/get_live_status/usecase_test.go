package get_live_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/internal/infra/cache/statuscache"
	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	"github.com/playgrid/PGC-StationService/pkg/clock"
	"github.com/playgrid/PGC-StationService/pkg/ptr"
)

type fakeReservationRepo struct {
	byDate map[string][]*domain.Reservation
}

func (f *fakeReservationRepo) ListForDay(_ context.Context, filter domain.DayFilter) ([]*domain.Reservation, error) {
	return f.byDate[filter.Date.Format(domain.DateFormat)], nil
}

type fakeTimerRepo struct {
	timers []*domain.TimerSubscription
}

func (f *fakeTimerRepo) ListActive(_ context.Context, _ int64) ([]*domain.TimerSubscription, error) {
	return f.timers, nil
}

type fakeConfigRepo struct {
	cfg *domain.CafeConfig
}

func (f *fakeConfigRepo) Get(_ context.Context, _ int64) (*domain.CafeConfig, error) {
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

type memoryCache struct {
	snapshots map[int64][]byte
	hits      int
}

func (m *memoryCache) Get(_ context.Context, cafeID int64) ([]byte, error) {
	if data, ok := m.snapshots[cafeID]; ok {
		m.hits++
		return data, nil
	}
	return nil, statuscache.ErrCacheMiss
}

func (m *memoryCache) Set(_ context.Context, cafeID int64, snapshot []byte) error {
	if m.snapshots == nil {
		m.snapshots = make(map[int64][]byte)
	}
	m.snapshots[cafeID] = snapshot
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testUseCase(repo *fakeReservationRepo, timers *fakeTimerRepo, cache *memoryCache, now time.Time) *UseCase {
	uc := NewUseCase(repo, timers, &fakeConfigRepo{
		cfg: &domain.CafeConfig{
			CafeID:      1,
			OpenMinute:  0,
			CloseMinute: clock.MinutesPerDay,
			Capacities: map[domain.StationType]int{
				domain.StationPS5: 2,
				domain.StationPC:  3,
			},
		},
	}, cache, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_BuildsSnapshotWithOccupancy(t *testing.T) {
	// 2026-08-28 18:30, бронь PS5 18:00-19:00 и таймер на PC-02
	now := time.Date(2026, 8, 28, 18, 30, 0, 0, time.UTC)
	repo := &fakeReservationRepo{byDate: map[string][]*domain.Reservation{
		"2026-08-28": {
			{
				ID:              7,
				StationType:     domain.StationPS5,
				Quantity:        1,
				StartMinute:     18 * 60,
				DurationMinutes: 60,
				Status:          domain.StatusConfirmed,
				CustomerName:    "Alice",
			},
		},
	}}
	timers := &fakeTimerRepo{timers: []*domain.TimerSubscription{
		{
			ID:          "t-1",
			StationType: domain.StationPC,
			UnitNumber:  2,
			StartedAt:   now.Add(-90 * time.Minute),
			Status:      domain.TimerActive,
		},
	}}

	uc := testUseCase(repo, timers, &memoryCache{}, now)

	resp, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Stations, 2)

	var ps5, pc StationGroup
	for _, g := range resp.Stations {
		switch g.StationType {
		case "ps5":
			ps5 = g
		case "pc":
			pc = g
		}
	}

	assert.Equal(t, 1, ps5.FreeCount)
	assert.Equal(t, "busy", ps5.Units[0].Status)
	assert.Equal(t, "Alice", ps5.Units[0].CustomerName)
	assert.Equal(t, ptr.Ptr(int64(7)), ps5.Units[0].ReservationID)
	assert.Equal(t, ptr.Ptr(30), ps5.Units[0].RemainingMinutes)

	assert.Equal(t, 2, pc.FreeCount)
	assert.Equal(t, "busy", pc.Units[1].Status)
	assert.Equal(t, ptr.Ptr("t-1"), pc.Units[1].TimerID)
	assert.Equal(t, ptr.Ptr(90), pc.Units[1].ElapsedMinutes)
	assert.Nil(t, pc.Units[1].RemainingMinutes)
}

func TestExecute_SecondCallServedFromCache(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 30, 0, 0, time.UTC)
	cache := &memoryCache{}
	uc := testUseCase(&fakeReservationRepo{}, &fakeTimerRepo{}, cache, now)

	first, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first.GeneratedAt.Unix(), second.GeneratedAt.Unix())
}

func TestExecute_MidnightCrossingSessionStillOccupies(t *testing.T) {
	// 00:30, вчерашняя бронь 23:30+120мин все еще идет
	now := time.Date(2026, 8, 29, 0, 30, 0, 0, time.UTC)
	repo := &fakeReservationRepo{byDate: map[string][]*domain.Reservation{
		"2026-08-28": {
			{
				ID:              9,
				StationType:     domain.StationPS5,
				Quantity:        1,
				StartMinute:     23*60 + 30,
				DurationMinutes: 120,
				Status:          domain.StatusInProgress,
				CustomerName:    "Bob",
			},
		},
	}}

	uc := testUseCase(repo, &fakeTimerRepo{}, &memoryCache{}, now)

	resp, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	var ps5 StationGroup
	for _, g := range resp.Stations {
		if g.StationType == "ps5" {
			ps5 = g
		}
	}

	require.NotEmpty(t, ps5.Units)
	assert.Equal(t, "busy", ps5.Units[0].Status)
	assert.Equal(t, "Bob", ps5.Units[0].CustomerName)
	// 23:30 + 2ч = 01:30, осталось 60 минут
	assert.Equal(t, ptr.Ptr(60), ps5.Units[0].RemainingMinutes)
}

func TestExecute_CafeNotConfigured(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeTimerRepo{}, &fakeConfigRepo{}, &memoryCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCafeNotFound)
}
