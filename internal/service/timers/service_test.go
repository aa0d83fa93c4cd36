package timers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/internal/integrations/memberservice"
	configRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/cafeconfig"
	timerRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/timer"
	"github.com/playgrid/PGC-StationService/internal/service/timers/models"
)

type fakeTimerRepo struct {
	active  []*domain.TimerSubscription
	created *domain.TimerSubscription
	stopped map[string]bool
	byID    map[string]*domain.TimerSubscription
	stopErr error
}

func (f *fakeTimerRepo) Create(_ context.Context, t *domain.TimerSubscription) (*domain.TimerSubscription, error) {
	f.created = t
	return t, nil
}

func (f *fakeTimerRepo) GetByID(_ context.Context, id string) (*domain.TimerSubscription, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, timerRepo.ErrTimerNotFound
	}
	return t, nil
}

func (f *fakeTimerRepo) ListActive(_ context.Context, _ int64) ([]*domain.TimerSubscription, error) {
	return f.active, nil
}

func (f *fakeTimerRepo) Stop(_ context.Context, id string) error {
	if f.stopErr != nil {
		return f.stopErr
	}
	if f.stopped == nil {
		f.stopped = make(map[string]bool)
	}
	f.stopped[id] = true
	return nil
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

type fakeMemberClient struct {
	member *memberservice.Member
	err    error
}

func (f *fakeMemberClient) GetMemberWithGracefulDegradation(_ context.Context, _ int64) (*memberservice.Member, error) {
	return f.member, f.err
}

type fakeCache struct {
	invalidated []int64
}

func (f *fakeCache) Invalidate(_ context.Context, cafeID int64) error {
	f.invalidated = append(f.invalidated, cafeID)
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() *domain.CafeConfig {
	return &domain.CafeConfig{
		CafeID:      1,
		OpenMinute:  600,
		CloseMinute: 1380,
		Capacities: map[domain.StationType]int{
			domain.StationPC:  10,
			domain.StationPS5: 4,
		},
	}
}

func startRequest() *models.StartTimerRequest {
	return &models.StartTimerRequest{
		CafeID:       1,
		MemberID:     42,
		CustomerName: "оператор: Иван",
		StationType:  "pc",
		UnitNumber:   7,
	}
}

func TestStart_CreatesActiveTimer(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	repo := &fakeTimerRepo{}
	cache := &fakeCache{}
	svc := NewService(
		repo,
		&fakeConfigRepo{cfg: testConfig()},
		&fakeMemberClient{member: &memberservice.Member{ID: 42, DisplayName: "Иван Петров", Active: true}},
		cache,
		&fixedTime{now: now},
		nopLogger{},
	)

	resp, err := svc.Start(context.Background(), startRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.TimerActive, repo.created.Status)
	assert.Equal(t, now, repo.created.StartedAt)

	// ID - валидный uuid
	_, parseErr := uuid.Parse(resp.ID)
	assert.NoError(t, parseErr)

	// Имя подтянуто из MemberService, не из запроса
	assert.Equal(t, "Иван Петров", resp.CustomerName)
	assert.Equal(t, "PC-07", resp.UnitLabel)
	assert.Equal(t, 0, resp.ElapsedMinutes)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestStart_DegradedMemberServiceUsesOperatorName(t *testing.T) {
	svc := NewService(
		&fakeTimerRepo{},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeMemberClient{err: memberservice.ErrServiceDegraded},
		&fakeCache{},
		&fixedTime{now: time.Now()},
		nopLogger{},
	)

	resp, err := svc.Start(context.Background(), startRequest())
	require.NoError(t, err)
	assert.Equal(t, "оператор: Иван", resp.CustomerName)
}

func TestStart_MembershipChecks(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   error
	}{
		{"member not found", memberservice.ErrMemberNotFound, ErrMemberNotFound},
		{"membership inactive", memberservice.ErrMembershipInactive, ErrMembershipInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(
				&fakeTimerRepo{},
				&fakeConfigRepo{cfg: testConfig()},
				&fakeMemberClient{err: tt.clientErr},
				&fakeCache{},
				&fixedTime{now: time.Now()},
				nopLogger{},
			)

			_, err := svc.Start(context.Background(), startRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStart_UnitOutOfRange(t *testing.T) {
	svc := NewService(
		&fakeTimerRepo{},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeMemberClient{},
		&fakeCache{},
		&fixedTime{now: time.Now()},
		nopLogger{},
	)

	req := startRequest()
	req.UnitNumber = 11 // в парке только 10 ПК

	_, err := svc.Start(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnitOutOfRange)
}

func TestStart_UnitOccupiedByAnotherTimer(t *testing.T) {
	occupied := &domain.TimerSubscription{
		ID:          uuid.NewString(),
		CafeID:      1,
		StationType: domain.StationPC,
		UnitNumber:  7,
		Status:      domain.TimerActive,
	}
	svc := NewService(
		&fakeTimerRepo{active: []*domain.TimerSubscription{occupied}},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeMemberClient{},
		&fakeCache{},
		&fixedTime{now: time.Now()},
		nopLogger{},
	)

	_, err := svc.Start(context.Background(), startRequest())
	assert.ErrorIs(t, err, ErrUnitOccupied)
}

func TestStart_CafeNotFound(t *testing.T) {
	svc := NewService(
		&fakeTimerRepo{},
		&fakeConfigRepo{},
		&fakeMemberClient{},
		&fakeCache{},
		&fixedTime{now: time.Now()},
		nopLogger{},
	)

	_, err := svc.Start(context.Background(), startRequest())
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestStop_ReturnsElapsedSession(t *testing.T) {
	started := time.Date(2026, 8, 28, 16, 0, 0, 0, time.UTC)
	stoppedAt := started.Add(95 * time.Minute)
	id := uuid.NewString()

	repo := &fakeTimerRepo{
		byID: map[string]*domain.TimerSubscription{
			id: {
				ID:          id,
				CafeID:      1,
				StationType: domain.StationPC,
				UnitNumber:  7,
				StartedAt:   started,
				Status:      domain.TimerStopped,
				StoppedAt:   &stoppedAt,
			},
		},
	}
	cache := &fakeCache{}
	svc := NewService(
		repo,
		&fakeConfigRepo{cfg: testConfig()},
		&fakeMemberClient{},
		cache,
		&fixedTime{now: stoppedAt.Add(time.Hour)},
		nopLogger{},
	)

	resp, err := svc.Stop(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, repo.stopped[id])
	// Время сессии считается до момента остановки, не до "сейчас"
	assert.Equal(t, 95, resp.ElapsedMinutes)
	assert.Equal(t, string(domain.TimerStopped), resp.Status)
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestStop_RepositoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"not found", timerRepo.ErrTimerNotFound, ErrTimerNotFound},
		{"already stopped", timerRepo.ErrTimerAlreadyStopped, ErrTimerAlreadyStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(
				&fakeTimerRepo{stopErr: tt.repoErr},
				&fakeConfigRepo{cfg: testConfig()},
				&fakeMemberClient{},
				&fakeCache{},
				&fixedTime{now: time.Now()},
				nopLogger{},
			)

			_, err := svc.Stop(context.Background(), uuid.NewString())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListActive_ComputesElapsed(t *testing.T) {
	now := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
	svc := NewService(
		&fakeTimerRepo{active: []*domain.TimerSubscription{
			{
				ID:          uuid.NewString(),
				CafeID:      1,
				StationType: domain.StationPS5,
				UnitNumber:  2,
				StartedAt:   now.Add(-150 * time.Minute),
				Status:      domain.TimerActive,
			},
		}},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeMemberClient{},
		&fakeCache{},
		&fixedTime{now: now},
		nopLogger{},
	)

	resp, err := svc.ListActive(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Timers, 1)
	assert.Equal(t, 150, resp.Timers[0].ElapsedMinutes)
	assert.Equal(t, "PS5-02", resp.Timers[0].UnitLabel)
}
