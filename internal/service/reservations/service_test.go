package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/PGC-StationService/internal/domain"
	reservationRepo "github.com/playgrid/PGC-StationService/internal/infra/storage/reservation"
	"github.com/playgrid/PGC-StationService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	byID      map[int64]*domain.Reservation
	forUser   []*domain.Reservation
	forDay    []*domain.Reservation
	cancelled map[int64]string
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return res, nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) ListForDay(_ context.Context, _ domain.DayFilter) ([]*domain.Reservation, error) {
	return f.forDay, nil
}

func (f *fakeReservationRepo) ListForUser(_ context.Context, _ int64, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return f.forUser, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, _ domain.ReservationStatus) error {
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelled == nil {
		f.cancelled = make(map[int64]string)
	}
	f.cancelled[id] = reason
	return nil
}

type fakeCache struct {
	invalidated []int64
}

func (f *fakeCache) Invalidate(_ context.Context, cafeID int64) error {
	f.invalidated = append(f.invalidated, cafeID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              10,
		CafeID:          1,
		UserID:          42,
		StationType:     domain.StationPS5,
		Quantity:        2,
		PlayerCount:     2,
		Date:            time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		StartMinute:     1110, // 6:30 pm
		DurationMinutes: 60,
		Status:          status,
		CustomerName:    "Алиса",
	}
}

func TestGetByID_OwnerSeesOwnReservation(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		10: testReservation(domain.StatusConfirmed),
	}}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.Equal(t, "6:30 pm", resp.StartTime)
	assert.Equal(t, "7:30 pm", resp.EndTime)
}

func TestGetByID_ForeignReservationDenied(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		10: testReservation(domain.StatusConfirmed),
	}}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, &fakeCache{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_MarksReservationAndInvalidatesCache(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		10: testReservation(domain.StatusConfirmed),
	}}
	cache := &fakeCache{}
	svc := NewService(repo, cache, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{
		UserID:             42,
		CancellationReason: "планы изменились",
	})
	require.NoError(t, err)
	assert.Equal(t, "планы изменились", repo.cancelled[10])
	assert.Equal(t, []int64{1}, cache.invalidated)
}

func TestCancel_ForeignReservationDenied(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		10: testReservation(domain.StatusConfirmed),
	}}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_TerminalStatusesRejected(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ReservationStatus
	}{
		{"completed", domain.StatusCompleted},
		{"already cancelled", domain.StatusCancelled},
		{"in progress", domain.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
				10: testReservation(tt.status),
			}}
			svc := NewService(repo, &fakeCache{}, nopLogger{})

			err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{UserID: 42})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestGetUserReservations_InvalidStatusRejected(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, &fakeCache{}, nopLogger{})

	bad := "unknown"
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 42,
		Status: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCafeReservations_ConvertsFilter(t *testing.T) {
	repo := &fakeReservationRepo{forDay: []*domain.Reservation{
		testReservation(domain.StatusConfirmed),
	}}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	stationType := "ps5"
	resp, err := svc.GetCafeReservations(context.Background(), &models.GetCafeReservationsRequest{
		CafeID:      1,
		Date:        "2026-08-28",
		StationType: &stationType,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "ps5", resp.Reservations[0].StationType)
}
