package reservations

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/domain"
	reservationRepo "github.com/Celia92000/laia-skin-nextjs-sub023/internal/infra/storage/reservation"
	"github.com/Celia92000/laia-skin-nextjs-sub023/internal/service/reservations/models"
	"github.com/Celia92000/laia-skin-nextjs-sub023/pkg/logger"
)

type fakeRepo struct {
	reservations map[int64]*domain.Reservation
	cancelErr    error
	listErr      error
	cancelled    []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeRepo) GetActiveByDate(_ context.Context, day domain.CalendarDay) ([]*domain.Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*domain.Reservation
	for id := int64(1); id <= int64(len(f.reservations)); id++ {
		r := f.reservations[id]
		if r != nil && r.Date.Equal(day) && r.IsActive() {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, _ *string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	f.reservations[id].Status = domain.StatusCancelled
	return nil
}

func newService(repo *fakeRepo) *Service {
	return NewService(func(domain.TenantID) ReservationRepository { return repo }, logger.NewNop())
}

func reservationWithStatus(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:       id,
		Date:     domain.NewCalendarDay(2026, time.October, 19),
		Time:     "10:00",
		Status:   status,
		Services: []domain.ReservedService{{ServiceID: 1, DurationMinutes: 45}},
	}
}

func TestCancel(t *testing.T) {
	repo := &fakeRepo{reservations: map[int64]*domain.Reservation{
		1: reservationWithStatus(1, domain.StatusConfirmed),
	}}

	err := newService(repo).Cancel(context.Background(), domain.NewTenantID(), 1, &models.CancelReservationRequest{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)
}

func TestCancel_InactiveReservation(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusCancelled, domain.StatusCompleted, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeRepo{reservations: map[int64]*domain.Reservation{1: reservationWithStatus(1, status)}}

			err := newService(repo).Cancel(context.Background(), domain.NewTenantID(), 1, &models.CancelReservationRequest{})
			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.Empty(t, repo.cancelled)
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeRepo{reservations: map[int64]*domain.Reservation{}}

	err := newService(repo).Cancel(context.Background(), domain.NewTenantID(), 7, &models.CancelReservationRequest{})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_ConcurrentChange(t *testing.T) {
	repo := &fakeRepo{
		reservations: map[int64]*domain.Reservation{1: reservationWithStatus(1, domain.StatusPending)},
		cancelErr:    reservationRepo.ErrCannotCancel,
	}

	err := newService(repo).Cancel(context.Background(), domain.NewTenantID(), 1, &models.CancelReservationRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_RepositoryFailure(t *testing.T) {
	repo := &fakeRepo{
		reservations: map[int64]*domain.Reservation{1: reservationWithStatus(1, domain.StatusPending)},
		cancelErr:    errors.New("db down"),
	}

	err := newService(repo).Cancel(context.Background(), domain.NewTenantID(), 1, &models.CancelReservationRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeRepo{reservations: map[int64]*domain.Reservation{1: reservationWithStatus(1, domain.StatusPending)}}
	reason := strings.Repeat("a", domain.MaxCancellationReasonLength+1)

	err := newService(repo).Cancel(context.Background(), domain.NewTenantID(), 1, &models.CancelReservationRequest{CancellationReason: &reason})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{reservations: map[int64]*domain.Reservation{1: reservationWithStatus(1, domain.StatusConfirmed)}}

	resp, err := newService(repo).GetByID(context.Background(), domain.NewTenantID(), 1)
	require.NoError(t, err)

	assert.Equal(t, "2026-10-19", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, []int64{1}, resp.ServiceIDs)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestListActiveByDate(t *testing.T) {
	day := domain.NewCalendarDay(2026, time.October, 19)
	repo := &fakeRepo{reservations: map[int64]*domain.Reservation{
		1: reservationWithStatus(1, domain.StatusConfirmed),
		2: reservationWithStatus(2, domain.StatusCancelled),
		3: reservationWithStatus(3, domain.StatusPending),
	}}

	list, err := newService(repo).ListActiveByDate(context.Background(), domain.NewTenantID(), day)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", list.Date)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, int64(1), list.Reservations[0].ID)
	assert.Equal(t, int64(3), list.Reservations[1].ID)
	assert.Equal(t, 60, list.Reservations[0].DurationMinutes)
}

func TestListActiveByDate_Errors(t *testing.T) {
	repo := &fakeRepo{reservations: map[int64]*domain.Reservation{}, listErr: errors.New("connection reset")}
	svc := newService(repo)

	_, err := svc.ListActiveByDate(context.Background(), domain.NewTenantID(), domain.CalendarDay{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListActiveByDate(context.Background(), domain.NewTenantID(), domain.NewCalendarDay(2026, time.October, 19))
	assert.ErrorIs(t, err, ErrInternal)
}
