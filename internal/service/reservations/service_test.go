package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/CTRS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/CTRS-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/CTRS-ReservationService/pkg/ptr"
	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	byID      map[int64]*domain.Reservation
	byContact map[string][]*domain.Reservation
	listed    []*domain.Reservation
	listErr   error

	lastFilter domain.ReservationsFilter
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) GetByContact(_ context.Context, contact string) ([]*domain.Reservation, error) {
	return f.byContact[contact], nil
}

func (f *fakeReservationRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		CustomerName: "Alice",
		Contact:      "alice@example.com",
		Date:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("19:00"),
		PartySize:    2,
		TableID:      ptr.Ptr("T1"),
		Status:       domain.StatusConfirmed,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		7: sampleReservation(7),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-05-01", resp.Date)
	assert.Equal(t, "19:00", resp.StartTime)
	require.NotNil(t, resp.TableID)
	assert.Equal(t, "T1", *resp.TableID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_GetByContact(t *testing.T) {
	cancelled := sampleReservation(8)
	cancelled.Status = domain.StatusCancelled
	cancelled.CancelledAt = ptr.Ptr(time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC))

	repo := &fakeReservationRepo{byContact: map[string][]*domain.Reservation{
		"alice@example.com": {sampleReservation(7), cancelled},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByContact(context.Background(), "alice@example.com")
	require.NoError(t, err)

	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "cancelled", resp.Reservations[1].Status)
	require.NotNil(t, resp.Reservations[1].CancelledAt)
}

func TestService_GetByContact_EmptyContact(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, nopLogger{})

	_, err := svc.GetByContact(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_PassesFilter(t *testing.T) {
	repo := &fakeReservationRepo{listed: []*domain.Reservation{sampleReservation(7)}}
	svc := NewService(repo, nopLogger{})

	date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{
		Date:             &date,
		Status:           ptr.Ptr("pending"),
		IncludeCancelled: false,
	})
	require.NoError(t, err)

	require.Len(t, resp.Reservations, 1)
	require.NotNil(t, repo.lastFilter.Date)
	assert.True(t, repo.lastFilter.Date.Equal(date))
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{
		Status: ptr.Ptr("eaten"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_RepoError(t *testing.T) {
	repo := &fakeReservationRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
