package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	bookingRepo "github.com/erplora/OnlineBooking-Service/internal/infra/storage/booking"
	"github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// fakeRepo keeps bookings in memory and records the last write.
type fakeRepo struct {
	bookings map[uuid.UUID]*domain.OnlineBooking

	counts         map[domain.BookingStatus]int64
	total          int64
	todayCount     int64
	confirmedToday int64
	weekCount      int64
	upcoming       []*domain.OnlineBooking
	lastStatus     domain.BookingStatus
	lastReason     string
	bulkUpdated    int64
	bulkFrom       []domain.BookingStatus
	softDeleted    []uuid.UUID
	listFilter     domain.BookingsFilter
	listBookings   []*domain.OnlineBooking
	listTotal      int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[uuid.UUID]*domain.OnlineBooking),
		counts:   make(map[domain.BookingStatus]int64),
	}
}

func (f *fakeRepo) add(b *domain.OnlineBooking) *domain.OnlineBooking {
	f.bookings[b.ID] = b
	return b
}

func (f *fakeRepo) GetByID(ctx context.Context, hubID int64, id uuid.UUID) (*domain.OnlineBooking, error) {
	b, ok := f.bookings[id]
	if !ok || b.HubID != hubID {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.OnlineBooking, int64, error) {
	f.listFilter = filter
	return f.listBookings, f.listTotal, nil
}

func (f *fakeRepo) Count(ctx context.Context, filter domain.BookingsFilter) (int64, error) {
	switch {
	case filter.Status != nil && filter.DateFrom != nil:
		return f.confirmedToday, nil
	case filter.Status != nil:
		return f.counts[*filter.Status], nil
	case filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.Equal(*filter.DateTo):
		return f.todayCount, nil
	case filter.DateFrom != nil:
		return f.weekCount, nil
	}
	return f.total, nil
}

func (f *fakeRepo) ListUpcoming(ctx context.Context, hubID int64, from, to time.Time, limit int) ([]*domain.OnlineBooking, error) {
	return f.upcoming, nil
}

func (f *fakeRepo) Confirm(ctx context.Context, hubID int64, id uuid.UUID, at time.Time) error {
	f.lastStatus = domain.StatusConfirmed
	return nil
}

func (f *fakeRepo) Cancel(ctx context.Context, hubID int64, id uuid.UUID, at time.Time, reason string) error {
	f.lastStatus = domain.StatusCancelled
	f.lastReason = reason
	return nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, hubID int64, id uuid.UUID, status domain.BookingStatus, at time.Time) error {
	f.lastStatus = status
	return nil
}

func (f *fakeRepo) SoftDelete(ctx context.Context, hubID int64, id uuid.UUID, at time.Time) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.softDeleted = append(f.softDeleted, id)
	return nil
}

func (f *fakeRepo) BulkUpdateStatus(ctx context.Context, hubID int64, ids []uuid.UUID, from []domain.BookingStatus, to domain.BookingStatus, at time.Time) (int64, error) {
	f.bulkFrom = from
	f.lastStatus = to
	return f.bulkUpdated, nil
}

func (f *fakeRepo) BulkSoftDelete(ctx context.Context, hubID int64, ids []uuid.UUID, at time.Time) (int64, error) {
	f.softDeleted = append(f.softDeleted, ids...)
	return int64(len(ids)), nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, fixedTime{now: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}, nopLogger{})
}

func pendingBooking(hubID int64) *domain.OnlineBooking {
	return &domain.OnlineBooking{
		ID:               uuid.New(),
		HubID:            hubID,
		BookingReference: "BK-00001",
		CustomerName:     "Jane Smith",
		Status:           domain.StatusPending,
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Run("confirm pending booking", func(t *testing.T) {
		repo := newFakeRepo()
		b := repo.add(pendingBooking(1))
		svc := newTestService(repo)

		resp, err := svc.UpdateStatus(context.Background(), 1, b.ID, &models.UpdateStatusRequest{Action: "confirm"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, "BK-00001", resp.BookingReference)
		assert.Equal(t, domain.StatusConfirmed, repo.lastStatus)
	})

	t.Run("cancel records reason", func(t *testing.T) {
		repo := newFakeRepo()
		b := repo.add(pendingBooking(1))
		svc := newTestService(repo)

		resp, err := svc.UpdateStatus(context.Background(), 1, b.ID, &models.UpdateStatusRequest{
			Action: "cancel",
			Reason: "customer asked to reschedule",
		})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.Equal(t, "customer asked to reschedule", repo.lastReason)
	})

	t.Run("complete requires confirmed", func(t *testing.T) {
		repo := newFakeRepo()
		b := repo.add(pendingBooking(1))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 1, b.ID, &models.UpdateStatusRequest{Action: "complete"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("terminal booking rejects every action", func(t *testing.T) {
		repo := newFakeRepo()
		b := repo.add(pendingBooking(1))
		b.Status = domain.StatusCompleted
		svc := newTestService(repo)

		for _, action := range []string{"confirm", "cancel", "complete", "no_show"} {
			_, err := svc.UpdateStatus(context.Background(), 1, b.ID, &models.UpdateStatusRequest{Action: action})
			assert.ErrorIs(t, err, ErrInvalidTransition, action)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		repo := newFakeRepo()
		b := repo.add(pendingBooking(1))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 1, b.ID, &models.UpdateStatusRequest{Action: "approve"})
		assert.ErrorIs(t, err, ErrUnknownAction)
	})

	t.Run("wrong hub is not found", func(t *testing.T) {
		repo := newFakeRepo()
		b := repo.add(pendingBooking(1))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 2, b.ID, &models.UpdateStatusRequest{Action: "confirm"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("normalizes paging and sorting", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{
			HubID:   1,
			Sort:    "bogus",
			PerPage: 33,
			Page:    0,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SortByDate, repo.listFilter.SortField)
		assert.Equal(t, domain.DefaultPerPage, repo.listFilter.PerPage)
		assert.Equal(t, 1, repo.listFilter.Page)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		status := "in_progress"

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{HubID: 1, Status: &status})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	b := repo.add(pendingBooking(1))
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1, b.ID))
	assert.Equal(t, []uuid.UUID{b.ID}, repo.softDeleted)

	err := svc.Delete(context.Background(), 1, uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBulkAction(t *testing.T) {
	t.Run("confirm reports skipped rows", func(t *testing.T) {
		repo := newFakeRepo()
		repo.bulkUpdated = 2
		svc := newTestService(repo)
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

		resp, err := svc.BulkAction(context.Background(), 1, &models.BulkActionRequest{IDs: ids, Action: "confirm"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Requested)
		assert.Equal(t, int64(2), resp.Updated)
		assert.Equal(t, []domain.BookingStatus{domain.StatusPending}, repo.bulkFrom)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		resp, err := svc.BulkAction(context.Background(), 1, &models.BulkActionRequest{IDs: ids, Action: "delete"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Updated)
		assert.Len(t, repo.softDeleted, 2)
	})

	t.Run("unknown action", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)

		_, err := svc.BulkAction(context.Background(), 1, &models.BulkActionRequest{
			IDs:    []uuid.UUID{uuid.New()},
			Action: "archive",
		})
		assert.ErrorIs(t, err, ErrUnknownAction)
	})

	t.Run("empty ids", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)

		_, err := svc.BulkAction(context.Background(), 1, &models.BulkActionRequest{Action: "confirm"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDashboard(t *testing.T) {
	repo := newFakeRepo()
	repo.total = 20
	repo.counts[domain.StatusPending] = 4
	repo.counts[domain.StatusConfirmed] = 6
	repo.counts[domain.StatusCompleted] = 7
	repo.counts[domain.StatusCancelled] = 2
	repo.counts[domain.StatusNoShow] = 1
	repo.todayCount = 3
	repo.confirmedToday = 2
	repo.weekCount = 9
	repo.upcoming = []*domain.OnlineBooking{pendingBooking(1)}

	svc := newTestService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.Total)
	assert.Equal(t, int64(4), resp.Pending)
	assert.Equal(t, int64(3), resp.TodayCount)
	assert.Equal(t, int64(2), resp.ConfirmedToday)
	assert.Equal(t, int64(9), resp.WeekCount)
	// 1 no-show out of 8 finished bookings
	assert.Equal(t, 12.5, resp.NoShowRate)
	assert.Len(t, resp.Upcoming, 1)
}

func TestDashboardNoFinishedBookings(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	resp, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.NoShowRate)
}
