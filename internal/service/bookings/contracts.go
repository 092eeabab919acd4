package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
)

// BookingRepository is the storage contract for online bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, hubID int64, id uuid.UUID) (*domain.OnlineBooking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.OnlineBooking, int64, error)
	Count(ctx context.Context, filter domain.BookingsFilter) (int64, error)
	ListUpcoming(ctx context.Context, hubID int64, from, to time.Time, limit int) ([]*domain.OnlineBooking, error)
	Confirm(ctx context.Context, hubID int64, id uuid.UUID, at time.Time) error
	Cancel(ctx context.Context, hubID int64, id uuid.UUID, at time.Time, reason string) error
	UpdateStatus(ctx context.Context, hubID int64, id uuid.UUID, status domain.BookingStatus, at time.Time) error
	SoftDelete(ctx context.Context, hubID int64, id uuid.UUID, at time.Time) error
	BulkUpdateStatus(ctx context.Context, hubID int64, ids []uuid.UUID, from []domain.BookingStatus, to domain.BookingStatus, at time.Time) (int64, error)
	BulkSoftDelete(ctx context.Context, hubID int64, ids []uuid.UUID, at time.Time) (int64, error)
}

// TimeProvider abstracts the clock so transitions can be tested with a
// fixed time.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging contract used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
