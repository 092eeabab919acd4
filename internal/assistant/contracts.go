package assistant

import (
	"context"

	"github.com/google/uuid"

	bookingmodels "github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
	settingsmodels "github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
	"github.com/erplora/OnlineBooking-Service/internal/usecase/create_booking"
)

// BookingService is the bookings surface exposed to assistant tools.
type BookingService interface {
	GetByID(ctx context.Context, hubID int64, id uuid.UUID) (*bookingmodels.BookingResponse, error)
	List(ctx context.Context, req *bookingmodels.ListBookingsRequest) (*bookingmodels.BookingListResponse, error)
	UpdateStatus(ctx context.Context, hubID int64, id uuid.UUID, req *bookingmodels.UpdateStatusRequest) (*bookingmodels.UpdateStatusResponse, error)
}

// SettingsService is the settings surface exposed to assistant tools.
type SettingsService interface {
	GetOrCreate(ctx context.Context, hubID int64) (*settingsmodels.SettingsResponse, error)
}

// CreateBookingUseCase creates bookings on behalf of the assistant.
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Logger is the logging contract used by the registry.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
