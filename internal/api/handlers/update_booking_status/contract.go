package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, hubID int64, id uuid.UUID, req *models.UpdateStatusRequest) (*models.UpdateStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
