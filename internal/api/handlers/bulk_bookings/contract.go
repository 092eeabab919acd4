package bulk_bookings

import (
	"context"

	"github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
)

type BookingService interface {
	BulkAction(ctx context.Context, hubID int64, req *models.BulkActionRequest) (*models.BulkActionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
