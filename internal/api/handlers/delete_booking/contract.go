package delete_booking

import (
	"context"

	"github.com/google/uuid"
)

type BookingService interface {
	Delete(ctx context.Context, hubID int64, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
