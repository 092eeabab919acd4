package get_dashboard

import (
	"context"

	bookingmodels "github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
	settingsmodels "github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
)

type BookingService interface {
	Dashboard(ctx context.Context, hubID int64) (*bookingmodels.DashboardResponse, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, hubID int64) (*settingsmodels.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
