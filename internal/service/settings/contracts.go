package settings

import (
	"context"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
)

// SettingsRepository is the storage contract for booking page settings.
type SettingsRepository interface {
	GetByHubID(ctx context.Context, hubID int64) (*domain.BookingPageSettings, error)
	Create(ctx context.Context, s *domain.BookingPageSettings) (*domain.BookingPageSettings, error)
	Update(ctx context.Context, s *domain.BookingPageSettings) (*domain.BookingPageSettings, error)
}

// Logger is the logging contract used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
