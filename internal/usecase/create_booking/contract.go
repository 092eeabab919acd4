package create_booking

import (
	"context"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	"github.com/erplora/OnlineBooking-Service/internal/integrations/customerservice"
	settingsmodels "github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
)

// BookingRepository is the storage contract used while creating a
// booking.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.OnlineBooking) (*domain.OnlineBooking, error)
	LastReference(ctx context.Context, hubID int64) (string, error)
}

// SettingsProvider resolves the hub's booking page settings, creating
// them with defaults when missing.
type SettingsProvider interface {
	GetOrCreate(ctx context.Context, hubID int64) (*settingsmodels.SettingsResponse, error)
}

// CustomerServiceClient looks up hub customers for best-effort linking.
type CustomerServiceClient interface {
	FindByEmailWithGracefulDegradation(ctx context.Context, hubID int64, email string) (*customerservice.Customer, error)
}

// TransactionManager runs the reference generation and insert in one
// transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
