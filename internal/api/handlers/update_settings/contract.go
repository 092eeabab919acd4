package update_settings

import (
	"context"

	"github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, hubID int64, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
