package get_dashboard

import (
	bookingmodels "github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
	settingsmodels "github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
)

// Response combines the booking stats with the hub's page settings so
// the admin dashboard renders from a single call.
type Response struct {
	*bookingmodels.DashboardResponse

	Settings *settingsmodels.SettingsResponse `json:"settings"`
}
