package get_dashboard

import (
	"net/http"

	"github.com/erplora/OnlineBooking-Service/internal/api/handlers"
	"github.com/erplora/OnlineBooking-Service/internal/api/middleware"
)

type Handler struct {
	bookingService  BookingService
	settingsService SettingsService
	logger          Logger
}

func NewHandler(bookingService BookingService, settingsService SettingsService, logger Logger) *Handler {
	return &Handler{
		bookingService:  bookingService,
		settingsService: settingsService,
		logger:          logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hubID, ok := middleware.GetHubID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing hub identification")
		return
	}

	stats, err := h.bookingService.Dashboard(r.Context(), hubID)
	if err != nil {
		h.logger.Error("GET /dashboard - Failed for hub=%d: %v", hubID, err)
		handlers.RespondInternalError(w)
		return
	}

	settings, err := h.settingsService.GetOrCreate(r.Context(), hubID)
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to load settings for hub=%d: %v", hubID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		DashboardResponse: stats,
		Settings:          settings,
	})
}
