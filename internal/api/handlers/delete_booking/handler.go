package delete_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/erplora/OnlineBooking-Service/internal/api/handlers"
	"github.com/erplora/OnlineBooking-Service/internal/api/middleware"
	"github.com/erplora/OnlineBooking-Service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hubID, ok := middleware.GetHubID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing hub identification")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("DELETE /bookings/{bookingId} - Invalid id for hub=%d: %v", hubID, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), hubID, id); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{bookingId} - Booking %s not found for hub=%d", id, hubID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("DELETE /bookings/{bookingId} - Failed for hub=%d: %v", hubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{bookingId} - Booking %s deleted for hub=%d", id, hubID)
	handlers.RespondNoContent(w)
}
