package bulk_bookings

import (
	"errors"
	"net/http"

	"github.com/erplora/OnlineBooking-Service/internal/api/handlers"
	"github.com/erplora/OnlineBooking-Service/internal/api/middleware"
	"github.com/erplora/OnlineBooking-Service/internal/service/bookings"
	"github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownAction      = "unknown action, expected confirm, cancel, complete, no_show or delete"
	msgEmptySelection     = "no bookings selected"
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

// Handle POST /api/v1/bookings/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hubID, ok := middleware.GetHubID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing hub identification")
		return
	}

	var req models.BulkActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.BulkAction(r.Context(), hubID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnknownAction):
			h.logger.Warn("POST /bookings/bulk - Unknown action %q for hub=%d", req.Action, hubID)
			handlers.RespondBadRequest(w, msgUnknownAction)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/bulk - Empty selection for hub=%d", hubID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		default:
			h.logger.Error("POST /bookings/bulk - Failed for hub=%d: %v", hubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/bulk - Action %s changed %d of %d bookings for hub=%d",
		resp.Action, resp.Updated, resp.Requested, hubID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
