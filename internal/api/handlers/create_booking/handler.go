package create_booking

import (
	"errors"
	"net/http"

	"github.com/erplora/OnlineBooking-Service/internal/api/handlers"
	"github.com/erplora/OnlineBooking-Service/internal/api/middleware"
	createBooking "github.com/erplora/OnlineBooking-Service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid booking date or time, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput       = "invalid booking data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hubID, ok := middleware.GetHubID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing hub identification")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(hubID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request for hub=%d: %v", hubID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInvalidTime):
			h.logger.Warn("POST /bookings - Validation failed for hub=%d: %v", hubID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking for hub=%d: %v", hubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: reference=%s, hub=%d", result.BookingReference, hubID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
