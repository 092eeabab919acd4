package execute_tool

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/erplora/OnlineBooking-Service/internal/api/handlers"
	"github.com/erplora/OnlineBooking-Service/internal/api/middleware"
	"github.com/erplora/OnlineBooking-Service/internal/assistant"
	"github.com/erplora/OnlineBooking-Service/internal/service/bookings"
	settingsService "github.com/erplora/OnlineBooking-Service/internal/service/settings"
	createBooking "github.com/erplora/OnlineBooking-Service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body, expected a JSON object of tool arguments"
	msgToolNotFound       = "tool not found"
	msgBookingNotFound    = "booking not found"
	msgInvalidTransition  = "booking status does not allow this action"
)

type Handler struct {
	registry ToolRegistry
	logger   Logger
}

func NewHandler(registry ToolRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// HandleList GET /api/v1/assistant/tools
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ToolListResponse{Tools: h.registry.List()})
}

// HandleExecute POST /api/v1/assistant/tools/{toolName}
// The body is passed to the tool as its raw argument object; the hub
// always comes from the authenticated request, never from the body.
func (h *Handler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	hubID, ok := middleware.GetHubID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing hub identification")
		return
	}

	toolName := mux.Vars(r)["toolName"]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /assistant/tools/{toolName} - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		h.logger.Warn("POST /assistant/tools/{toolName} - Malformed arguments for tool %q", toolName)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.registry.Execute(r.Context(), hubID, toolName, body)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrToolNotFound):
			h.logger.Warn("POST /assistant/tools/{toolName} - Unknown tool %q for hub=%d", toolName, hubID)
			handlers.RespondNotFound(w, msgToolNotFound)

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, assistant.ErrInvalidArgs),
			errors.Is(err, bookings.ErrUnknownAction),
			errors.Is(err, bookings.ErrInvalidInput),
			errors.Is(err, settingsService.ErrInvalidInput),
			errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInvalidTime):
			h.logger.Warn("POST /assistant/tools/{toolName} - Bad arguments for tool %q: %v", toolName, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /assistant/tools/{toolName} - Tool %q failed for hub=%d: %v", toolName, hubID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assistant/tools/{toolName} - Tool %q executed for hub=%d", toolName, hubID)
	handlers.RespondJSON(w, http.StatusOK, ToolResultResponse{Tool: toolName, Result: result})
}
