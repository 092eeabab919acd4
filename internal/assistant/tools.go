package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	bookingmodels "github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
	"github.com/erplora/OnlineBooking-Service/internal/usecase/create_booking"
	"github.com/erplora/OnlineBooking-Service/pkg/types"
)

// assistantCreateDefaultDuration is the fallback duration for bookings
// created through the assistant when none is given.
const assistantCreateDefaultDuration = 60

// assistantListDefaultLimit is the row cap for listings when the
// assistant does not ask for one.
const assistantListDefaultLimit = 20

// listBookingsTool lists the hub's bookings with optional filters.
type listBookingsTool struct {
	bookings BookingService
}

func (t *listBookingsTool) Name() string { return "list_online_bookings" }

func (t *listBookingsTool) Description() string {
	return "List the hub's online bookings, optionally filtered by status, date range or a search term."
}

type listBookingsArgs struct {
	Status   string `json:"status,omitempty"`
	Date     string `json:"date,omitempty"` // shorthand for date_from = date_to
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
	Search   string `json:"search,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

func (t *listBookingsTool) Execute(ctx context.Context, hubID int64, args json.RawMessage) (interface{}, error) {
	var a listBookingsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	limit := a.Limit
	if limit == 0 {
		limit = assistantListDefaultLimit
	}

	req := &bookingmodels.ListBookingsRequest{
		HubID: hubID,
		Query: a.Search,
		Limit: limit,
		Page:  1,
	}
	if a.Status != "" {
		req.Status = &a.Status
	}
	if a.Date != "" && a.DateFrom == "" && a.DateTo == "" {
		a.DateFrom, a.DateTo = a.Date, a.Date
	}
	if a.DateFrom != "" {
		req.DateFrom = &a.DateFrom
	}
	if a.DateTo != "" {
		req.DateTo = &a.DateTo
	}

	resp, err := t.bookings.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// getBookingTool fetches one booking by id or reference.
type getBookingTool struct {
	bookings BookingService
}

func (t *getBookingTool) Name() string { return "get_online_booking" }

func (t *getBookingTool) Description() string {
	return "Fetch one online booking by its id or booking reference (e.g. BK-00041)."
}

type getBookingArgs struct {
	BookingID string `json:"booking_id,omitempty"`
	Reference string `json:"reference,omitempty"`
}

func (t *getBookingTool) Execute(ctx context.Context, hubID int64, args json.RawMessage) (interface{}, error) {
	var a getBookingArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	if a.BookingID != "" {
		id, err := uuid.Parse(a.BookingID)
		if err != nil {
			return nil, fmt.Errorf("%w: booking_id is not a valid id", ErrInvalidArgs)
		}
		return t.bookings.GetByID(ctx, hubID, id)
	}

	if a.Reference == "" {
		return nil, fmt.Errorf("%w: booking_id or reference is required", ErrInvalidArgs)
	}

	// Reference lookup goes through the list search and keeps only the
	// exact match
	resp, err := t.bookings.List(ctx, &bookingmodels.ListBookingsRequest{
		HubID: hubID,
		Query: a.Reference,
		Page:  1,
	})
	if err != nil {
		return nil, err
	}
	for i := range resp.Bookings {
		if strings.EqualFold(resp.Bookings[i].BookingReference, a.Reference) {
			return &resp.Bookings[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no booking with reference %q", ErrInvalidArgs, a.Reference)
}

// updateBookingStatusTool applies a lifecycle action to a booking.
type updateBookingStatusTool struct {
	bookings BookingService
}

func (t *updateBookingStatusTool) Name() string { return "update_booking_status" }

func (t *updateBookingStatusTool) Description() string {
	return "Apply a lifecycle action (confirm, cancel, complete, no_show) to an online booking."
}

type updateBookingStatusArgs struct {
	BookingID string `json:"booking_id"`
	Action    string `json:"action"`
	Reason    string `json:"reason,omitempty"`
}

func (t *updateBookingStatusTool) Execute(ctx context.Context, hubID int64, args json.RawMessage) (interface{}, error) {
	var a updateBookingStatusArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(a.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: booking_id is not a valid id", ErrInvalidArgs)
	}
	if a.Action == "" {
		return nil, fmt.Errorf("%w: action is required", ErrInvalidArgs)
	}

	return t.bookings.UpdateStatus(ctx, hubID, id, &bookingmodels.UpdateStatusRequest{
		Action: a.Action,
		Reason: a.Reason,
	})
}

// createBookingTool creates a booking on behalf of the assistant.
type createBookingTool struct {
	creator CreateBookingUseCase
}

func (t *createBookingTool) Name() string { return "create_online_booking" }

func (t *createBookingTool) Description() string {
	return "Create an online booking for the hub. Requires customer_name, service_name, date and time."
}

type createBookingArgs struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	ServiceName     string `json:"service_name"`
	StaffName       string `json:"staff_name,omitempty"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func (t *createBookingTool) Execute(ctx context.Context, hubID int64, args json.RawMessage) (interface{}, error) {
	var a createBookingArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, a.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidArgs)
	}

	duration := a.DurationMinutes
	if duration == 0 {
		duration = assistantCreateDefaultDuration
	}

	return t.creator.Execute(ctx, &create_booking.Request{
		HubID:           hubID,
		CustomerName:    a.CustomerName,
		CustomerEmail:   a.CustomerEmail,
		CustomerPhone:   a.CustomerPhone,
		ServiceName:     a.ServiceName,
		StaffName:       a.StaffName,
		Date:            date,
		StartTime:       types.TimeString(a.Time),
		DurationMinutes: duration,
		Notes:           a.Notes,
	})
}

// getSettingsTool reports the hub's booking page configuration.
type getSettingsTool struct {
	settings SettingsService
}

func (t *getSettingsTool) Name() string { return "get_booking_page_settings" }

func (t *getSettingsTool) Description() string {
	return "Fetch the hub's booking page settings."
}

func (t *getSettingsTool) Execute(ctx context.Context, hubID int64, args json.RawMessage) (interface{}, error) {
	resp, err := t.settings.GetOrCreate(ctx, hubID)
	if err != nil {
		// The assistant gets a usable answer even when settings cannot
		// be loaded
		return map[string]interface{}{
			"is_enabled": false,
			"message":    "Booking page not configured",
		}, nil
	}
	return resp, nil
}

func decodeArgs(args json.RawMessage, dst interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return nil
}
