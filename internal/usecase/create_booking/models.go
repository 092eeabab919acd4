package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/pkg/types"
)

// Request is a new booking. Customer email and phone are optional:
// the admin surface accepts whatever contact details the customer left.
type Request struct {
	HubID int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID   *uuid.UUID
	ServiceName string

	StaffID   *uuid.UUID
	StaffName string

	Date            time.Time        // booking date without time of day
	StartTime       types.TimeString // slot start, e.g. "14:30"
	DurationMinutes int              // 0 falls back to the hub's slot duration
	Notes           string
}

// Response is the created booking.
type Response struct {
	ID               uuid.UUID
	BookingReference string
	Status           string

	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerEmail string

	ServiceName     string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}
