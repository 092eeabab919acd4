package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/pkg/types"
)

// BookingStatus represents the lifecycle status of an online booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// AllStatuses lists every valid booking status.
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

// Valid returns true if the status is one of the known values.
func (s BookingStatus) Valid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// StatusAction is a status-transition verb applied to a booking.
type StatusAction string

const (
	ActionConfirm  StatusAction = "confirm"
	ActionCancel   StatusAction = "cancel"
	ActionComplete StatusAction = "complete"
	ActionNoShow   StatusAction = "no_show"
)

// OnlineBooking represents an appointment booked through the public
// booking page or created manually from the admin panel.
//
// Service, staff and customer data are denormalized snapshots: the
// text fields are authoritative, the UUIDs are weak references that may
// point at entities deleted elsewhere.
type OnlineBooking struct {
	ID               uuid.UUID
	HubID            int64
	BookingReference string

	// Customer snapshot
	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	// Service snapshot
	ServiceID   *uuid.UUID
	ServiceName string

	// Staff snapshot
	StaffID   *uuid.UUID
	StaffName string

	// Scheduling
	BookingDate     time.Time
	BookingTime     types.TimeString
	DurationMinutes int

	Status BookingStatus
	Notes  string

	// Lifecycle timestamps
	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string

	// Soft delete
	IsDeleted bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeConfirmed returns true if the booking may move to confirmed.
// Only pending bookings can be confirmed.
func (b *OnlineBooking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking may be cancelled.
// Terminal bookings stay as they are.
func (b *OnlineBooking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking may be marked completed.
// Only confirmed bookings can be completed.
func (b *OnlineBooking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeMarkedNoShow returns true if the booking may be marked no-show.
// Only confirmed bookings can be marked no-show.
func (b *OnlineBooking) CanBeMarkedNoShow() bool {
	return b.Status == StatusConfirmed
}

// IsTerminal returns true when no further transition applies.
func (b *OnlineBooking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted || b.Status == StatusNoShow
}

// AllowedFrom returns the statuses a booking must currently have for the
// action to apply. Used by bulk updates to filter eligible rows.
func (a StatusAction) AllowedFrom() []BookingStatus {
	switch a {
	case ActionConfirm:
		return []BookingStatus{StatusPending}
	case ActionCancel:
		return []BookingStatus{StatusPending, StatusConfirmed}
	case ActionComplete, ActionNoShow:
		return []BookingStatus{StatusConfirmed}
	default:
		return nil
	}
}

// Target returns the status the action transitions to.
func (a StatusAction) Target() BookingStatus {
	switch a {
	case ActionConfirm:
		return StatusConfirmed
	case ActionCancel:
		return StatusCancelled
	case ActionComplete:
		return StatusCompleted
	case ActionNoShow:
		return StatusNoShow
	default:
		return ""
	}
}
