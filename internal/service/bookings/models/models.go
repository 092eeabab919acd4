package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status filter value
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate is returned for a date that is not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")
)

// Request models

// ListBookingsRequest carries the list view query parameters.
type ListBookingsRequest struct {
	HubID    int64
	Query    string
	Status   *string
	DateFrom *string
	DateTo   *string
	Sort     string
	Dir      string
	Page     int
	PerPage  int

	// Limit is a free-form row cap used by non-paginated callers. When
	// set it overrides PerPage snapping and is clamped to
	// domain.MaxListLimit.
	Limit int
}

// ToDomainFilter validates and converts the request into a domain
// filter. Unknown sort fields and page sizes fall back to defaults;
// unknown status values are rejected.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		HubID:     r.HubID,
		Query:     r.Query,
		SortField: domain.ParseSortField(r.Sort),
		SortDir:   domain.ParseSortDir(r.Dir),
		Page:      r.Page,
		PerPage:   domain.NormalizePerPage(r.PerPage),
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if r.Limit > 0 {
		filter.PerPage = domain.ClampLimit(r.Limit)
	}

	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.DateFrom != nil && *r.DateFrom != "" {
		from, err := time.Parse(domain.DateFormat, *r.DateFrom)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.DateFrom = &from
	}

	if r.DateTo != nil && *r.DateTo != "" {
		to, err := time.Parse(domain.DateFormat, *r.DateTo)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.DateTo = &to
	}

	return filter, nil
}

// UpdateStatusRequest carries one status transition request.
type UpdateStatusRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// BulkActionRequest applies one action to a set of bookings.
type BulkActionRequest struct {
	IDs    []uuid.UUID `json:"ids"`
	Action string      `json:"action"`
}

// Response models

// BookingResponse is the booking DTO returned by the service.
type BookingResponse struct {
	ID               uuid.UUID  `json:"id"`
	BookingReference string     `json:"bookingReference"`
	CustomerID       *uuid.UUID `json:"customerId,omitempty"`
	CustomerName     string     `json:"customerName"`
	CustomerEmail    string     `json:"customerEmail,omitempty"`
	CustomerPhone    string     `json:"customerPhone,omitempty"`
	ServiceID        *uuid.UUID `json:"serviceId,omitempty"`
	ServiceName      string     `json:"serviceName"`
	StaffID          *uuid.UUID `json:"staffId,omitempty"`
	StaffName        string     `json:"staffName,omitempty"`
	BookingDate      string     `json:"bookingDate"` // "2026-03-14"
	BookingTime      string     `json:"bookingTime"` // "14:30"
	DurationMinutes  int        `json:"durationMinutes"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes,omitempty"`

	ConfirmedAt        *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is one page of bookings.
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	TotalPages int               `json:"totalPages"`
}

// UpdateStatusResponse reports the booking state after a transition.
type UpdateStatusResponse struct {
	ID               uuid.UUID `json:"id"`
	BookingReference string    `json:"bookingReference"`
	Status           string    `json:"status"`
}

// BulkActionResponse reports how many bookings a bulk request changed.
// Updated can be lower than Requested when some bookings were not
// eligible for the action.
type BulkActionResponse struct {
	Action    string `json:"action"`
	Requested int    `json:"requested"`
	Updated   int64  `json:"updated"`
}

// DashboardResponse is the admin dashboard summary for a hub.
type DashboardResponse struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Confirmed  int64 `json:"confirmed"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
	NoShow     int64 `json:"noShow"`
	TodayCount int64 `json:"todayCount"`

	// ConfirmedToday counts confirmed bookings scheduled for today;
	// WeekCount counts all bookings scheduled in the current ISO week.
	ConfirmedToday int64 `json:"confirmedToday"`
	WeekCount      int64 `json:"weekCount"`

	// NoShowRate is the share of no-shows among finished bookings, in
	// percent rounded to one decimal.
	NoShowRate float64 `json:"noShowRate"`

	Upcoming []BookingResponse `json:"upcoming"`
}

// Conversion helpers

// ToDomainBookingStatus parses a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainBooking converts a domain booking into a DTO.
func FromDomainBooking(b *domain.OnlineBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                 b.ID,
		BookingReference:   b.BookingReference,
		CustomerID:         b.CustomerID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		StaffID:            b.StaffID,
		StaffName:          b.StaffName,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		BookingTime:        b.BookingTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		Notes:              b.Notes,
		ConfirmedAt:        b.ConfirmedAt,
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList converts one result page into a DTO.
func FromDomainBookingList(bookings []*domain.OnlineBooking, total int64, page, perPage int) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b))
	}

	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}

	return &BookingListResponse{
		Bookings:   items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
