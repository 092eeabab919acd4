package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	createBooking "github.com/erplora/OnlineBooking-Service/internal/usecase/create_booking"
	"github.com/erplora/OnlineBooking-Service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	ServiceID   *uuid.UUID `json:"serviceId,omitempty"`
	ServiceName string     `json:"serviceName"`
	StaffID     *uuid.UUID `json:"staffId,omitempty"`
	StaffName   string     `json:"staffName,omitempty"`

	BookingDate     string `json:"bookingDate"` // "2026-03-14"
	BookingTime     string `json:"bookingTime"` // "14:30"
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               uuid.UUID  `json:"id"`
	BookingReference string     `json:"bookingReference"`
	Status           string     `json:"status"`
	CustomerID       *uuid.UUID `json:"customerId,omitempty"`
	CustomerName     string     `json:"customerName"`
	CustomerEmail    string     `json:"customerEmail,omitempty"`
	ServiceName      string     `json:"serviceName"`
	BookingDate      string     `json:"bookingDate"`
	BookingTime      string     `json:"bookingTime"`
	DurationMinutes  int        `json:"durationMinutes"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        string     `json:"createdAt"`
	UpdatedAt        string     `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time.
func (r *CreateBookingRequest) ToUseCaseRequest(hubID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime := types.TimeString(r.BookingTime)
	if err := startTime.Validate(); err != nil {
		return nil, err
	}

	return &createBooking.Request{
		HubID:           hubID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		StaffID:         r.StaffID,
		StaffName:       r.StaffName,
		Date:            bookingDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		BookingReference: resp.BookingReference,
		Status:           resp.Status,
		CustomerID:       resp.CustomerID,
		CustomerName:     resp.CustomerName,
		CustomerEmail:    resp.CustomerEmail,
		ServiceName:      resp.ServiceName,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		BookingTime:      resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
