package create_booking

import (
	"fmt"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
)

// validateRequest checks the request fields that do not depend on the
// hub's settings. Contact details beyond the name are optional here:
// the admin records whatever the customer left, the public page
// enforces its own required fields.
func validateRequest(req *Request) error {
	if req.HubID <= 0 {
		return fmt.Errorf("%w: hub id is required", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.ServiceName == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return ErrInvalidDate
	}
	if req.StartTime.IsZero() {
		return ErrInvalidTime
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
