package customerservice

import "errors"

var (
	// ErrCustomerNotFound is returned when no customer matches the lookup
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("customerservice client: internal error")

	// ErrInvalidResponse is returned when the service responds with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("customerservice client: invalid response")

	// ErrServiceDegraded is returned when the customer service is
	// unreachable. Bookings then keep their snapshot fields without a
	// customer link.
	ErrServiceDegraded = errors.New("customerservice unavailable: graceful degradation applied")
)
