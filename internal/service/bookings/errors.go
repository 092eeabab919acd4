package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist for
	// the hub
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition is returned when the booking's current status
	// does not allow the requested action
	ErrInvalidTransition = errors.New("booking status does not allow this action")

	// ErrUnknownAction is returned for an action verb outside
	// confirm/cancel/complete/no_show (plus delete for bulk requests)
	ErrUnknownAction = errors.New("unknown booking action")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
