package create_booking

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate is returned for a missing or malformed booking date
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTime is returned for a malformed start time
	ErrInvalidTime = errors.New("create_booking: invalid booking time")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("create_booking: internal error")
)
