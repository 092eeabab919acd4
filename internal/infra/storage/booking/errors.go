package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no matching booking exists
	// for the hub
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateReference is returned when an insert collides with an
	// existing booking reference for the hub
	ErrDuplicateReference = errors.New("booking.repository: duplicate booking reference")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
