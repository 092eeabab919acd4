package settings

import "errors"

var (
	// ErrInvalidInput is returned when a settings update fails validation
	ErrInvalidInput = errors.New("invalid settings data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
