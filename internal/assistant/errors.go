package assistant

import "errors"

var (
	// ErrToolNotFound is returned for a tool name outside the registry
	ErrToolNotFound = errors.New("assistant: tool not found")

	// ErrInvalidArgs is returned when the tool arguments fail to parse
	// or miss required fields
	ErrInvalidArgs = errors.New("assistant: invalid tool arguments")
)
