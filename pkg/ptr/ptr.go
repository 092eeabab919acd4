package ptr

// Ptr returns a pointer to the given value.
// Convenience helper for building requests with optional fields.
func Ptr[T any](v T) *T {
	return &v
}
