package ptr

// Ptr returns a pointer to the given value.
// Useful for passing optional parameters without temporary variables.
func Ptr[T any](v T) *T {
	return &v
}
