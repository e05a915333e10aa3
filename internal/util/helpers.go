package util

// Ptr returns a pointer to the value.
func Ptr[T any](v T) *T {
	return &v
}

// Deref safely dereferences a pointer, returning the zero value if nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Clamp limits value to [lo, hi]. An empty range (hi < lo) yields lo, which
// keeps cursors at 0 for empty lists.
func Clamp(value, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(value, lo), hi)
}
