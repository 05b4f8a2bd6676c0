package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Apply calls set with the value pointed to by ptr. Absent fields are left untouched.
func Apply[T any](ptr *T, set func(T) error) error {
	if ptr == nil {
		return nil
	}
	return set(*ptr)
}
