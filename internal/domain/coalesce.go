package domain

// Coalesce returns the first value that is not the zero value of T. Blank
// form fields and unset flags use it to fall back to defaults.
func Coalesce[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}
