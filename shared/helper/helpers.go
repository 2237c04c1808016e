package helper

// Must returns v, or panics with err when err is not nil.
// Use when failure should be fatal (e.g., package-level enum declarations).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// GetTypedValueOf2 safely asserts a raw value to the expected type T.
// ok is false when raw is nil or holds another type.
func GetTypedValueOf2[T any](raw any) (res T, ok bool) {
	res, ok = raw.(T)
	return
}
