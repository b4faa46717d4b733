package adf

// oneOf checks membership of v in a closed value set. Every enum-backed
// setter in the package routes through here so the check and its error
// shape exist exactly once.
func oneOf[T ~string](field string, v T, allowed []T) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return &InvalidEnumValueError{Field: field, Value: string(v), Allowed: names}
}
