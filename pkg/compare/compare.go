package compare

// Slices compares two slices for equality using an equality function for
// elements. Returns true if both slices have the same length and all
// corresponding elements are equal.
//
// Example:
//
//	func (cs ColumnSet) Equal(other ColumnSet) bool {
//	    return compare.Slices(cs, other, func(a, b Column) bool { return a.Equal(b) })
//	}
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SlicesUnordered compares two slices for equality regardless of order.
// Returns true if both slices contain the same elements (by the equality
// function), matching each element at most once.
func SlicesUnordered[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}

	matched := make([]bool, len(b))
	for _, aElem := range a {
		found := false
		for j, bElem := range b {
			if !matched[j] && equalFunc(aElem, bElem) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Maps compares two maps for equality. Returns true if both maps have the
// same keys and all corresponding values are equal.
func Maps[K comparable, V comparable](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
