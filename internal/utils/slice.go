package utils

// Keys returns the keys of a map
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0)
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Flatten concatenates the inner slices of a nested slice
func Flatten[T any](nested [][]T) []T {
	flat := make([]T, 0)
	for _, inner := range nested {
		flat = append(flat, inner...)
	}
	return flat
}
