// Package mapkit offers utility functions for common map related scenarios.
package mapkit

// Keys returns the keys of the map.
// The order of the keys is not specified.
// An optional sorting function can be supplied to make the result deterministic.
func Keys[K comparable, V any](m map[K]V, sort ...func([]K)) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for _, s := range sort {
		s(keys)
	}
	return keys
}

// Values returns the values of the map.
// The order of the values is not specified.
func Values[K comparable, V any](m map[K]V, sort ...func([]V)) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	for _, s := range sort {
		s(values)
	}
	return values
}

// Clone returns a shallow copy of the input map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
