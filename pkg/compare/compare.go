// Package compare contains the comparison idioms of the containers:
// a three-way comparison function contract and the natural orderings.
package compare

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Interface defines how comparison can be implemented on a user-defined type.
//
// Types implementing this interface must provide a Compare method that defines
// the ordering or equivalence of values.
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// Func is a three-way comparison over T, defining a total order.
// It returns a negative value when a sorts before b,
// zero when they are equivalent, and a positive value when a sorts after b.
type Func[T any] func(a, b T) int

// Ordered is the natural ordering of any ordered primitive type.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// Numbers compares two numeric values by their natural ordering.
func Numbers[T constraints.Integer | constraints.Float](a, b T) int {
	return Ordered(a, b)
}

// Strings compares two string-like values lexicographically.
func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Reverse turns a comparison function into its reversed ordering.
func Reverse[T any](cmp Func[T]) Func[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}
