package sliceutil

import "golang.org/x/exp/constraints"

// At returns the element at index i, or the zero value and false when i is
// out of range. Any integer is accepted, including negatives.
func At[T any](xs []T, i int) (T, bool) {
	if i < 0 || i >= len(xs) {
		var zero T
		return zero, false
	}
	return xs[i], true
}

// Circular returns the element at i wrapped into [0, len(xs)) so that any
// integer index, positive or negative, resolves to an element. Calling it
// on an empty slice is a precondition violation and panics; callers must
// guarantee non-emptiness.
func Circular[T any](xs []T, i int) T {
	n := len(xs)
	if n == 0 {
		panic("sliceutil.Circular: empty slice")
	}
	return xs[((i%n)+n)%n]
}

// NonEmpty returns xs and true when it has at least one element, or nil and
// false otherwise.
func NonEmpty[T any](xs []T) ([]T, bool) {
	if len(xs) == 0 {
		return nil, false
	}
	return xs, true
}

// IfEmpty invokes fn when xs is empty and returns xs unchanged, for chaining.
func IfEmpty[T any](xs []T, fn func()) []T {
	if len(xs) == 0 {
		fn()
	}
	return xs
}

// IfNotEmpty invokes fn with xs when xs has elements and returns xs
// unchanged, for chaining.
func IfNotEmpty[T any](xs []T, fn func([]T)) []T {
	if len(xs) > 0 {
		fn(xs)
	}
	return xs
}

// Empty returns the canonical empty slice for T: non-nil, zero length.
func Empty[T any]() []T {
	return []T{}
}

// Contains reports whether v is an element of xs (O(n)).
func Contains[T comparable](xs []T, v T) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Filter returns a new slice with the elements for which pred is true,
// preserving order.
func Filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// Map applies f to each element and returns the resulting slice.
func Map[A, B any](xs []A, f func(A) B) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Min returns the smallest element. Panics on an empty slice.
func Min[T constraints.Ordered](xs []T) T {
	if len(xs) == 0 {
		panic("sliceutil.Min: empty slice")
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest element. Panics on an empty slice.
func Max[T constraints.Ordered](xs []T) T {
	if len(xs) == 0 {
		panic("sliceutil.Max: empty slice")
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
