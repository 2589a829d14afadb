package sliceutil

import "github.com/hankgalt/collection-kit/pkg/domain"

// Unique returns a new slice retaining only the first occurrence of each
// element, preserving the relative order of first occurrences.
// O(n) time, O(n) extra space.
func Unique[T comparable](xs []T) []T {
	return domain.NewOrderedSet(xs...).Values()
}

// UniqueBy returns a new slice retaining, for each distinct derived key, the
// first element producing that key. Order of first occurrences is preserved.
func UniqueBy[T any, K comparable](xs []T, key func(T) K) []T {
	seen := domain.NewSet[K]()
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		k := key(x)
		if seen.Has(k) {
			continue
		}
		seen.Add(k)
		out = append(out, x)
	}
	return out
}

// UniqueEq dedups with only an equality function. Each element is checked
// against the output built so far, so cost is O(n²) — the price of not
// requiring a comparable element type. For comparable elements it produces
// the same output as Unique.
func UniqueEq[T any](xs []T, eq func(a, b T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		dup := false
		for _, y := range out {
			if eq(y, x) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, x)
		}
	}
	return out
}

// UniqueByEq dedups by a derived key using only a key equality function.
// O(n²) in the number of distinct keys seen so far; for comparable keys it
// produces the same output as UniqueBy.
func UniqueByEq[T, K any](xs []T, key func(T) K, eq func(a, b K) bool) []T {
	keys := make([]K, 0, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		k := key(x)
		dup := false
		for _, seen := range keys {
			if eq(seen, k) {
				dup = true
				break
			}
		}
		if !dup {
			keys = append(keys, k)
			out = append(out, x)
		}
	}
	return out
}

// UniqueInPlace assigns the deduplicated result back into *xs and also
// returns it, for chaining.
func UniqueInPlace[T comparable](xs *[]T) []T {
	*xs = Unique(*xs)
	return *xs
}

// UniqueByInPlace assigns the key-deduplicated result back into *xs and
// also returns it.
func UniqueByInPlace[T any, K comparable](xs *[]T, key func(T) K) []T {
	*xs = UniqueBy(*xs, key)
	return *xs
}

// UniqueEqInPlace assigns the equality-only deduplicated result back into
// *xs and also returns it.
func UniqueEqInPlace[T any](xs *[]T, eq func(a, b T) bool) []T {
	*xs = UniqueEq(*xs, eq)
	return *xs
}

// UniqueByEqInPlace assigns the key-equality deduplicated result back into
// *xs and also returns it.
func UniqueByEqInPlace[T, K any](xs *[]T, key func(T) K, eq func(a, b K) bool) []T {
	*xs = UniqueByEq(*xs, key, eq)
	return *xs
}
