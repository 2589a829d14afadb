package sliceutil

import (
	"cmp"
	"slices"
)

// SortLike returns a copy of xs stably sorted so that elements whose derived
// key appears earlier in ref sort before those appearing later. Elements
// whose key does not appear in ref share a single rank after all elements
// that do, keeping their relative order from xs. An empty ref yields xs in
// its original order.
func SortLike[T any, K comparable](xs []T, ref []K, key func(T) K) []T {
	out := slices.Clone(xs)
	SortLikeInPlace(out, ref, key)
	return out
}

// SortLikeInPlace sorts xs in place under the same contract as SortLike.
func SortLikeInPlace[T any, K comparable](xs []T, ref []K, key func(T) K) {
	rank := make(map[K]int, len(ref))
	for i, k := range ref {
		if _, ok := rank[k]; !ok {
			rank[k] = i
		}
	}
	rankOf := func(x T) int {
		if r, ok := rank[key(x)]; ok {
			return r
		}
		return len(ref)
	}
	slices.SortStableFunc(xs, func(a, b T) int {
		return cmp.Compare(rankOf(a), rankOf(b))
	})
}
