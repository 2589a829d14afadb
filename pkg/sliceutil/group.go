package sliceutil

// GroupBy partitions xs into a key→elements map. Map keys carry no iteration
// order; the elements under each key preserve their relative order from xs.
func GroupBy[T any, K comparable](xs []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, x := range xs {
		k := key(x)
		groups[k] = append(groups[k], x)
	}
	return groups
}

// GroupByErr is GroupBy with a fallible key selector. A selector error
// aborts the whole operation and no partial map is returned.
func GroupByErr[T any, K comparable](xs []T, key func(T) (K, error)) (map[K][]T, error) {
	groups := make(map[K][]T)
	for _, x := range xs {
		k, err := key(x)
		if err != nil {
			return nil, err
		}
		groups[k] = append(groups[k], x)
	}
	return groups, nil
}
