package sliceutil

// Chunk splits xs into consecutive chunks of at most size elements,
// preserving order; the final chunk may be shorter. A non-positive size or
// an empty input yields no chunks.
func Chunk[T any](xs []T, size int) [][]T {
	if size <= 0 || len(xs) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(xs)+size-1)/size)
	for i := 0; i < len(xs); i += size {
		end := i + size
		if end > len(xs) {
			end = len(xs)
		}
		out = append(out, xs[i:end:end])
	}
	return out
}
