package sliceutil

import "github.com/hankgalt/collection-kit/pkg/domain"

// Identifier-keyed operations over ordered sequences. Duplicate identifiers
// are tolerated, not assumed impossible: the single-match operations act on
// the first element (in slice order) whose identifier equals the query.

// FindByID returns the first element whose identifier equals id, or the
// zero value and false when no element matches.
func FindByID[ID comparable, E domain.HasId[ID]](xs []E, id ID) (E, bool) {
	for _, x := range xs {
		if x.GetId() == id {
			return x, true
		}
	}
	var zero E
	return zero, false
}

// IndexByID returns the position of the first element whose identifier
// equals id, or -1 when no element matches.
func IndexByID[ID comparable, E domain.HasId[ID]](xs []E, id ID) int {
	for i, x := range xs {
		if x.GetId() == id {
			return i
		}
	}
	return -1
}

// AllByID returns every element sharing the identifier, in slice order.
func AllByID[ID comparable, E domain.HasId[ID]](xs []E, id ID) []E {
	var out []E
	for _, x := range xs {
		if x.GetId() == id {
			out = append(out, x)
		}
	}
	return out
}

// IndicesByID returns the position of every element sharing the identifier.
func IndicesByID[ID comparable, E domain.HasId[ID]](xs []E, id ID) []int {
	var out []int
	for i, x := range xs {
		if x.GetId() == id {
			out = append(out, i)
		}
	}
	return out
}

// ContainsID reports whether any element carries the identifier.
func ContainsID[ID comparable, E domain.HasId[ID]](xs []E, id ID) bool {
	return IndexByID(xs, id) >= 0
}

// MapByID builds an identifier→element map from xs. When several elements
// share an identifier, the one appearing first in slice order wins.
func MapByID[ID comparable, E domain.HasId[ID]](xs []E) map[ID]E {
	m := make(map[ID]E, len(xs))
	for _, x := range xs {
		id := x.GetId()
		if _, exists := m[id]; exists {
			continue
		}
		m[id] = x
	}
	return m
}

// Upsert replaces the first element whose identifier matches e's, keeping
// its position, or appends e when no element matches. The resulting slice
// is returned.
func Upsert[ID comparable, E domain.HasId[ID]](xs []E, e E) []E {
	if i := IndexByID(xs, e.GetId()); i >= 0 {
		xs[i] = e
		return xs
	}
	return append(xs, e)
}

// DeleteByID removes the first element carrying the identifier; a miss is a
// no-op. The resulting slice is returned.
func DeleteByID[ID comparable, E domain.HasId[ID]](xs []E, id ID) []E {
	i := IndexByID(xs, id)
	if i < 0 {
		return xs
	}
	return append(xs[:i], xs[i+1:]...)
}

// DeleteAllByID removes every element carrying the identifier, keeping the
// relative order of the rest.
func DeleteAllByID[ID comparable, E domain.HasId[ID]](xs []E, id ID) []E {
	out := xs[:0]
	for _, x := range xs {
		if x.GetId() != id {
			out = append(out, x)
		}
	}
	return out
}

// MoveByID relocates the first element carrying the identifier to position
// to, shifting the others. The target position is interpreted against the
// slice state after the element has been removed, and is clamped into that
// range. A miss is a no-op.
func MoveByID[ID comparable, E domain.HasId[ID]](xs []E, id ID, to int) []E {
	i := IndexByID(xs, id)
	if i < 0 {
		return xs
	}
	e := xs[i]
	rest := append(xs[:i], xs[i+1:]...)
	if to < 0 {
		to = 0
	}
	if to > len(rest) {
		to = len(rest)
	}
	rest = append(rest, e)
	copy(rest[to+1:], rest[to:])
	rest[to] = e
	return rest
}

// SwapByID exchanges the positions of the first elements matching the two
// identifiers. A miss on either identifier, or two equal identifiers, is a
// no-op.
func SwapByID[ID comparable, E domain.HasId[ID]](xs []E, a, b ID) []E {
	if a == b {
		return xs
	}
	i := IndexByID(xs, a)
	j := IndexByID(xs, b)
	if i < 0 || j < 0 {
		return xs
	}
	xs[i], xs[j] = xs[j], xs[i]
	return xs
}
