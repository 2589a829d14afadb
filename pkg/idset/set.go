// Package idset provides a hash-set of identifiable elements, keyed twice:
// by the element's own value for membership, and by its identifier for
// lookup and mutation. Set elements are immutable under their own equality,
// so "replace" and "update" are implemented as remove-then-insert.
package idset

import "github.com/hankgalt/collection-kit/pkg/domain"

// Set is an unordered collection of unique identifiable elements. Iteration
// order is undefined; "first match" in the predicate operations means an
// arbitrary matching element.
type Set[ID comparable, E domain.Element[ID]] map[E]struct{}

// New creates a set from the given elements.
func New[ID comparable, E domain.Element[ID]](elements ...E) Set[ID, E] {
	s := make(Set[ID, E], len(elements))
	s.Add(elements...)
	return s
}

// Add inserts elements into the set.
func (s Set[ID, E]) Add(elements ...E) {
	for _, e := range elements {
		s[e] = struct{}{}
	}
}

// Has reports whether e is a member of the set.
func (s Set[ID, E]) Has(e E) bool {
	_, found := s[e]
	return found
}

// Delete removes e from the set.
func (s Set[ID, E]) Delete(e E) {
	delete(s, e)
}

// Size returns the number of elements in the set.
func (s Set[ID, E]) Size() int {
	return len(s)
}

// Values returns the elements as a slice. Order is undefined.
func (s Set[ID, E]) Values() []E {
	out := make([]E, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return out
}

// Get returns an element carrying the identifier, or the zero value and
// false when none does.
func (s Set[ID, E]) Get(id ID) (E, bool) {
	for e := range s {
		if e.GetId() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// ContainsID reports whether any element carries the identifier.
func (s Set[ID, E]) ContainsID(id ID) bool {
	_, found := s.Get(id)
	return found
}

// Upsert removes any element carrying e's identifier and inserts e.
func (s Set[ID, E]) Upsert(e E) {
	s.DeleteByID(e.GetId())
	s[e] = struct{}{}
}

// DeleteByID removes the element carrying the identifier, reporting whether
// one was found.
func (s Set[ID, E]) DeleteByID(id ID) bool {
	e, found := s.Get(id)
	if found {
		delete(s, e)
	}
	return found
}
