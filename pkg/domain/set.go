package domain

// OrderedSet is an insertion-ordered collection of unique elements. Adding
// an element that is already present is a no-op, so iteration order is
// first-seen order. This is exactly the seen-set used by order-preserving
// deduplication.
type OrderedSet[T comparable] struct {
	elements map[T]struct{} // O(1) membership
	order    []T            // first-seen order
}

// NewOrderedSet creates an ordered set seeded with the given elements.
func NewOrderedSet[T comparable](elements ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		elements: make(map[T]struct{}, len(elements)),
		order:    make([]T, 0, len(elements)),
	}
	s.Add(elements...)
	return s
}

// Add inserts elements not already present, preserving arrival order.
func (s *OrderedSet[T]) Add(items ...T) {
	for _, item := range items {
		if _, exists := s.elements[item]; exists {
			continue
		}
		s.elements[item] = struct{}{}
		s.order = append(s.order, item)
	}
}

// Has reports whether item is in the set.
func (s *OrderedSet[T]) Has(item T) bool {
	_, exists := s.elements[item]
	return exists
}

// Delete removes item if present, keeping the relative order of the rest.
func (s *OrderedSet[T]) Delete(item T) {
	if _, exists := s.elements[item]; !exists {
		return
	}
	delete(s.elements, item)
	for i, v := range s.order {
		if v == item {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Size returns the number of elements in the set.
func (s *OrderedSet[T]) Size() int {
	return len(s.order)
}

// IsEmpty reports whether the set has no elements.
func (s *OrderedSet[T]) IsEmpty() bool {
	return len(s.order) == 0
}

// Values returns a copy of the elements in first-seen order.
func (s *OrderedSet[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Set is a plain unordered set of comparable elements.
type Set[T comparable] map[T]struct{}

// NewSet creates a new set from the given elements.
func NewSet[T comparable](elements ...T) Set[T] {
	s := make(Set[T], len(elements))
	s.Add(elements...)
	return s
}

// Add adds elements to the set.
func (s Set[T]) Add(elements ...T) {
	for _, element := range elements {
		s[element] = struct{}{}
	}
}

// Has checks if an element exists in the set.
func (s Set[T]) Has(element T) bool {
	_, found := s[element]
	return found
}

// Delete removes an element from the set.
func (s Set[T]) Delete(element T) {
	delete(s, element)
}

// Size returns the number of elements in the set.
func (s Set[T]) Size() int {
	return len(s)
}

// ToSlice converts the set to a slice of its elements. Order is undefined.
func (s Set[T]) ToSlice() []T {
	slice := make([]T, 0, len(s))
	for element := range s {
		slice = append(slice, element)
	}
	return slice
}
