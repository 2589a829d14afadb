package idset

// Predicate-driven mutation. Each operation mutates a copy of a matched
// element and only pays the remove+reinsert round-trip when the mutated
// copy differs from the original, to avoid needless hash churn. Found/count
// results report matches processed, independent of whether any mutation
// changed anything.
//
// A predicate or mutator error aborts the operation immediately. The
// single-match forms leave the set untouched on error; the *-All forms may
// leave earlier matches already committed — there is no rollback.

// UpdateFirst mutates a copy of one element satisfying match and reports
// whether a match was found.
func (s Set[ID, E]) UpdateFirst(match func(E) (bool, error), mutate func(*E) error) (bool, error) {
	for e := range s {
		ok, err := match(e)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		updated := e
		if err := mutate(&updated); err != nil {
			return false, err
		}
		if updated != e {
			delete(s, e)
			s[updated] = struct{}{}
		}
		return true, nil
	}
	return false, nil
}

// UpdateByID mutates a copy of the element carrying the identifier and
// reports whether one was found.
func (s Set[ID, E]) UpdateByID(id ID, mutate func(*E) error) (bool, error) {
	return s.UpdateFirst(func(e E) (bool, error) {
		return e.GetId() == id, nil
	}, mutate)
}

// UpdateAll mutates a copy of every element satisfying match and returns
// the number of matches processed, including those whose mutation was a
// no-op.
func (s Set[ID, E]) UpdateAll(match func(E) (bool, error), mutate func(*E) error) (int, error) {
	// Snapshot first so reinserted elements are not revisited mid-iteration.
	elements := s.Values()
	count := 0
	for _, e := range elements {
		ok, err := match(e)
		if err != nil {
			return count, err
		}
		if !ok {
			continue
		}
		updated := e
		if err := mutate(&updated); err != nil {
			return count, err
		}
		if updated != e {
			delete(s, e)
			s[updated] = struct{}{}
		}
		count++
	}
	return count, nil
}

// RemoveFirst deletes one element satisfying match and reports whether a
// match was found.
func (s Set[ID, E]) RemoveFirst(match func(E) (bool, error)) (bool, error) {
	for e := range s {
		ok, err := match(e)
		if err != nil {
			return false, err
		}
		if ok {
			delete(s, e)
			return true, nil
		}
	}
	return false, nil
}

// RemoveAll deletes every element satisfying match and returns the number
// removed.
func (s Set[ID, E]) RemoveAll(match func(E) (bool, error)) (int, error) {
	elements := s.Values()
	count := 0
	for _, e := range elements {
		ok, err := match(e)
		if err != nil {
			return count, err
		}
		if ok {
			delete(s, e)
			count++
		}
	}
	return count, nil
}
