// Package batch implements copy-then-compare atomic updates: a mutation
// callback runs against a working copy of a container, and the copy is
// committed back as a single assignment only when it differs from the
// original. "Atomic" means transactionally consistent for a single caller;
// there is no locking, and concurrent mutation of the same container is
// undefined behavior.
package batch

import (
	"maps"
	"slices"

	"github.com/hankgalt/collection-kit/pkg/domain"
	"github.com/hankgalt/collection-kit/pkg/idset"
)

// Update applies fn to a working copy of *target and commits the copy back
// only when it differs element-wise from the original; a no-net-change
// batch leaves *target — including its backing array — untouched. On a
// callback error *target keeps its pre-call value and the error propagates.
// fn's auxiliary result is returned regardless of whether a commit
// occurred, alongside whether one did.
func Update[T comparable, R any](target *[]T, fn func(*[]T) (R, error)) (R, bool, error) {
	work := slices.Clone(*target)
	res, err := fn(&work)
	if err != nil {
		return res, false, err
	}
	if slices.Equal(work, *target) {
		return res, false, nil
	}
	*target = work
	return res, true, nil
}

// UpdateAny is Update for element types that do not support equality
// comparison. With no way to detect a no-op, it always commits on success.
func UpdateAny[T, R any](target *[]T, fn func(*[]T) (R, error)) (R, bool, error) {
	work := slices.Clone(*target)
	res, err := fn(&work)
	if err != nil {
		return res, false, err
	}
	*target = work
	return res, true, nil
}

// UpdateMap is Update for key-value maps with comparable values.
func UpdateMap[K, V comparable, R any](target *map[K]V, fn func(map[K]V) (R, error)) (R, bool, error) {
	work := maps.Clone(*target)
	if work == nil {
		work = make(map[K]V)
	}
	res, err := fn(work)
	if err != nil {
		return res, false, err
	}
	if maps.Equal(work, *target) {
		return res, false, nil
	}
	*target = work
	return res, true, nil
}

// UpdateSet is Update for identifiable-element sets.
func UpdateSet[ID comparable, E domain.Element[ID], R any](target *idset.Set[ID, E], fn func(idset.Set[ID, E]) (R, error)) (R, bool, error) {
	work := make(idset.Set[ID, E], len(*target))
	for e := range *target {
		work[e] = struct{}{}
	}
	res, err := fn(work)
	if err != nil {
		return res, false, err
	}
	if maps.Equal(work, *target) {
		return res, false, nil
	}
	*target = work
	return res, true, nil
}
