package sliceutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hankgalt/collection-kit/pkg/sliceutil"
)

type item struct {
	name     string
	category string
}

func itemCategory(it item) string { return it.category }

func TestSortLike(t *testing.T) {
	items := []item{
		{"apple", "fruit"},
		{"carrot", "vegetable"},
		{"rice", "grain"},
		{"banana", "fruit"},
	}
	ref := []string{"vegetable", "grain", "fruit"}

	got := sliceutil.SortLike(items, ref, itemCategory)
	require.Equal(t, []item{
		{"carrot", "vegetable"},
		{"rice", "grain"},
		{"apple", "fruit"},
		{"banana", "fruit"}, // original relative order among equal ranks
	}, got)

	// pure variant leaves the input untouched
	require.Equal(t, "apple", items[0].name)
}

func TestSortLikeEmptyReference(t *testing.T) {
	items := []item{{"b", "x"}, {"a", "y"}, {"c", "x"}}
	got := sliceutil.SortLike(items, []string{}, itemCategory)
	require.Equal(t, items, got)
}

func TestSortLikeUnknownKeysLast(t *testing.T) {
	items := []item{
		{"n1", "unknown-a"},
		{"n2", "grain"},
		{"n3", "unknown-b"},
		{"n4", "fruit"},
	}
	got := sliceutil.SortLike(items, []string{"fruit", "grain"}, itemCategory)
	require.Equal(t, []item{
		{"n4", "fruit"},
		{"n2", "grain"},
		{"n1", "unknown-a"}, // unknowns share one rank, input order kept
		{"n3", "unknown-b"},
	}, got)
}

func TestSortLikeInPlace(t *testing.T) {
	xs := []string{"c", "a", "b"}
	sliceutil.SortLikeInPlace(xs, []string{"b", "c", "a"}, func(s string) string { return s })
	require.Equal(t, []string{"b", "c", "a"}, xs)
}

func TestSortLikeDuplicateReferenceKeys(t *testing.T) {
	// first occurrence in the reference defines the rank
	xs := []string{"b", "a"}
	got := sliceutil.SortLike(xs, []string{"a", "b", "a"}, func(s string) string { return s })
	require.Equal(t, []string{"a", "b"}, got)
}
