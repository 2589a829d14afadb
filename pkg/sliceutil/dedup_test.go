package sliceutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hankgalt/collection-kit/pkg/sliceutil"
)

func TestUnique(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"mixed duplicates", []int{1, 2, 2, 3, 1, 4, 3, 5}, []int{1, 2, 3, 4, 5}},
		{"no duplicates", []int{1, 2, 3}, []int{1, 2, 3}},
		{"all duplicates", []int{7, 7, 7, 7}, []int{7}},
		{"empty", []int{}, []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, sliceutil.Unique(tc.input))
		})
	}
}

func TestUniqueIdempotent(t *testing.T) {
	input := []string{"b", "a", "b", "c", "a"}
	once := sliceutil.Unique(input)
	require.Equal(t, once, sliceutil.Unique(once))
}

func TestUniquePure(t *testing.T) {
	input := []int{1, 1, 2}
	_ = sliceutil.Unique(input)
	require.Equal(t, []int{1, 1, 2}, input)
}

func TestUniqueBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	got := sliceutil.UniqueBy(words, func(w string) byte { return w[0] })
	require.Equal(t, []string{"apple", "banana", "cherry"}, got)
}

func TestUniqueEqMatchesUnique(t *testing.T) {
	input := []int{1, 2, 2, 3, 1, 4, 3, 5}
	fast := sliceutil.Unique(input)
	slow := sliceutil.UniqueEq(input, func(a, b int) bool { return a == b })
	require.Equal(t, fast, slow)
}

func TestUniqueByEqMatchesUniqueBy(t *testing.T) {
	words := []string{"Apple", "apricot", "Banana", "berry"}
	key := func(w string) string { return strings.ToLower(w[:1]) }
	fast := sliceutil.UniqueBy(words, key)
	slow := sliceutil.UniqueByEq(words, key, func(a, b string) bool { return a == b })
	require.Equal(t, fast, slow)
}

func TestUniqueInPlace(t *testing.T) {
	xs := []int{1, 2, 2, 3, 1}
	got := sliceutil.UniqueInPlace(&xs)
	require.Equal(t, []int{1, 2, 3}, xs)
	require.Equal(t, xs, got)
}

func TestUniqueEqInPlace(t *testing.T) {
	xs := []int{1, 2, 2, 3, 1}
	got := sliceutil.UniqueEqInPlace(&xs, func(a, b int) bool { return a == b })
	require.Equal(t, []int{1, 2, 3}, xs)
	require.Equal(t, xs, got)
}

func TestUniqueByEqInPlace(t *testing.T) {
	type row struct{ group, val string }
	xs := []row{{"A", "1"}, {"a", "2"}, {"b", "3"}}
	got := sliceutil.UniqueByEqInPlace(&xs,
		func(r row) string { return r.group },
		func(a, b string) bool { return strings.EqualFold(a, b) },
	)
	require.Equal(t, []row{{"A", "1"}, {"b", "3"}}, xs)
	require.Equal(t, xs, got)
}

func TestUniqueByInPlace(t *testing.T) {
	type row struct{ group, val string }
	xs := []row{{"a", "1"}, {"a", "2"}, {"b", "3"}}
	got := sliceutil.UniqueByInPlace(&xs, func(r row) string { return r.group })
	require.Equal(t, []row{{"a", "1"}, {"b", "3"}}, xs)
	require.Equal(t, xs, got)
}
