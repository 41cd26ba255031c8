package sortedvec

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSortsInput(t *testing.T) {
	in := []int{5, 3, 9, 1, 3}
	v := New(in...)
	require.Equal(t, []int{1, 3, 3, 5, 9}, v.Items())
	require.Equal(t, []int{5, 3, 9, 1, 3}, in, "input must not be modified")
	require.NoError(t, v.Check())
	last, ok := v.Last()
	require.True(t, ok)
	require.Equal(t, 9, last)
	_, ok = New[int]().Last()
	require.False(t, ok)
}

func TestSearch(t *testing.T) {
	v := New(10, 20, 30)
	i, ok := v.Search(20)
	require.True(t, ok)
	require.Equal(t, 1, i)
	i, ok = v.Search(25)
	require.False(t, ok)
	require.Equal(t, 2, i)
}

func TestMergeWith(t *testing.T) {
	next := random(7)
	for _, n := range testSizes {
		for _, m := range []int{0, 1, 3, n / 2, n} {
			a := make([]int, n)
			b := make([]int, m)
			for i := range a {
				a[i] = next(50)
			}
			for i := range b {
				b[i] = next(50)
			}
			merged := New(a...).MergeWith(New(b...))
			want := slices.Sorted(slices.Values(append(slices.Clone(a), b...)))
			require.Equal(t, n+m, merged.Len())
			require.NoError(t, merged.Check())
			if n+m == 0 {
				require.Empty(t, merged.Items())
			} else {
				require.Equal(t, want, merged.Items())
			}
		}
	}
}

func TestMergeTiesFavorReceiver(t *testing.T) {
	type tagged struct {
		key int
		tag string
	}
	byKey := func(a, b tagged) int { return cmp.Compare(a.key, b.key) }
	left := NewFunc(byKey, tagged{1, "L"}, tagged{2, "L"})
	right := NewFunc(byKey, tagged{1, "R"}, tagged{2, "R"}, tagged{3, "R"})
	var tags []string
	for _, x := range left.MergeWith(right).Items() {
		tags = append(tags, x.tag)
	}
	require.Equal(t, "L R L R R", strings.Join(tags, " "))
}

func TestMergeWithoutComparatorPanics(t *testing.T) {
	require.Panics(t, func() {
		SortedVec[int]{}.MergeWith(SortedVec[int]{})
	})
	// a single comparator suffices
	merged := SortedVec[int]{}.MergeWith(New(2, 1))
	require.Equal(t, []int{1, 2}, merged.Items())
}

func TestCheckDetectsDisorder(t *testing.T) {
	v := New(1, 2, 3)
	v.items[0] = 4
	require.ErrorIs(t, v.Check(), ErrUnsorted)
}

func TestSiftLast(t *testing.T) {
	v := New(1, 4, 6, 9)
	v.items[3] = 2
	v.siftLast()
	require.Equal(t, []int{1, 2, 4, 6}, v.Items())
}

func TestNaNSortsFirst(t *testing.T) {
	v := New(2.5, math.NaN(), -1)
	require.NoError(t, v.Check())
	require.True(t, math.IsNaN(v.Items()[0]))
	i, ok := v.Search(math.NaN())
	require.True(t, ok)
	require.Equal(t, 0, i)
	_, ok = v.Search(0)
	require.False(t, ok)
}
