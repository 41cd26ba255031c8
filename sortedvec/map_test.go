package sortedvec

import (
	"maps"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/dynamize"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func makeMap[V any](t *testing.T, k dynamize.Kind) *SVMap[int, V] {
	t.Helper()
	m, err := NewSVMap[int, V](OptStrategy(k))
	require.NoError(t, err)
	return m
}

func TestMapInsertOverwrites(t *testing.T) {
	for _, k := range strategies {
		m := makeMap[string](t, k)
		_, ok := m.Insert(5, "a")
		require.False(t, ok)
		_, ok = m.Insert(3, "b")
		require.False(t, ok)
		prev, ok := m.Insert(5, "c")
		require.True(t, ok)
		require.Equal(t, "a", prev)

		v, ok := m.Get(5)
		require.True(t, ok)
		require.Equal(t, "c", v)
		v, ok = m.Get(3)
		require.True(t, ok)
		require.Equal(t, "b", v)
		require.Equal(t, 2, m.Len())
		require.NoError(t, m.Check())
	}
}

func TestMapEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dynamize")
	defer teardown()

	for _, k := range strategies {
		next := random(42)
		for _, size := range []int{0, 1, 2, 3, 4, 5, 10, 100, 1000, 5000} {
			m := makeMap[int](t, k)
			ref := make(map[int]int)
			for step := 0; step < size; step++ {
				key, val := next(100), next(1<<20)
				if next(10) < 7 {
					prev, ok := m.Insert(key, val)
					refPrev, refOk := ref[key]
					require.Equal(t, refOk, ok)
					require.Equal(t, refPrev, prev)
					ref[key] = val
				} else {
					prev, ok := m.Remove(key)
					refPrev, refOk := ref[key]
					require.Equal(t, refOk, ok)
					require.Equal(t, refPrev, prev)
					delete(ref, key)
				}
				require.Equal(t, len(ref), m.Len())
				for key := range 100 {
					v, ok := m.Get(key)
					refV, refOk := ref[key]
					require.Equal(t, refOk, ok, "strategy %s, key %d", k, key)
					require.Equal(t, refV, v)
					require.Equal(t, refOk, m.ContainsKey(key))
				}
			}
			require.NoError(t, m.Check())
			require.Equal(t, ref, maps.Collect(m.All()))
		}
	}
}

func TestMapRemoveTombstones(t *testing.T) {
	m := makeMap[string](t, dynamize.Binary)
	m.Insert(1, "one")
	m.Insert(2, "two")
	v, ok := m.Remove(1)
	require.True(t, ok)
	require.Equal(t, "one", v)
	require.Equal(t, 1, m.Tombstones())
	require.Equal(t, 1, m.Len())
	_, ok = m.Remove(1)
	require.False(t, ok, "removing a tombstone twice")
	_, ok = m.Remove(99)
	require.False(t, ok)
	require.Equal(t, 1, m.Tombstones())

	// re-inserting revives the tombstone in place
	_, ok = m.Insert(1, "uno")
	require.False(t, ok)
	require.Equal(t, 0, m.Tombstones())
	require.Equal(t, 2, m.Len())
	require.NoError(t, m.Check())
}

func TestMapRebuild(t *testing.T) {
	for _, k := range strategies {
		m := makeMap[int](t, k)
		for key := range 40 {
			m.Insert(key, key*10)
		}
		for key := range 20 {
			m.Remove(key)
		}
		require.Equal(t, 20, m.Tombstones())
		require.Equal(t, 20, m.Len())
		m.Remove(20) // 21 tombstones > 19 live > 16
		require.Equal(t, 0, m.Tombstones(), "strategy %s", k)
		require.Equal(t, 19, m.Len())
		require.Equal(t, 1, m.Stats().Units)
		require.NoError(t, m.Check())
		for key := range 40 {
			v, ok := m.Get(key)
			require.Equal(t, key > 20, ok)
			if ok {
				require.Equal(t, key*10, v)
			}
		}
		m.Insert(100, 1000)
		require.Equal(t, 20, m.Len())
		require.NoError(t, m.Check())
	}
}

func TestMapNoRebuildBelowThreshold(t *testing.T) {
	m := makeMap[int](t, dynamize.SimpleBinary)
	for key := range 30 {
		m.Insert(key, key)
	}
	for key := range 20 {
		m.Remove(key)
	}
	// 20 tombstones outnumber 10 live entries, but 10 does not exceed 16
	require.Equal(t, 20, m.Tombstones())
	require.Equal(t, 10, m.Len())

	m2, err := NewSVMap[int, int](OptRebuildThreshold(4), OptUnitCount(2))
	require.NoError(t, err)
	for key := range 30 {
		m2.Insert(key, key)
	}
	for key := range 20 {
		m2.Remove(key)
	}
	require.Less(t, m2.Tombstones(), 20)
	require.Equal(t, 10, m2.Len())
	require.NoError(t, m2.Check())
}

func TestMapKeepsStoredKey(t *testing.T) {
	m, err := NewSVMap[float64, string]()
	require.NoError(t, err)
	m.Insert(0.0, "plus")
	negZero := math.Copysign(0, -1)
	prev, ok := m.Insert(negZero, "minus")
	require.True(t, ok)
	require.Equal(t, "plus", prev)
	for key, v := range m.All() {
		require.False(t, math.Signbit(key), "stored key must not be replaced")
		require.Equal(t, "minus", v)
	}
}

func TestMapGetMut(t *testing.T) {
	m := makeMap[int](t, dynamize.SkewBinary)
	for key := range 10 {
		m.Insert(key, 0)
	}
	p, ok := m.GetMut(7)
	require.True(t, ok)
	*p = 77
	v, _ := m.Get(7)
	require.Equal(t, 77, v)
	m.Remove(7)
	_, ok = m.GetMut(7)
	require.False(t, ok)
}

func TestMapTryCollect(t *testing.T) {
	for _, k := range strategies {
		m := makeMap[int](t, k)
		_, ok := m.TryCollect()
		require.False(t, ok)
		for _, key := range []int{9, 2, 7, 4, 5} {
			m.Insert(key, -key)
		}
		m.Remove(7)
		v, ok := m.TryCollect()
		require.True(t, ok)
		var keys []int
		for _, p := range v.Items() {
			require.False(t, p.IsTombstone())
			require.Equal(t, -p.Key, p.Value.Value)
			keys = append(keys, p.Key)
		}
		require.Equal(t, []int{2, 4, 5, 9}, keys)
		require.True(t, m.IsEmpty())
		require.Equal(t, 0, m.Tombstones())
		require.NoError(t, m.Check())
	}
}

func TestMapClear(t *testing.T) {
	m := makeMap[int](t, dynamize.Binary)
	for key := range 50 {
		m.Insert(key, key)
	}
	m.Remove(3)
	m.Clear()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Tombstones())
	require.False(t, m.ContainsKey(5))
	require.Empty(t, maps.Collect(m.All()))
	require.NoError(t, m.Check())
}

func TestMapKeepsNaNKeyApart(t *testing.T) {
	for _, k := range strategies {
		m, err := NewSVMap[float64, string](OptStrategy(k))
		require.NoError(t, err)
		m.Insert(1.0, "one")
		_, ok := m.Insert(math.NaN(), "nan")
		require.False(t, ok, "NaN must not replace an unrelated key")
		m.Insert(-2.0, "minus two")
		require.Equal(t, 3, m.Len())
		v, ok := m.Get(1.0)
		require.True(t, ok)
		require.Equal(t, "one", v)
		v, ok = m.Get(math.NaN())
		require.True(t, ok)
		require.Equal(t, "nan", v)
		prev, ok := m.Insert(math.NaN(), "nan again")
		require.True(t, ok)
		require.Equal(t, "nan", prev)
		require.NoError(t, m.Check())
		_, ok = m.Remove(math.NaN())
		require.True(t, ok)
		require.False(t, m.ContainsKey(math.NaN()))
		require.True(t, m.ContainsKey(1.0))
		require.Equal(t, 2, m.Len())
		require.NoError(t, m.Check())
	}
}

func TestMapWithKeyComparator(t *testing.T) {
	foldCase := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	m, err := NewSVMapFunc[string, int](foldCase, OptStrategy(dynamize.SkewBinary))
	require.NoError(t, err)
	for i, key := range []string{"Go", "rust", "Zig", "c"} {
		m.Insert(key, i)
	}
	prev, ok := m.Insert("GO", 10)
	require.True(t, ok)
	require.Equal(t, 0, prev)
	v, ok := m.Get("go")
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Equal(t, 4, m.Len())
	require.NoError(t, m.Check())
	all, ok := m.TryCollect()
	require.True(t, ok)
	var keys []string
	for _, p := range all.Items() {
		keys = append(keys, p.Key)
	}
	require.Equal(t, []string{"c", "Go", "rust", "Zig"}, keys)
}
