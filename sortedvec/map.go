package sortedvec

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	g "github.com/anacrolix/generics"
	"github.com/npillmayer/dynamize"
	"golang.org/x/exp/constraints"
)

// SVMap is an associative array on top of dynamized sorted vectors.
//
// Lookups binary-search every unit. Removal writes a tombstone; once
// tombstones outnumber live entries (and there are more live entries than the
// rebuild threshold), the map is rebuilt from its live entries.
type SVMap[K, V any] struct {
	dyn        *dynamize.Dynamic[SortedVec[Pair[K, V]]]
	proto      SortedVec[Pair[K, V]]
	keyCmp     func(a, b K) int
	len        int
	tombstones int
	threshold  int
}

// NewSVMap creates an empty map for an ordered key type.
func NewSVMap[K constraints.Ordered, V any](opts ...func(*config)) (*SVMap[K, V], error) {
	return NewSVMapFunc[K, V](cmp.Compare[K], opts...)
}

// NewSVMapFunc creates an empty map with keys ordered by keyCmp. Keys
// comparing equal are the same key.
func NewSVMapFunc[K, V any](keyCmp func(a, b K) int, opts ...func(*config)) (*SVMap[K, V], error) {
	assert(keyCmp != nil, "sortedvec: key comparator must not be nil")
	cfg := resolveConfig(opts...)
	dyn, err := dynamize.New[SortedVec[Pair[K, V]]](cfg.engineConfig())
	if err != nil {
		return nil, err
	}
	return &SVMap[K, V]{
		dyn:       dyn,
		proto:     NewFunc(pairOrder[K, V](keyCmp)),
		keyCmp:    keyCmp,
		threshold: cfg.rebuildThreshold,
	}, nil
}

// Len returns the number of live entries.
func (m *SVMap[K, V]) Len() int {
	return m.len
}

// IsEmpty reports whether the map has no live entries.
func (m *SVMap[K, V]) IsEmpty() bool {
	return m.len == 0
}

// Tombstones returns the number of deleted entries awaiting a rebuild.
func (m *SVMap[K, V]) Tombstones() int {
	return m.tombstones
}

// find returns the pair for key, which may be a tombstone. Keys are unique
// across units, so the first hit is the only one.
func (m *SVMap[K, V]) find(key K) *Pair[K, V] {
	byKey := func(p Pair[K, V], k K) int {
		return m.keyCmp(p.Key, k)
	}
	for u := range m.dyn.UnitsMut() {
		if i, ok := slices.BinarySearchFunc(u.items, key, byKey); ok {
			return &u.items[i]
		}
	}
	return nil
}

// Get returns the value for key.
func (m *SVMap[K, V]) Get(key K) (V, bool) {
	if p := m.find(key); p != nil && p.Value.Ok {
		return p.Value.Value, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value for key. The pointer is valid until
// the next mutating operation on the map.
func (m *SVMap[K, V]) GetMut(key K) (*V, bool) {
	if p := m.find(key); p != nil && p.Value.Ok {
		return &p.Value.Value, true
	}
	return nil, false
}

// ContainsKey reports whether key has a live entry.
func (m *SVMap[K, V]) ContainsKey(key K) bool {
	p := m.find(key)
	return p != nil && p.Value.Ok
}

// Insert sets the value for key and returns the previous value, if any.
// The stored key is never replaced, even if key compares equal to it
// without being identical.
func (m *SVMap[K, V]) Insert(key K, value V) (V, bool) {
	if p := m.find(key); p != nil {
		prev := p.Value
		p.Value = g.Some(value)
		if !prev.Ok {
			m.tombstones--
			m.len++
		}
		return prev.Value, prev.Ok
	}
	dynamize.Insert(m.dyn, m.proto, Pair[K, V]{Key: key, Value: g.Some(value)})
	m.len++
	var zero V
	return zero, false
}

// Remove deletes the entry for key and returns its value, if any.
func (m *SVMap[K, V]) Remove(key K) (V, bool) {
	var zero V
	p := m.find(key)
	if p == nil || !p.Value.Ok {
		return zero, false
	}
	prev := p.Value.Value
	p.Value = g.None[V]()
	m.len--
	m.tombstones++
	if m.tombstones > m.len && m.len > m.threshold {
		m.rebuild()
	}
	return prev, true
}

// rebuild purges tombstones by collecting all live pairs into a single unit.
// The strategy starts over from its initial state.
func (m *SVMap[K, V]) rebuild() {
	tracer().Debugf("sortedvec: rebuilding map, %d live, %d tombstones", m.len, m.tombstones)
	all, ok := m.dyn.TryCollect()
	m.tombstones = 0
	if !ok {
		return
	}
	live := slices.DeleteFunc(all.items, Pair[K, V].IsTombstone)
	assert(len(live) == m.len, "sortedvec: live count drifted from map content")
	if len(live) > 0 {
		m.dyn.AddUnit(SortedVec[Pair[K, V]]{items: slices.Clip(live), cmp: all.cmp})
	}
}

// All iterates over live entries in unspecified order.
func (m *SVMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for u := range m.dyn.Units() {
			for _, p := range u.items {
				if p.Value.Ok && !yield(p.Key, p.Value.Value) {
					return
				}
			}
		}
	}
}

// TryCollect drains the map into a single vector of live pairs in ascending
// key order. It returns false if the map has no live entries.
func (m *SVMap[K, V]) TryCollect() (SortedVec[Pair[K, V]], bool) {
	all, ok := m.dyn.TryCollect()
	m.len, m.tombstones = 0, 0
	if !ok {
		return all, false
	}
	all.items = slices.DeleteFunc(all.items, Pair[K, V].IsTombstone)
	return all, len(all.items) > 0
}

// Clear removes all entries.
func (m *SVMap[K, V]) Clear() {
	m.dyn.Clear()
	m.len, m.tombstones = 0, 0
}

// Stats reports merge activity of the underlying engine.
func (m *SVMap[K, V]) Stats() dynamize.Stats {
	return m.dyn.Stats()
}

// Check validates the map's invariants: ordered units, unique keys and
// counters matching the content.
func (m *SVMap[K, V]) Check() error {
	if err := m.dyn.Check(); err != nil {
		return err
	}
	live, dead := 0, 0
	var keys []K
	for u := range m.dyn.Units() {
		if err := u.Check(); err != nil {
			return err
		}
		for _, p := range u.items {
			keys = append(keys, p.Key)
			if p.IsTombstone() {
				dead++
			} else {
				live++
			}
		}
	}
	slices.SortFunc(keys, m.keyCmp)
	for i := 1; i < len(keys); i++ {
		if m.keyCmp(keys[i-1], keys[i]) == 0 {
			return fmt.Errorf("%w: key %v present twice", ErrDuplicateKey, keys[i])
		}
	}
	if live != m.len || dead != m.tombstones {
		return fmt.Errorf("%w: map counts %d/%d live/dead, units hold %d/%d",
			ErrCount, m.len, m.tombstones, live, dead)
	}
	return nil
}
