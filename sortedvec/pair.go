package sortedvec

import (
	g "github.com/anacrolix/generics"
)

// Pair is the payload of an SVMap. Pairs are ordered by key only.
//
// A pair without a value is a tombstone: logically deleted, but still
// occupying its place in a unit until the map is rebuilt.
type Pair[K, V any] struct {
	Key   K
	Value g.Option[V]
}

// IsTombstone reports whether p has been deleted.
func (p Pair[K, V]) IsTombstone() bool {
	return !p.Value.Ok
}

// pairOrder lifts a key order to pairs.
func pairOrder[K, V any](keyCmp func(a, b K) int) func(a, b Pair[K, V]) int {
	return func(a, b Pair[K, V]) int {
		return keyCmp(a.Key, b.Key)
	}
}
