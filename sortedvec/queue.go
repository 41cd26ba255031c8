package sortedvec

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/dynamize"
	"golang.org/x/exp/constraints"
)

// SVQueue is a max-priority queue on top of dynamized sorted vectors.
//
// Push is amortized O(log N) merges, Peek and Pop scan the O(log N) units:
// every unit is ascending, so its maximum is its last item.
type SVQueue[T any] struct {
	dyn   *dynamize.Dynamic[SortedVec[T]]
	proto SortedVec[T]
	cmp   func(a, b T) int
	len   int // live items; the engine's Len is O(units)
}

// NewSVQueue creates an empty queue for an ordered item type.
func NewSVQueue[T constraints.Ordered](opts ...func(*config)) (*SVQueue[T], error) {
	return NewSVQueueFunc(cmp.Compare[T], opts...)
}

// NewSVQueueFunc creates an empty queue of items ordered by order.
func NewSVQueueFunc[T any](order func(a, b T) int, opts ...func(*config)) (*SVQueue[T], error) {
	cfg := resolveConfig(opts...)
	dyn, err := dynamize.New[SortedVec[T]](cfg.engineConfig())
	if err != nil {
		return nil, err
	}
	return &SVQueue[T]{
		dyn:   dyn,
		proto: NewFunc(order),
		cmp:   order,
	}, nil
}

// Len returns the number of items in the queue.
func (q *SVQueue[T]) Len() int {
	return q.len
}

// IsEmpty reports whether the queue holds no items.
func (q *SVQueue[T]) IsEmpty() bool {
	return q.len == 0
}

// Push adds an item.
func (q *SVQueue[T]) Push(item T) {
	dynamize.Insert(q.dyn, q.proto, item)
	q.len++
}

// max finds the unit holding the overall maximum.
func (q *SVQueue[T]) max() *SortedVec[T] {
	var best *SortedVec[T]
	var top T
	for u := range q.dyn.UnitsMut() {
		last, ok := u.Last()
		if !ok {
			continue
		}
		if best == nil || q.cmp(top, last) < 0 {
			best, top = u, last
		}
	}
	return best
}

// Peek returns the largest item without removing it.
func (q *SVQueue[T]) Peek() (T, bool) {
	var top T
	found := false
	for u := range q.dyn.Units() {
		if last, ok := u.Last(); ok && (!found || q.cmp(top, last) < 0) {
			top, found = last, true
		}
	}
	return top, found
}

// PeekMut calls fn with a pointer to the largest item, which fn may modify.
// Afterwards the item is moved to its proper place. PeekMut returns false
// without calling fn if the queue is empty.
func (q *SVQueue[T]) PeekMut(fn func(item *T)) bool {
	u := q.max()
	if u == nil {
		return false
	}
	fn(&u.items[len(u.items)-1])
	u.siftLast()
	return true
}

// Pop removes and returns the largest item. The unit it is taken from keeps
// its slot unless it becomes empty.
func (q *SVQueue[T]) Pop() (T, bool) {
	u := q.max()
	if u == nil {
		var zero T
		return zero, false
	}
	top, _ := u.popLast()
	q.len--
	if u.Len() == 0 {
		q.dyn.Prune()
	}
	return top, true
}

// All iterates over all items in unspecified order.
func (q *SVQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for u := range q.dyn.Units() {
			for _, item := range u.items {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// IntoSorted drains the queue into a single ascending vector. It returns
// false if the queue has no units.
func (q *SVQueue[T]) IntoSorted() (SortedVec[T], bool) {
	v, ok := q.dyn.TryCollect()
	q.len = 0
	return v, ok
}

// Clear removes all items.
func (q *SVQueue[T]) Clear() {
	q.dyn.Clear()
	q.len = 0
}

// Stats reports merge activity of the underlying engine.
func (q *SVQueue[T]) Stats() dynamize.Stats {
	return q.dyn.Stats()
}

// Check validates the queue's invariants.
func (q *SVQueue[T]) Check() error {
	if err := q.dyn.Check(); err != nil {
		return err
	}
	n := 0
	for u := range q.dyn.Units() {
		if err := u.Check(); err != nil {
			return err
		}
		n += u.Len()
	}
	if n != q.len {
		return fmt.Errorf("%w: queue counts %d items, units hold %d", ErrCount, q.len, n)
	}
	return nil
}
