package sortedvec

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// SortedVec is an array kept in ascending order. It implements
// dynamize.Static and dynamize.Singleton.
//
// Ordering is defined by a comparator which travels with the vector; vectors
// used as prototypes (see dynamize.Insert) must therefore be created by New
// or NewFunc.
type SortedVec[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// New creates a sorted vector from items, which may be given in any order.
func New[T constraints.Ordered](items ...T) SortedVec[T] {
	return NewFunc(cmp.Compare[T], items...)
}

// NewFunc creates a sorted vector ordered by order, which has to be a
// consistent total order in the sense of cmp.Compare. items may be given in
// any order; the input slice is not modified.
func NewFunc[T any](order func(a, b T) int, items ...T) SortedVec[T] {
	assert(order != nil, "sortedvec: comparator must not be nil")
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, order)
	return SortedVec[T]{items: sorted, cmp: order}
}

// Len returns the number of items.
func (v SortedVec[T]) Len() int {
	return len(v.items)
}

// Items returns the items in ascending order. The slice is shared with the
// vector and must not be modified.
func (v SortedVec[T]) Items() []T {
	return v.items
}

// Last returns the largest item.
func (v SortedVec[T]) Last() (T, bool) {
	var zero T
	if len(v.items) == 0 {
		return zero, false
	}
	return v.items[len(v.items)-1], true
}

// Search finds target by binary search. It returns the position where target
// is or would be inserted, and whether it has been found.
func (v SortedVec[T]) Search(target T) (int, bool) {
	return slices.BinarySearchFunc(v.items, target, v.cmp)
}

// Singleton creates a one-item vector with the receiver's ordering.
func (v SortedVec[T]) Singleton(item T) SortedVec[T] {
	return SortedVec[T]{items: []T{item}, cmp: v.cmp}
}

// MergeWith merges two sorted vectors in linear time. Both operands are
// consumed. Of two equal items, the one from the receiver comes first.
func (v SortedVec[T]) MergeWith(other SortedVec[T]) SortedVec[T] {
	order := v.cmp
	if order == nil {
		order = other.cmp
	}
	assert(order != nil, "sortedvec: merge of vectors without comparator")
	a, b := v.items, other.items
	out := make([]T, len(a)+len(b))
	var i, j, k int
	for i < len(a) && j < len(b) {
		if order(b[j], a[i]) < 0 {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	k += copy(out[k:], b[j:])
	assert(k == cap(out), "sortedvec: merge did not fill its buffer")
	return SortedVec[T]{items: out, cmp: order}
}

// Check validates the ordering invariant.
func (v SortedVec[T]) Check() error {
	if v.cmp == nil {
		if len(v.items) > 0 {
			return fmt.Errorf("%w: %d items without comparator", ErrUnsorted, len(v.items))
		}
		return nil
	}
	for i := 1; i < len(v.items); i++ {
		if v.cmp(v.items[i-1], v.items[i]) > 0 {
			return fmt.Errorf("%w: at position %d", ErrUnsorted, i)
		}
	}
	return nil
}

func (v *SortedVec[T]) popLast() (T, bool) {
	last, ok := v.Last()
	if ok {
		var zero T
		v.items[len(v.items)-1] = zero
		v.items = v.items[:len(v.items)-1]
	}
	return last, ok
}

// siftLast moves the last item to the left until order is restored.
func (v *SortedVec[T]) siftLast() {
	for j := len(v.items) - 1; j > 0 && v.cmp(v.items[j], v.items[j-1]) < 0; j-- {
		v.items[j], v.items[j-1] = v.items[j-1], v.items[j]
	}
}
