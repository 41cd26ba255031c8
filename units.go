package dynamize

import (
	g "github.com/anacrolix/generics"
)

// Units is the ordered sequence of slots a Dynamic manages. Each slot holds
// either nothing or one partial container. Strategies manipulate units only
// through the methods of Units, which keeps track of the merges performed.
type Units[C Static[C]] struct {
	slots  []g.Option[C]
	merges int // merges since the last call to resetMerges
}

func makeUnits[C Static[C]](capacity int) Units[C] {
	if capacity < 0 {
		capacity = 0
	}
	return Units[C]{slots: make([]g.Option[C], 0, capacity)}
}

// Slots returns the number of slots, occupied or not.
func (u *Units[C]) Slots() int {
	return len(u.slots)
}

// Occupied reports whether slot i holds a container.
func (u *Units[C]) Occupied(i int) bool {
	return i >= 0 && i < len(u.slots) && u.slots[i].Ok
}

// Take moves the container out of slot i, leaving the slot empty.
func (u *Units[C]) Take(i int) (C, bool) {
	assert(i >= 0 && i < len(u.slots), "units: slot index out of range")
	c := u.slots[i]
	u.slots[i] = g.None[C]()
	return c.Value, c.Ok
}

// Put places a container into slot i, which has to be empty.
func (u *Units[C]) Put(i int, c C) {
	assert(i >= 0 && i < len(u.slots), "units: slot index out of range")
	assert(!u.slots[i].Ok, "units: slot already occupied")
	u.slots[i] = g.Some(c)
}

// Push appends a new slot holding c.
func (u *Units[C]) Push(c C) {
	u.slots = append(u.slots, g.Some(c))
}

// Extend appends empty slots until there are at least n slots.
func (u *Units[C]) Extend(n int) {
	for len(u.slots) < n {
		u.slots = append(u.slots, g.None[C]())
	}
}

// Merge merges carry with other and counts the merge. All strategies merge
// through this method.
func (u *Units[C]) Merge(carry, other C) C {
	want := carry.Len() + other.Len()
	merged := carry.MergeWith(other)
	assert(merged.Len() == want, "units: merge result does not account for all items")
	u.merges++
	return merged
}

func (u *Units[C]) resetMerges() {
	u.merges = 0
}

func (u *Units[C]) clear() {
	clear(u.slots) // release containers to the GC
	u.slots = u.slots[:0]
	u.merges = 0
}
