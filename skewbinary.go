package dynamize

// skewBinary remembers the slot of the most recent merge and continues
// from there, which bounds the work of any single insertion to two merges.
// The price is a looser relation between slot index and unit size.
type skewBinary[C Static[C]] struct {
	lastMerge int
}

func (s *skewBinary[C]) Add(units *Units[C], c C) {
	if units.Slots() == 0 {
		units.Push(c)
		return
	}
	other, ok := units.Take(s.lastMerge)
	if !ok {
		units.Put(s.lastMerge, c)
		s.lastMerge = 0
		return
	}
	c = units.Merge(c, other)
	next := s.lastMerge + 1
	if next == units.Slots() {
		units.Push(c)
		s.lastMerge = 0
		return
	}
	other, ok = units.Take(next)
	if !ok {
		units.Put(next, c)
		s.lastMerge = 0
		return
	}
	units.Put(next, units.Merge(c, other))
	s.lastMerge = next
}

func (s *skewBinary[C]) Reset() {
	s.lastMerge = 0
}
