package dynamize

import (
	"iter"
)

// Dynamic is a dynamized version of a static container type C.
//
// Items are held in a sequence of partial containers (units). New units are
// added with AddUnit (or Insert for single items); the strategy selected at
// construction time decides which units are merged on the way.
//
// The zero value is not usable; create engines with New.
type Dynamic[C Static[C]] struct {
	cfg      Config
	units    Units[C]
	strategy Strategy[C]
	stats    Stats
}

// New creates an empty engine with validated configuration.
func New[C Static[C]](cfg Config) (*Dynamic[C], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	strategy, err := StrategyWithUnitCount[C](cfg.Strategy, cfg.UnitCount)
	if err != nil {
		return nil, err
	}
	return &Dynamic[C]{
		cfg:      cfg,
		units:    makeUnits[C](cfg.UnitCount),
		strategy: strategy,
	}, nil
}

// Config returns a copy of the effective engine configuration.
func (d *Dynamic[C]) Config() Config {
	return d.cfg
}

// AddUnit adds a pre-built container as a new unit. The strategy may merge
// it with existing units; c must not be used by the caller afterwards.
func (d *Dynamic[C]) AddUnit(c C) {
	d.units.resetMerges()
	d.strategy.Add(&d.units, c)
	d.stats.record(d.units.merges)
	if d.units.merges > 0 {
		tracer().Debugf("dynamize: %s add did %d merge(s), %d slots",
			d.cfg.Strategy, d.units.merges, d.units.Slots())
	}
}

// Insert adds a single item to d by building a one-item unit from prototype
// proto.
func Insert[T any, C interface {
	Static[C]
	Singleton[T, C]
}](d *Dynamic[C], proto C, item T) {
	d.AddUnit(proto.Singleton(item))
}

// Len returns the total item count, summed over all units. This is
// O(number of units), not O(1).
func (d *Dynamic[C]) Len() int {
	if d == nil {
		return 0
	}
	n := 0
	for c := range d.Units() {
		n += c.Len()
	}
	return n
}

// IsEmpty reports whether the engine holds no items.
func (d *Dynamic[C]) IsEmpty() bool {
	return d.Len() == 0
}

// UnitCount returns the number of occupied slots.
func (d *Dynamic[C]) UnitCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, slot := range d.units.slots {
		if slot.Ok {
			n++
		}
	}
	return n
}

// Layout returns the size of the unit in every slot, -1 for empty slots.
func (d *Dynamic[C]) Layout() []int {
	if d == nil {
		return nil
	}
	sizes := make([]int, len(d.units.slots))
	for i, slot := range d.units.slots {
		sizes[i] = -1
		if slot.Ok {
			sizes[i] = slot.Value.Len()
		}
	}
	return sizes
}

// Units iterates over all present units in slot order, skipping empty slots.
func (d *Dynamic[C]) Units() iter.Seq[C] {
	return func(yield func(C) bool) {
		if d == nil {
			return
		}
		for _, slot := range d.units.slots {
			if slot.Ok && !yield(slot.Value) {
				return
			}
		}
	}
}

// UnitsMut iterates over pointers to all present units in slot order.
// Pointers are valid until the next mutating engine operation. Callers may
// change a unit's content but must keep it a valid container.
func (d *Dynamic[C]) UnitsMut() iter.Seq[*C] {
	return func(yield func(*C) bool) {
		if d == nil {
			return
		}
		for i := range d.units.slots {
			if d.units.slots[i].Ok && !yield(&d.units.slots[i].Value) {
				return
			}
		}
	}
}

// TryCollect merges all units, in slot order, into a single container and
// leaves the engine empty. If there are no units, TryCollect returns false.
func (d *Dynamic[C]) TryCollect() (C, bool) {
	var acc C
	if d == nil {
		return acc, false
	}
	found := false
	for i := range d.units.slots {
		c, ok := d.units.Take(i)
		if !ok {
			continue
		}
		if !found {
			acc, found = c, true
			continue
		}
		acc = d.units.Merge(acc, c)
	}
	d.Clear()
	return acc, found
}

// Clear drops all units and resets the strategy's bookkeeping. Statistics
// accumulate over the lifetime of the engine and are not reset.
func (d *Dynamic[C]) Clear() {
	d.units.clear()
	d.strategy.Reset()
	tracer().Debugf("dynamize: cleared %s engine", d.cfg.Strategy)
}

// Prune empties slots whose unit holds no items. Other units keep their slots.
func (d *Dynamic[C]) Prune() {
	for i, slot := range d.units.slots {
		if slot.Ok && slot.Value.Len() == 0 {
			d.units.Take(i)
		}
	}
}
