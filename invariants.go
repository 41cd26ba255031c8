package dynamize

import "fmt"

// Check validates structural engine invariants.
//
// Units removing items on their own (e.g., popping from a queue) may leave
// units smaller than their slot suggests, therefore only the upper size
// bound of Binary slots is checked.
func (d *Dynamic[C]) Check() error {
	if d == nil {
		return fmt.Errorf("%w: nil engine", ErrInvalidConfig)
	}
	if d.strategy == nil {
		return fmt.Errorf("%w: engine without strategy", ErrInvalidConfig)
	}
	for i, slot := range d.units.slots {
		if !slot.Ok {
			continue
		}
		size := slot.Value.Len()
		if size < 0 {
			return fmt.Errorf("%w: unit %d reports negative size %d", ErrInvariant, i, size)
		}
		if d.cfg.Strategy == Binary && i < 62 && size > 1<<i {
			return fmt.Errorf("%w: binary unit %d holds %d items, bound is %d",
				ErrInvariant, i, size, 1<<i)
		}
	}
	if skew, ok := d.strategy.(*skewBinary[C]); ok {
		if skew.lastMerge < 0 || (skew.lastMerge > 0 && skew.lastMerge >= d.units.Slots()) {
			return fmt.Errorf("%w: skew-binary merge slot %d out of range (%d slots)",
				ErrInvariant, skew.lastMerge, d.units.Slots())
		}
	}
	return nil
}
