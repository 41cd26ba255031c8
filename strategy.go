package dynamize

import (
	"fmt"
	"math/bits"
)

// DefaultUnitCount is the initial slot capacity suggested by all strategies.
const DefaultUnitCount = 8

// Strategy decides where a new unit is placed and which existing units it
// absorbs on the way.
//
// Add must leave the units in a state where the number of occupied slots is
// O(log N), N being the total item count. A strategy may carry bookkeeping
// state; Reset returns it to its initial state.
type Strategy[C Static[C]] interface {
	Add(units *Units[C], c C)
	Reset()
}

// Kind selects one of the built-in strategies.
type Kind uint8

const (
	// Binary places a unit at the slot matching its size: a unit in slot k>0
	// holds between 2^(k-1)+1 and 2^k items, slot 0 at most one.
	Binary Kind = iota
	// SimpleBinary ignores sizes and always starts merging at slot 0.
	SimpleBinary
	// SkewBinary performs at most two merges per insertion.
	SkewBinary
)

func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case SimpleBinary:
		return "simple-binary"
	case SkewBinary:
		return "skew-binary"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind for one of the names returned by Kind.String.
func ParseKind(name string) (Kind, error) {
	for _, k := range []Kind{Binary, SimpleBinary, SkewBinary} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NewStrategy creates a strategy of kind k in its initial state, together
// with the suggested initial slot capacity.
func NewStrategy[C Static[C]](k Kind) (Strategy[C], int, error) {
	s, err := StrategyWithUnitCount[C](k, DefaultUnitCount)
	return s, DefaultUnitCount, err
}

// StrategyWithUnitCount creates a strategy of kind k for an engine which
// starts out with unitCount slots of capacity.
func StrategyWithUnitCount[C Static[C]](k Kind, unitCount int) (Strategy[C], error) {
	switch k {
	case Binary:
		return &binary[C]{}, nil
	case SimpleBinary:
		return &simpleBinary[C]{}, nil
	case SkewBinary:
		if unitCount <= 0 {
			return nil, fmt.Errorf("%w: skew-binary needs a positive unit count, have %d",
				ErrInvalidConfig, unitCount)
		}
		return &skewBinary[C]{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, k)
}

// --- Binary ----------------------------------------------------------------

type binary[C Static[C]] struct{}

// slotFor returns the smallest k with 2^k >= size.
func slotFor(size int) int {
	if size <= 1 {
		return 0
	}
	return bits.Len(uint(size - 1))
}

func (b *binary[C]) Add(units *Units[C], c C) {
	k := slotFor(c.Len())
	units.Extend(k + 1)
	for i := k; i < units.Slots(); i++ {
		other, ok := units.Take(i)
		if !ok {
			units.Put(i, c)
			return
		}
		c = units.Merge(c, other)
		if c.Len() <= 1<<i {
			units.Put(i, c)
			return
		}
	}
	units.Push(c)
}

func (b *binary[C]) Reset() {}

// --- Simple binary ---------------------------------------------------------

type simpleBinary[C Static[C]] struct{}

func (s *simpleBinary[C]) Add(units *Units[C], c C) {
	for i := 0; i < units.Slots(); i++ {
		other, ok := units.Take(i)
		if !ok {
			units.Put(i, c)
			return
		}
		c = units.Merge(c, other)
	}
	units.Push(c)
}

func (s *simpleBinary[C]) Reset() {}
