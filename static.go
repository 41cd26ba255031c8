package dynamize

// Static is the contract a container has to fulfil to become dynamizable.
//
// C is the container type itself, i.e. a container type X is used as
// Static[X].
//
// Len reports the logical item count. A container which cannot report its
// size precisely should return 1 and be used with a strategy which does not
// depend on sizes (SimpleBinary or SkewBinary).
//
// MergeWith merges two containers into one. Both the receiver and other are
// consumed and must not be used afterwards. The result's Len must equal the
// sum of the operands' lengths, and its items must be the union of the
// operands' items.
type Static[C any] interface {
	Len() int
	MergeWith(other C) C
}

// Singleton is implemented by containers which have a natural one-item form.
// The receiver serves as a prototype and may carry configuration (e.g., a
// comparator), but its items are not part of the result.
type Singleton[T, C any] interface {
	Singleton(item T) C
}
