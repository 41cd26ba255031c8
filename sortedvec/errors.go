package sortedvec

import "errors"

var (
	// ErrUnsorted signals a container whose items are out of order.
	ErrUnsorted = errors.New("sortedvec: items out of order")
	// ErrDuplicateKey signals a map key present in more than one place.
	ErrDuplicateKey = errors.New("sortedvec: duplicate key")
	// ErrCount signals a live or tombstone counter which does not match the
	// container's content.
	ErrCount = errors.New("sortedvec: counter mismatch")
)
