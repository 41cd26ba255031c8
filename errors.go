package dynamize

import "errors"

var (
	// ErrInvalidConfig signals an invalid engine configuration.
	ErrInvalidConfig = errors.New("dynamize: invalid configuration")
	// ErrUnknownStrategy signals a strategy kind outside of the supported set.
	ErrUnknownStrategy = errors.New("dynamize: unknown strategy")
	// ErrInvariant signals a violated structural invariant, as reported by Check.
	ErrInvariant = errors.New("dynamize: invariant violated")
)
