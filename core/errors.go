// Package core: sentinel error set shared across the module.
// All subpackages report precondition violations through these
// sentinels and callers match them via errors.Is. Context is added with
// fmt.Errorf("...: %w", Err...) at the outer boundary only.
package core

import "errors"

var (
	// ErrUnknownVariable indicates access to a VarID that is not in the
	// registry, or an attempt to re-register a variable with a different
	// domain size.
	ErrUnknownVariable = errors.New("core: unknown or conflicting variable")

	// ErrBadDomain indicates a domain-relationship violation, e.g.
	// marginalizing onto a non-subset domain.
	ErrBadDomain = errors.New("core: bad domain relationship")

	// ErrOutOfRange indicates an index or size outside its valid range.
	ErrOutOfRange = errors.New("core: index out of range")
)
