// Package core: shared scalar types and tolerances.
package core

// VarID uniquely identifies a discrete variable across the process.
// Ids are opaque: the library never interprets them beyond ordering.
type VarID int32

// ValIndex indexes a position within a variable's domain, and doubles
// as the linear-index and domain-size type for tabular functions.
type ValIndex int64

// ValType is the scalar value type of functions and messages.
type ValType = float64

// FactorID uniquely identifies a factor node inside a Controller.
type FactorID uint32

// DefaultValueTolerance is the tolerance used by value comparisons when
// the caller does not supply one.
const DefaultValueTolerance ValType = 1e-6
