// Package core defines the scalar types shared by every factorgraph
// subpackage, and the process-wide variable registry that maps each
// discrete variable to its fixed domain size.
//
// 🚀 What lives here?
//
//	• VarID / ValIndex / ValType / FactorID — the identifier and value
//	  types of the whole library
//	• the variable registry — Register, DomainSize, IsRegistered,
//	  NumRegistered
//	• the sentinel errors every subpackage reports through
//
// The registry is read-mostly global state guarded by a sync.RWMutex,
// so registration and lookups are safe across goroutines. A variable's
// domain size is immutable once registered: re-registering with the
// same size succeeds, re-registering with a different size fails and
// leaves the registry untouched.
//
// There is no teardown: the registry lives for the process, and every
// discrete.Function caches its sizes from it at construction.
package core
