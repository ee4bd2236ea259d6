// Package discrete implements dense tabular functions over subsets of
// registered discrete variables, and the domain iterators that
// enumerate their index tuples.
//
// 🚀 What is a discrete.Function?
//
//	A real-valued function of n discrete variables, stored as a flat
//	value array of length ∏ domain sizes. The variable list is kept
//	strictly ascending, and storage is column-major over that order
//	(the first variable varies fastest). The sorted-domain invariant is
//	what lets two functions be combined by a single merge walk over
//	their variable lists — the supervariable accessor IndexOf is the
//	hot path of all message math.
//
// ✨ Key features:
//   - scalar and function arithmetic with union-domain broadcast
//   - Expand — grow a domain, replicating values over new coordinates
//   - Condition — pin variables, projecting onto the free remainder
//   - Marginal / MaxMarginal / MinMarginal / MeanMarginal
//   - reductions (Min, Max, Argmax, Maxnorm, Mean) and tolerance
//     comparison over broadcast domains
//   - elementwise transforms (Log, Exp, ..., Pow) via one unary and one
//     binary higher-order kernel
//
// ⚙️ Usage:
//
//	_ = core.Register(1, 2) // variable 1, two values
//	_ = core.Register(2, 3) // variable 2, three values
//
//	f, _ := discrete.New([]core.VarID{1, 2}, 0)
//	f.SetAt(0, 10) // f(x1=0, x2=0)
//
//	it := discrete.NewDomainIterator(f)
//	for it.HasNext() {
//	  _ = f.At(it.Ind())
//	  it.Advance()
//	}
//
// Concurrency: a Function is not safe for concurrent mutation;
// concurrent reads of distinct functions are safe. The registry
// consulted at construction is goroutine-safe (see package core).
package discrete
