// Package discrete: function-with-function arithmetic.
// Semantics: treat both operands as functions over the UNION of their
// domains and apply the operation pointwise over that union. When the
// argument's domain is already a subset of the receiver's, the receiver
// is traversed once and the argument is read through the supervariable
// accessor; otherwise the receiver is expanded first and the subset
// path applies.
package discrete

import (
	"fmt"

	"github.com/optalgo/factorgraph/core"
	"gonum.org/v1/gonum/floats"
)

// AddFn adds g pointwise over the union domain, expanding the receiver
// if needed.
//
// Complexity: O(∏ union sizes · |union vars|).
func (f *Function) AddFn(g *Function) error {
	// Same-domain fast path: one fused vector addition.
	if g != nil && SameDomain(f, g) {
		floats.Add(f.values, g.values)
		return nil
	}

	return f.combine(g, "AddFn", func(a, b core.ValType) core.ValType { return a + b })
}

// SubFn subtracts g pointwise over the union domain.
//
// Complexity: O(∏ union sizes · |union vars|).
func (f *Function) SubFn(g *Function) error {
	if g != nil && SameDomain(f, g) {
		floats.Sub(f.values, g.values)
		return nil
	}

	return f.combine(g, "SubFn", func(a, b core.ValType) core.ValType { return a - b })
}

// MulFn multiplies by g pointwise over the union domain.
//
// Complexity: O(∏ union sizes · |union vars|).
func (f *Function) MulFn(g *Function) error {
	return f.combine(g, "MulFn", func(a, b core.ValType) core.ValType { return a * b })
}

// DivFn divides by g pointwise over the union domain. Zero cells in g
// yield IEEE ±Inf/NaN.
//
// Complexity: O(∏ union sizes · |union vars|).
func (f *Function) DivFn(g *Function) error {
	return f.combine(g, "DivFn", func(a, b core.ValType) core.ValType { return a / b })
}

// AddAll folds a list of functions into the receiver by repeated AddFn,
// expanding the domain as the union grows.
func (f *Function) AddAll(fns ...*Function) error {
	for _, g := range fns {
		if err := f.AddFn(g); err != nil {
			return err
		}
	}

	return nil
}

// combine applies op cell-by-cell with g broadcast onto the receiver's
// (possibly expanded) domain.
func (f *Function) combine(g *Function, method string, op func(a, b core.ValType) core.ValType) error {
	if g == nil {
		return fmt.Errorf("discrete: %s: %w", method, ErrNilFunction)
	}

	// Case 2 of the design: grow the receiver to the union first, then
	// the subset traversal below covers everything.
	if !isSubsetOf(g.vars, f.vars) {
		if err := f.Expand(g.vars...); err != nil {
			return fmt.Errorf("discrete: %s: %w", method, err)
		}
	}

	for it := NewDomainIterator(f); it.HasNext(); it.Advance() {
		gi, err := g.IndexOf(f.vars, it.SubInd())
		if err != nil {
			return fmt.Errorf("discrete: %s: %w", method, err)
		}
		f.values[it.Ind()] = op(f.values[it.Ind()], g.values[gi])
	}

	return nil
}

// isSubsetOf reports whether sub ⊆ super; both sorted ascending.
func isSubsetOf(sub, super []core.VarID) bool {
	j := 0
	for _, v := range sub {
		for j < len(super) && super[j] < v {
			j++
		}
		if j == len(super) || super[j] != v {
			return false
		}
		j++
	}

	return true
}
