// Package discrete: domain and value comparisons.
package discrete

import (
	"math"
	"slices"

	"github.com/optalgo/factorgraph/core"
	"github.com/optalgo/factorgraph/indexing"
)

// SameDomain reports whether two functions depend on exactly the same
// variable set.
//
// Complexity: O(n).
func SameDomain(f, g *Function) bool {
	return slices.Equal(f.vars, g.vars)
}

// EqualWithinTolerance reports whether f and g agree within tol at
// every tuple of the union of their domains, with each function read
// through broadcast. The test is relative, |1 - f/g| < tol, falling
// back to the absolute test |f-g| <= tol wherever g's cell is zero.
// tol == 0 degenerates to exact equality in both branches.
//
// Complexity: O(∏ union sizes · |union vars|).
func EqualWithinTolerance(f, g *Function, tol core.ValType) bool {
	vars, sizes := unionDomain(f, g)

	for it := newDomainIteratorOver(vars, sizes); it.HasNext(); it.Advance() {
		fi, err := f.IndexOf(vars, it.SubInd())
		if err != nil {
			return false
		}
		gi, err := g.IndexOf(vars, it.SubInd())
		if err != nil {
			return false
		}

		fv, gv := f.values[fi], g.values[gi]
		if gv == 0 {
			// Relative test is undefined here: absolute fallback.
			if math.Abs(fv-gv) > tol {
				return false
			}
			continue
		}
		if tol == 0 {
			if fv != gv {
				return false
			}
			continue
		}
		if math.Abs(1-fv/gv) >= tol {
			return false
		}
	}

	return true
}

// StrictlyEqualWithinTolerance reports SameDomain and
// EqualWithinTolerance together.
func StrictlyEqualWithinTolerance(f, g *Function, tol core.ValType) bool {
	return SameDomain(f, g) && EqualWithinTolerance(f, g, tol)
}

// Equal reports exact equality over the union of domains.
func Equal(f, g *Function) bool {
	return EqualWithinTolerance(f, g, 0)
}

// unionDomain merges two sorted domains into union vars and sizes.
//
// Complexity: O(n + m).
func unionDomain(f, g *Function) ([]core.VarID, []core.ValIndex) {
	vars := make([]core.VarID, 0, len(f.vars)+len(g.vars))
	sizes := make([]core.ValIndex, 0, len(f.sizes)+len(g.sizes))

	i, j := 0, 0
	for i < len(f.vars) || j < len(g.vars) {
		switch {
		case j == len(g.vars) || (i < len(f.vars) && f.vars[i] < g.vars[j]):
			vars = append(vars, f.vars[i])
			sizes = append(sizes, f.sizes[i])
			i++
		case i == len(f.vars) || g.vars[j] < f.vars[i]:
			vars = append(vars, g.vars[j])
			sizes = append(sizes, g.sizes[j])
			j++
		default: // shared variable
			vars = append(vars, f.vars[i])
			sizes = append(sizes, f.sizes[i])
			i++
			j++
		}
	}

	return vars, sizes
}

// newDomainIteratorOver builds an iterator over an explicit domain
// without materializing a backing Function.
func newDomainIteratorOver(vars []core.VarID, sizes []core.ValIndex) *DomainIterator {
	return &DomainIterator{
		vars:    vars,
		sizes:   sizes,
		strides: indexing.Strides(sizes),
		sub:     make([]core.ValIndex, len(vars)),
		fixed:   make([]bool, len(vars)),
	}
}
