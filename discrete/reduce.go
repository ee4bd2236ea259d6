// Package discrete: whole-domain reductions.
package discrete

import (
	"math"

	"github.com/optalgo/factorgraph/core"
	"gonum.org/v1/gonum/floats"
)

// Min returns the smallest value across the domain.
//
// Complexity: O(∏ sizes).
func (f *Function) Min() core.ValType {
	return floats.Min(f.values)
}

// Max returns the largest value across the domain.
//
// Complexity: O(∏ sizes).
func (f *Function) Max() core.ValType {
	return floats.Max(f.values)
}

// Argmax returns the linear index of the largest value; ties break to
// the smallest index.
//
// Complexity: O(∏ sizes).
func (f *Function) Argmax() core.ValIndex {
	return core.ValIndex(floats.MaxIdx(f.values))
}

// Argmax2 returns the linear index of the largest value excluding the
// given index, i.e. the runner-up when exclude is Argmax(). On a
// one-cell function there is nothing to exclude and 0 is returned.
//
// Complexity: O(∏ sizes).
func (f *Function) Argmax2(exclude core.ValIndex) core.ValIndex {
	if len(f.values) == 1 {
		return 0
	}

	best := core.ValIndex(-1)
	for i, x := range f.values {
		if core.ValIndex(i) == exclude {
			continue
		}
		if best < 0 || x > f.values[best] {
			best = core.ValIndex(i)
		}
	}

	return best
}

// Maxnorm returns max |f(k)| — the convergence metric of the message
// loop.
//
// Complexity: O(∏ sizes).
func (f *Function) Maxnorm() core.ValType {
	return floats.Norm(f.values, math.Inf(1))
}

// Mean returns the arithmetic mean across the domain.
//
// Complexity: O(∏ sizes).
func (f *Function) Mean() core.ValType {
	return floats.Sum(f.values) / core.ValType(len(f.values))
}
