// Package discrete: domain expansion and conditioning.
// Both rebuild the value array over a new domain and swap it into the
// receiver, so every other reference to the function observes the new
// domain atomically with respect to single-threaded use.
package discrete

import (
	"fmt"
	"slices"

	"github.com/optalgo/factorgraph/core"
)

// Expand grows the receiver's domain to at least the given variables.
// The new domain is sort(unique(dom(f) ∪ vars)); existing values are
// replicated across every coordinate of the added variables. A no-op
// when the domain already covers vars. Unregistered variables fail with
// core.ErrUnknownVariable and leave the receiver unchanged.
//
// Complexity: O(∏ new sizes · |new vars|).
func (f *Function) Expand(vars ...core.VarID) error {
	union := append(slices.Clone(f.vars), vars...)
	slices.Sort(union)
	union = slices.Compact(union)

	// Already a superset: the union added nothing.
	if len(union) == len(f.vars) {
		return nil
	}

	result, err := New(union, 0)
	if err != nil {
		return fmt.Errorf("discrete: Expand: %w", err)
	}

	// Copy old values across the expanded domain; the supervariable
	// accessor drops the coordinates of the added variables.
	for it := NewDomainIterator(result); it.HasNext(); it.Advance() {
		src, ierr := f.IndexOf(result.vars, it.SubInd())
		if ierr != nil {
			return fmt.Errorf("discrete: Expand: %w", ierr)
		}
		result.values[it.Ind()] = f.values[src]
	}

	f.Swap(result)

	return nil
}

// ExpandToFn grows the receiver's domain to include another function's
// domain.
func (f *Function) ExpandToFn(other *Function) error {
	if other == nil {
		return fmt.Errorf("discrete: ExpandToFn: %w", ErrNilFunction)
	}

	return f.Expand(other.vars...)
}

// Condition fixes a subset of variables to given values and projects
// the receiver onto the remaining free variables. Both lists must be
// parallel and sorted; fixed variables outside the domain are ignored,
// and if the intersection with the domain is empty the receiver is
// unchanged. A fixed value outside its variable's domain fails with
// core.ErrOutOfRange before any mutation.
//
// Complexity: O(∏ free sizes · |vars|).
func (f *Function) Condition(fixedVars []core.VarID, fixedVals []core.ValIndex) error {
	it := NewDomainIterator(f)
	if err := it.ConditionOn(fixedVars, fixedVals); err != nil {
		return fmt.Errorf("discrete: Condition: %w", err)
	}

	// Nothing pinned: the fixed set does not intersect the domain.
	if it.FixedCount() == 0 {
		return nil
	}

	// The reduced domain keeps only the free variables.
	freeVars := make([]core.VarID, 0, len(f.vars))
	freeSizes := make([]core.ValIndex, 0, len(f.vars))
	for k, v := range f.vars {
		if !it.IsFixed(v) {
			freeVars = append(freeVars, v)
			freeSizes = append(freeSizes, f.sizes[k])
		}
	}

	result := newRaw(freeVars, freeSizes)
	for ; it.HasNext(); it.Advance() {
		dst, err := result.IndexOf(it.Vars(), it.SubInd())
		if err != nil {
			return fmt.Errorf("discrete: Condition: %w", err)
		}
		result.values[dst] = f.values[it.Ind()]
	}

	f.Swap(result)

	return nil
}
