package discrete

import (
	"fmt"
	"slices"

	"github.com/optalgo/factorgraph/core"
	"github.com/optalgo/factorgraph/indexing"
)

// DomainIterator enumerates the index tuples of a Function's domain,
// treating the subindex tuple as a mixed-radix counter in which the
// first (lowest-id) free variable varies fastest. That order matches
// the storage layout, so Ind() is always a valid linear slot in the
// target's value array.
//
// A subset of coordinates may be pinned with ConditionOn; pinned
// coordinates never change during iteration, which makes the iterator
// the inner loop of both conditioning and marginalization.
type DomainIterator struct {
	vars    []core.VarID
	sizes   []core.ValIndex
	strides []core.ValIndex
	sub     []core.ValIndex
	fixed   []bool
	ind     core.ValIndex
	done    bool
}

// NewDomainIterator returns an iterator positioned at the zero tuple of
// f's domain. A constant function yields exactly one (empty) tuple.
//
// Complexity: O(n).
func NewDomainIterator(f *Function) *DomainIterator {
	return &DomainIterator{
		vars:    f.vars,
		sizes:   f.sizes,
		strides: indexing.Strides(f.sizes),
		sub:     make([]core.ValIndex, len(f.vars)),
		fixed:   make([]bool, len(f.vars)),
	}
}

// HasNext reports whether the current tuple is valid; it turns false
// once the free coordinates are exhausted.
func (it *DomainIterator) HasNext() bool {
	return !it.done
}

// Advance steps to the next tuple: the free coordinates are incremented
// as a mixed-radix counter with radices sizes, fixed coordinates never
// move, and the linear index is updated by stride deltas rather than
// recomputed.
//
// Complexity: O(1) amortized, O(n) worst case.
func (it *DomainIterator) Advance() {
	for k := range it.sub {
		if it.fixed[k] {
			continue
		}
		if it.sub[k]+1 < it.sizes[k] {
			it.sub[k]++
			it.ind += it.strides[k]
			return
		}
		// Wrap this coordinate and carry into the next free one.
		it.ind -= it.sub[k] * it.strides[k]
		it.sub[k] = 0
	}
	it.done = true
}

// Ind returns the current linear index into the target's value array.
func (it *DomainIterator) Ind() core.ValIndex {
	return it.ind
}

// SubInd returns the current coordinate tuple. The returned slice is a
// view: it changes on Advance and must not be mutated.
func (it *DomainIterator) SubInd() []core.ValIndex {
	return it.sub
}

// Vars returns the target's variable list. The returned slice is a
// view and must not be mutated.
func (it *DomainIterator) Vars() []core.VarID {
	return it.vars
}

// ConditionOn pins variables to values: each pinned coordinate is set
// to its value and marked fixed, the free coordinates reset to zero,
// and iteration restarts. Both lists must be parallel and sorted by
// VarID. Pinned variables absent from the target's domain are silently
// ignored; a value outside its variable's domain fails with
// core.ErrOutOfRange, leaving the iterator unchanged.
//
// Complexity: O(n + len(vars)).
func (it *DomainIterator) ConditionOn(vars []core.VarID, vals []core.ValIndex) error {
	if len(vars) != len(vals) {
		return fmt.Errorf("discrete: ConditionOn: %d vars vs %d values: %w",
			len(vars), len(vals), ErrLengthMismatch)
	}
	if !slices.IsSorted(vars) {
		return fmt.Errorf("discrete: ConditionOn: %w", ErrUnsortedInput)
	}

	// Validate the full pin set before mutating any state.
	for in, v := range vars {
		k, found := slices.BinarySearch(it.vars, v)
		if !found {
			continue
		}
		if vals[in] < 0 || vals[in] >= it.sizes[k] {
			return fmt.Errorf("discrete: ConditionOn: var %d value %d outside [0,%d): %w",
				v, vals[in], it.sizes[k], core.ErrOutOfRange)
		}
	}

	for in, v := range vars {
		if k, found := slices.BinarySearch(it.vars, v); found {
			it.sub[k] = vals[in]
			it.fixed[k] = true
		}
	}
	it.Reset()

	return nil
}

// ConditionOnIterator pins variables using another iterator's current
// tuple — the inner step of marginalization, where the output tuple
// pins the shared coordinates of the input domain.
func (it *DomainIterator) ConditionOnIterator(other *DomainIterator) error {
	return it.ConditionOn(other.vars, other.sub)
}

// IsFixed reports whether v is pinned.
//
// Complexity: O(log n).
func (it *DomainIterator) IsFixed(v core.VarID) bool {
	k, found := slices.BinarySearch(it.vars, v)
	return found && it.fixed[k]
}

// FixedCount returns the number of pinned coordinates.
//
// Complexity: O(n).
func (it *DomainIterator) FixedCount() int {
	n := 0
	for _, fx := range it.fixed {
		if fx {
			n++
		}
	}

	return n
}

// Reset zeroes the free coordinates, keeps the pinned ones, and makes
// the iterator valid again.
//
// Complexity: O(n).
func (it *DomainIterator) Reset() {
	it.ind = 0
	for k := range it.sub {
		if !it.fixed[k] {
			it.sub[k] = 0
		}
		it.ind += it.sub[k] * it.strides[k]
	}
	it.done = false
}
