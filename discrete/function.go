package discrete

import (
	"fmt"
	"slices"
	"strings"

	"github.com/optalgo/factorgraph/core"
	"github.com/optalgo/factorgraph/indexing"
)

// Function is a dense tabular function over a sorted, duplicate-free
// set of discrete variables.
//
// vars holds the domain in strictly ascending VarID order; sizes caches
// each variable's registered domain size; values holds ∏ sizes cells in
// column-major order over the variable order (first variable fastest).
// A Function with an empty domain is a constant with exactly one cell.
type Function struct {
	vars   []core.VarID
	sizes  []core.ValIndex
	values []core.ValType
}

// Constant returns a function that depends on no variables and outputs
// val everywhere.
//
// Complexity: O(1).
func Constant(val core.ValType) *Function {
	return &Function{values: []core.ValType{val}}
}

// New constructs a function over the given variables with every cell
// initialized to val. The variable list may arrive unsorted and with
// duplicates; it is sorted and deduplicated. Domain sizes are cached
// from the registry; an unregistered id fails with
// core.ErrUnknownVariable.
//
// Complexity: O(n log n + ∏ sizes).
func New(vars []core.VarID, val core.ValType) (*Function, error) {
	sorted := slices.Clone(vars)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	sizes := make([]core.ValIndex, len(sorted))
	for k, v := range sorted {
		size, err := core.DomainSize(v)
		if err != nil {
			return nil, fmt.Errorf("discrete: New: %w", err)
		}
		sizes[k] = size
	}

	f := &Function{
		vars:   sorted,
		sizes:  sizes,
		values: make([]core.ValType, indexing.Capacity(sizes)),
	}
	f.Fill(val)

	return f, nil
}

// NewOver constructs a single-variable function initialized to val.
//
// Complexity: O(domain size of v).
func NewOver(v core.VarID, val core.ValType) (*Function, error) {
	return New([]core.VarID{v}, val)
}

// newRaw builds a zero-valued function over an already sorted,
// deduplicated variable list with known sizes. Internal fast path: no
// registry consultation, no copying of the input slices.
func newRaw(vars []core.VarID, sizes []core.ValIndex) *Function {
	return &Function{
		vars:   vars,
		sizes:  sizes,
		values: make([]core.ValType, indexing.Capacity(sizes)),
	}
}

// Clone returns a deep copy.
//
// Complexity: O(∏ sizes).
func (f *Function) Clone() *Function {
	return &Function{
		vars:   slices.Clone(f.vars),
		sizes:  slices.Clone(f.sizes),
		values: slices.Clone(f.values),
	}
}

// Swap exchanges domain and storage with another function in O(1).
func (f *Function) Swap(other *Function) {
	f.vars, other.vars = other.vars, f.vars
	f.sizes, other.sizes = other.sizes, f.sizes
	f.values, other.values = other.values, f.values
}

// Vars returns a copy of the domain variable list (ascending).
func (f *Function) Vars() []core.VarID {
	return slices.Clone(f.vars)
}

// Sizes returns a copy of the per-variable domain sizes, parallel to
// Vars.
func (f *Function) Sizes() []core.ValIndex {
	return slices.Clone(f.sizes)
}

// NumVars returns the number of variables in the domain.
func (f *Function) NumVars() int {
	return len(f.vars)
}

// DomainSize returns the total number of cells, ∏ sizes (1 for a
// constant).
func (f *Function) DomainSize() core.ValIndex {
	return core.ValIndex(len(f.values))
}

// DependsOn reports whether v is in the domain.
//
// Complexity: O(log n).
func (f *Function) DependsOn(v core.VarID) bool {
	_, found := slices.BinarySearch(f.vars, v)
	return found
}

// At returns the value at a linear index. Hot path: bounds are checked
// only by the runtime, as in the other unchecked accessors below; use
// AtChecked at trust boundaries.
func (f *Function) At(i core.ValIndex) core.ValType {
	return f.values[i]
}

// SetAt stores a value at a linear index. Hot path, unchecked.
func (f *Function) SetAt(i core.ValIndex, x core.ValType) {
	f.values[i] = x
}

// AtChecked returns the value at a linear index, or core.ErrOutOfRange.
func (f *Function) AtChecked(i core.ValIndex) (core.ValType, error) {
	if i < 0 || i >= f.DomainSize() {
		return 0, fmt.Errorf("discrete: AtChecked(%d): domain size %d: %w",
			i, f.DomainSize(), core.ErrOutOfRange)
	}

	return f.values[i], nil
}

// SetAtChecked stores a value at a linear index, or returns
// core.ErrOutOfRange.
func (f *Function) SetAtChecked(i core.ValIndex, x core.ValType) error {
	if i < 0 || i >= f.DomainSize() {
		return fmt.Errorf("discrete: SetAtChecked(%d): domain size %d: %w",
			i, f.DomainSize(), core.ErrOutOfRange)
	}
	f.values[i] = x

	return nil
}

// AtSub returns the value at an own-domain subindex tuple; sub must
// have exactly NumVars entries.
//
// Complexity: O(n).
func (f *Function) AtSub(sub []core.ValIndex) (core.ValType, error) {
	ind, err := indexing.Sub2Ind(f.sizes, sub)
	if err != nil {
		return 0, fmt.Errorf("discrete: AtSub: %w", err)
	}

	return f.values[ind], nil
}

// SetSub stores a value at an own-domain subindex tuple.
//
// Complexity: O(n).
func (f *Function) SetSub(sub []core.ValIndex, x core.ValType) error {
	ind, err := indexing.Sub2Ind(f.sizes, sub)
	if err != nil {
		return fmt.Errorf("discrete: SetSub: %w", err)
	}
	f.values[ind] = x

	return nil
}

// IndexOf maps a supervariable assignment to this function's linear
// index. superVars must be a sorted superset of the domain with a
// parallel subindex tuple; coordinates for variables outside the domain
// are skipped during a single merge walk, so no filtered tuple is ever
// materialized. This is the hot path of all message math.
//
// Complexity: O(len(superVars)).
func (f *Function) IndexOf(superVars []core.VarID, sub []core.ValIndex) (core.ValIndex, error) {
	if len(superVars) != len(sub) {
		return 0, fmt.Errorf("discrete: IndexOf: %d vars vs %d subindices: %w",
			len(superVars), len(sub), ErrLengthMismatch)
	}

	ind := core.ValIndex(0)
	stride := core.ValIndex(1)
	my := 0
	for in := 0; in < len(superVars) && my < len(f.vars); in++ {
		if f.vars[my] != superVars[in] {
			continue // not in this domain: skip its coordinate
		}
		if sub[in] < 0 || sub[in] >= f.sizes[my] {
			return 0, fmt.Errorf("discrete: IndexOf: sub for var %d is %d outside [0,%d): %w",
				superVars[in], sub[in], f.sizes[my], core.ErrOutOfRange)
		}
		ind += sub[in] * stride
		stride *= f.sizes[my]
		my++
	}
	if my != len(f.vars) {
		return 0, fmt.Errorf("discrete: IndexOf: input does not cover var %d: %w",
			f.vars[my], core.ErrBadDomain)
	}

	return ind, nil
}

// AtSuper returns the value addressed by a supervariable assignment.
//
// Complexity: O(len(superVars)).
func (f *Function) AtSuper(superVars []core.VarID, sub []core.ValIndex) (core.ValType, error) {
	ind, err := f.IndexOf(superVars, sub)
	if err != nil {
		return 0, err
	}

	return f.values[ind], nil
}

// IndexOfAssignment maps a VarID → ValIndex assignment to this
// function's linear index. Every domain variable must be present;
// extra keys are ignored. The constant function always maps to 0.
//
// Complexity: O(n) hash lookups.
func (f *Function) IndexOfAssignment(assign map[core.VarID]core.ValIndex) (core.ValIndex, error) {
	ind := core.ValIndex(0)
	stride := core.ValIndex(1)
	for k, v := range f.vars {
		sub, ok := assign[v]
		if !ok {
			return 0, fmt.Errorf("discrete: IndexOfAssignment: var %d missing: %w",
				v, core.ErrBadDomain)
		}
		if sub < 0 || sub >= f.sizes[k] {
			return 0, fmt.Errorf("discrete: IndexOfAssignment: var %d value %d outside [0,%d): %w",
				v, sub, f.sizes[k], core.ErrOutOfRange)
		}
		ind += sub * stride
		stride *= f.sizes[k]
	}

	return ind, nil
}

// AtAssignment returns the value addressed by a VarID → ValIndex
// assignment covering the domain.
func (f *Function) AtAssignment(assign map[core.VarID]core.ValIndex) (core.ValType, error) {
	ind, err := f.IndexOfAssignment(assign)
	if err != nil {
		return 0, err
	}

	return f.values[ind], nil
}

// AtIter returns the value addressed by an iterator's current tuple.
// When the iterator ranges over exactly this function's domain, indexing
// by it.Ind() directly is cheaper.
func (f *Function) AtIter(it *DomainIterator) (core.ValType, error) {
	return f.AtSuper(it.vars, it.sub)
}

// Fill sets every cell to val, keeping the domain.
//
// Complexity: O(∏ sizes).
func (f *Function) Fill(val core.ValType) *Function {
	for i := range f.values {
		f.values[i] = val
	}

	return f
}

// String renders the function in an N-d array layout: the first
// variable runs down the rows, the second across the columns, and each
// remaining coordinate combination gets its own block headed by its
// assignment.
func (f *Function) String() string {
	var b strings.Builder

	switch len(f.vars) {
	case 0:
		fmt.Fprintf(&b, "%g\n", f.values[0])
	case 1:
		for i := core.ValIndex(0); i < f.sizes[0]; i++ {
			fmt.Fprintf(&b, "%g\n", f.values[i])
		}
	default:
		rows, cols := f.sizes[0], f.sizes[1]
		blockSize := rows * cols
		blocks := f.DomainSize() / blockSize
		for blk := core.ValIndex(0); blk < blocks; blk++ {
			if len(f.vars) > 2 {
				// Head each block with the trailing-coordinate assignment.
				rest, _ := indexing.Ind2Sub(f.sizes[2:], blk)
				parts := make([]string, len(rest))
				for k, s := range rest {
					parts[k] = fmt.Sprintf("x%d=%d", f.vars[k+2], s)
				}
				fmt.Fprintf(&b, "(%s):\n", strings.Join(parts, ","))
			}
			for r := core.ValIndex(0); r < rows; r++ {
				for c := core.ValIndex(0); c < cols; c++ {
					if c > 0 {
						b.WriteString(" ")
					}
					fmt.Fprintf(&b, "%g", f.values[blk*blockSize+c*rows+r])
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
