package indexing

import (
	"fmt"

	"github.com/optalgo/factorgraph/core"
)

// Strides returns the stride of each dimension under the first-fastest
// layout: strides[k] = ∏_{j<k} sizes[j].
//
// Complexity: O(n).
func Strides(sizes []core.ValIndex) []core.ValIndex {
	strides := make([]core.ValIndex, len(sizes))
	acc := core.ValIndex(1)
	for k, s := range sizes {
		strides[k] = acc
		acc *= s
	}

	return strides
}

// Capacity returns the total number of cells spanned by sizes; the
// empty product is 1.
//
// Complexity: O(n).
func Capacity(sizes []core.ValIndex) core.ValIndex {
	total := core.ValIndex(1)
	for _, s := range sizes {
		total *= s
	}

	return total
}

// Sub2Ind converts a subindex tuple to its linear index.
//
// Preconditions: len(sub) == len(sizes), every sizes[k] >= 1 and every
// sub[k] in [0, sizes[k]). Violations return core.ErrOutOfRange.
//
// Complexity: O(n).
func Sub2Ind(sizes, sub []core.ValIndex) (core.ValIndex, error) {
	if len(sizes) != len(sub) {
		return 0, fmt.Errorf("indexing: Sub2Ind: %d sizes vs %d subindices: %w",
			len(sizes), len(sub), core.ErrOutOfRange)
	}

	ind := core.ValIndex(0)
	stride := core.ValIndex(1)
	for k := range sizes {
		if sizes[k] < 1 {
			return 0, fmt.Errorf("indexing: Sub2Ind: size[%d]=%d: %w", k, sizes[k], core.ErrOutOfRange)
		}
		if sub[k] < 0 || sub[k] >= sizes[k] {
			return 0, fmt.Errorf("indexing: Sub2Ind: sub[%d]=%d outside [0,%d): %w",
				k, sub[k], sizes[k], core.ErrOutOfRange)
		}
		ind += sub[k] * stride
		stride *= sizes[k]
	}

	return ind, nil
}

// Ind2Sub converts a linear index back to its subindex tuple: for each
// dimension in ascending order, emit idx mod sizes[k], then divide.
//
// Preconditions: every sizes[k] >= 1 and idx in [0, ∏ sizes).
// Violations return core.ErrOutOfRange.
//
// Complexity: O(n).
func Ind2Sub(sizes []core.ValIndex, idx core.ValIndex) ([]core.ValIndex, error) {
	if idx < 0 || idx >= Capacity(sizes) {
		return nil, fmt.Errorf("indexing: Ind2Sub: index %d outside [0,%d): %w",
			idx, Capacity(sizes), core.ErrOutOfRange)
	}

	sub := make([]core.ValIndex, len(sizes))
	for k, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("indexing: Ind2Sub: size[%d]=%d: %w", k, s, core.ErrOutOfRange)
		}
		sub[k] = idx % s
		idx /= s
	}

	return sub, nil
}
