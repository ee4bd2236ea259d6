package indexing_test

import (
	"testing"

	"github.com/optalgo/factorgraph/core"
	"github.com/optalgo/factorgraph/indexing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizes(vals ...int64) []core.ValIndex {
	out := make([]core.ValIndex, len(vals))
	for i, v := range vals {
		out[i] = core.ValIndex(v)
	}
	return out
}

// TestSub2Ind_Reference pins the worked example: sizes (2,3,4),
// sub (1,2,3) → 1 + 2·2 + 3·6 = 23.
func TestSub2Ind_Reference(t *testing.T) {
	ind, err := indexing.Sub2Ind(sizes(2, 3, 4), sizes(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, core.ValIndex(23), ind)
}

// TestInd2Sub_Reference pins the inverse of the worked example.
func TestInd2Sub_Reference(t *testing.T) {
	sub, err := indexing.Ind2Sub(sizes(2, 3, 4), 23)
	require.NoError(t, err)
	assert.Equal(t, sizes(1, 2, 3), sub)
}

// TestSub2Ind_RoundTrip verifies sub2ind(ind2sub(i)) == i over the
// whole index range of a small mixed-radix shape.
func TestSub2Ind_RoundTrip(t *testing.T) {
	shape := sizes(2, 3, 4)
	for i := core.ValIndex(0); i < 24; i++ {
		sub, err := indexing.Ind2Sub(shape, i)
		require.NoError(t, err)
		ind, err := indexing.Sub2Ind(shape, sub)
		require.NoError(t, err)
		assert.Equal(t, i, ind, "round trip must be identity at %d", i)
	}
}

// TestSub2Ind_EmptyShape verifies the zero-dimensional case: one cell,
// index 0.
func TestSub2Ind_EmptyShape(t *testing.T) {
	ind, err := indexing.Sub2Ind(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, core.ValIndex(0), ind)

	sub, err := indexing.Ind2Sub(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, sub)

	_, err = indexing.Ind2Sub(nil, 1)
	assert.ErrorIs(t, err, core.ErrOutOfRange, "only index 0 exists for an empty shape")
}

// TestSub2Ind_Violations exercises every precondition branch.
func TestSub2Ind_Violations(t *testing.T) {
	// Mismatched lengths.
	_, err := indexing.Sub2Ind(sizes(2, 3), sizes(1))
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	// Subindex below range.
	_, err = indexing.Sub2Ind(sizes(2, 3), sizes(-1, 0))
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	// Subindex above range.
	_, err = indexing.Sub2Ind(sizes(2, 3), sizes(0, 3))
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	// Degenerate dimension size.
	_, err = indexing.Sub2Ind(sizes(0), sizes(0))
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

// TestInd2Sub_Violations exercises the linear-index bounds.
func TestInd2Sub_Violations(t *testing.T) {
	_, err := indexing.Ind2Sub(sizes(2, 3), -1)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	_, err = indexing.Ind2Sub(sizes(2, 3), 6)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

// TestStrides_FirstFastest pins the stride layout the whole module
// depends on.
func TestStrides_FirstFastest(t *testing.T) {
	assert.Equal(t, sizes(1, 2, 6), indexing.Strides(sizes(2, 3, 4)))
	assert.Empty(t, indexing.Strides(nil))
	assert.Equal(t, core.ValIndex(24), indexing.Capacity(sizes(2, 3, 4)))
	assert.Equal(t, core.ValIndex(1), indexing.Capacity(nil))
}
