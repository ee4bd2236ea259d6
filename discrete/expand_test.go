package discrete_test

import (
	"testing"

	"github.com/optalgo/factorgraph/core"
	"github.com/optalgo/factorgraph/discrete"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newXYTable builds g over {vX, vY} with g(i,j) = i + 10j.
func newXYTable(t *testing.T) *discrete.Function {
	t.Helper()
	g, err := discrete.New([]core.VarID{vX, vY}, 0)
	require.NoError(t, err)
	for j := int64(0); j < 3; j++ {
		for i := int64(0); i < 2; i++ {
			require.NoError(t, g.SetSub(vi(i, j), float64(i)+10*float64(j)))
		}
	}
	return g
}

// TestExpand_PreservesValues pins the reference scenario: f over {vA}
// with f(0)=10, f(1)=20, expanded by {vB}, replicates values across the
// new coordinate.
func TestExpand_PreservesValues(t *testing.T) {
	f, err := discrete.NewOver(vA, 0)
	require.NoError(t, err)
	f.SetAt(0, 10)
	f.SetAt(1, 20)

	require.NoError(t, f.Expand(vB))

	assert.Equal(t, []core.VarID{vA, vB}, f.Vars())
	for _, tc := range []struct {
		a, b int64
		want float64
	}{
		{0, 0, 10}, {1, 0, 20}, {0, 1, 10}, {1, 1, 20},
	} {
		v, serr := f.AtSub(vi(tc.a, tc.b))
		require.NoError(t, serr)
		assert.Equal(t, tc.want, v, "f(%d,%d)", tc.a, tc.b)
	}
}

// TestExpand_SupersetIsNoop verifies expanding by a subset of the
// current domain changes nothing.
func TestExpand_SupersetIsNoop(t *testing.T) {
	g := newXYTable(t)
	before := g.Clone()

	require.NoError(t, g.Expand(vX))

	assert.True(t, discrete.StrictlyEqualWithinTolerance(g, before, 0),
		"expand must be idempotent on a covered domain")
}

// TestExpand_ValueProperty verifies the broadcast property: after
// expand, f'(x) == f(x restricted to the old domain) for every tuple.
func TestExpand_ValueProperty(t *testing.T) {
	g := newXYTable(t)
	orig := g.Clone()

	require.NoError(t, g.Expand(vZ))
	require.Equal(t, []core.VarID{vX, vY, vZ}, g.Vars())

	for it := discrete.NewDomainIterator(g); it.HasNext(); it.Advance() {
		want, err := orig.AtSuper(it.Vars(), it.SubInd())
		require.NoError(t, err)
		assert.Equal(t, want, g.At(it.Ind()))
	}
}

// TestExpand_UnknownVariable verifies expansion onto an unregistered id
// fails and leaves the receiver intact.
func TestExpand_UnknownVariable(t *testing.T) {
	g := newXYTable(t)
	before := g.Clone()

	assert.ErrorIs(t, g.Expand(9999), core.ErrUnknownVariable)
	assert.True(t, discrete.StrictlyEqualWithinTolerance(g, before, 0))
}

// TestCondition_Reference pins the reference scenario: conditioning
// g(i,j)=i+10j on {vY}={1} yields h over {vX} with h(0)=10, h(1)=11.
func TestCondition_Reference(t *testing.T) {
	g := newXYTable(t)

	require.NoError(t, g.Condition([]core.VarID{vY}, vi(1)))

	assert.Equal(t, []core.VarID{vX}, g.Vars())
	assert.Equal(t, 10.0, g.At(0))
	assert.Equal(t, 11.0, g.At(1))
}

// TestCondition_RoundTrip verifies the conditioned function reproduces
// the original values at the fixed coordinates.
func TestCondition_RoundTrip(t *testing.T) {
	g := newXYTable(t)
	orig := g.Clone()

	require.NoError(t, g.Condition([]core.VarID{vY}, vi(2)))

	for i := int64(0); i < 2; i++ {
		want, err := orig.AtSub(vi(i, 2))
		require.NoError(t, err)
		got, err := g.AtSub(vi(i))
		require.NoError(t, err)
		assert.Equal(t, want, got, "conditioned slice must match the pinned plane")
	}
}

// TestCondition_DisjointIsNoop verifies conditioning on variables
// outside the domain changes nothing.
func TestCondition_DisjointIsNoop(t *testing.T) {
	g := newXYTable(t)
	before := g.Clone()

	require.NoError(t, g.Condition([]core.VarID{vZ}, vi(3)))

	assert.True(t, discrete.StrictlyEqualWithinTolerance(g, before, 0))
}

// TestCondition_AllVarsYieldsConstant verifies pinning the whole domain
// produces a constant carrying the pinned cell.
func TestCondition_AllVarsYieldsConstant(t *testing.T) {
	g := newXYTable(t)

	require.NoError(t, g.Condition([]core.VarID{vX, vY}, vi(1, 2)))

	assert.Equal(t, 0, g.NumVars())
	assert.Equal(t, core.ValIndex(1), g.DomainSize())
	assert.Equal(t, 21.0, g.At(0))
}

// TestCondition_OutOfRangeValue verifies a bad pinned value fails
// before any mutation.
func TestCondition_OutOfRangeValue(t *testing.T) {
	g := newXYTable(t)
	before := g.Clone()

	assert.ErrorIs(t, g.Condition([]core.VarID{vY}, vi(3)), core.ErrOutOfRange)
	assert.True(t, discrete.StrictlyEqualWithinTolerance(g, before, 0))
}
