package discrete_test

import (
	"os"
	"testing"

	"github.com/optalgo/factorgraph/core"
)

// Shared test variables. The registry is process-wide with no teardown,
// so every size is fixed once here and reused by all tests in this
// package.
const (
	vX core.VarID = 1 // size 2
	vY core.VarID = 2 // size 3
	vZ core.VarID = 3 // size 4

	vA core.VarID = 101 // size 2
	vB core.VarID = 102 // size 2
)

func TestMain(m *testing.M) {
	if err := core.RegisterAll(map[core.VarID]core.ValIndex{
		vX: 2,
		vY: 3,
		vZ: 4,
		vA: 2,
		vB: 2,
	}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func vi(vals ...int64) []core.ValIndex {
	out := make([]core.ValIndex, len(vals))
	for i, v := range vals {
		out[i] = core.ValIndex(v)
	}
	return out
}
