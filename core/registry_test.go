package core_test

import (
	"sync"
	"testing"

	"github.com/optalgo/factorgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Variable ids used by this file only; the registry is process-wide and
// has no teardown, so every test file claims its own id range.
const regBase core.VarID = 10_000

// TestRegister_NewVariable verifies a fresh registration succeeds and
// becomes visible to all read accessors.
func TestRegister_NewVariable(t *testing.T) {
	v := regBase + 1

	require.NoError(t, core.Register(v, 4))

	assert.True(t, core.IsRegistered(v), "registered variable must be visible")
	size, err := core.DomainSize(v)
	require.NoError(t, err)
	assert.Equal(t, core.ValIndex(4), size, "registered size must round-trip")
}

// TestRegister_SameSizeIdempotent verifies re-registration with an equal
// size is a silent success.
func TestRegister_SameSizeIdempotent(t *testing.T) {
	v := regBase + 2

	require.NoError(t, core.Register(v, 3))
	assert.NoError(t, core.Register(v, 3), "same-size re-registration must succeed")
}

// TestRegister_ConflictingSize verifies a size conflict fails with
// ErrUnknownVariable and leaves the original registration intact.
func TestRegister_ConflictingSize(t *testing.T) {
	v := regBase + 3

	require.NoError(t, core.Register(v, 2))
	err := core.Register(v, 5)
	assert.ErrorIs(t, err, core.ErrUnknownVariable, "size conflict must error")

	size, err := core.DomainSize(v)
	require.NoError(t, err)
	assert.Equal(t, core.ValIndex(2), size, "registry must be unchanged after conflict")
}

// TestRegister_BadSize verifies sizes below 1 are rejected.
func TestRegister_BadSize(t *testing.T) {
	assert.ErrorIs(t, core.Register(regBase+4, 0), core.ErrOutOfRange)
	assert.ErrorIs(t, core.Register(regBase+4, -2), core.ErrOutOfRange)
	assert.False(t, core.IsRegistered(regBase+4), "rejected registration must not stick")
}

// TestDomainSize_Unknown verifies lookups of unregistered ids fail with
// ErrUnknownVariable.
func TestDomainSize_Unknown(t *testing.T) {
	_, err := core.DomainSize(regBase + 5)
	assert.ErrorIs(t, err, core.ErrUnknownVariable)
	assert.False(t, core.IsRegistered(regBase+5))
}

// TestRegisterAll_Batch verifies batch registration and its
// deterministic first-conflict failure.
func TestRegisterAll_Batch(t *testing.T) {
	require.NoError(t, core.RegisterAll(map[core.VarID]core.ValIndex{
		regBase + 6: 2,
		regBase + 7: 3,
	}))
	assert.True(t, core.IsRegistered(regBase+6))
	assert.True(t, core.IsRegistered(regBase+7))

	// regBase+6 conflicts; regBase+8 is never reached because 6 sorts first.
	err := core.RegisterAll(map[core.VarID]core.ValIndex{
		regBase + 6: 9,
		regBase + 8: 4,
	})
	assert.ErrorIs(t, err, core.ErrUnknownVariable)

	size, lookupErr := core.DomainSize(regBase + 6)
	require.NoError(t, lookupErr)
	assert.Equal(t, core.ValIndex(2), size)
}

// TestNumRegistered_Grows verifies the count reflects new registrations.
func TestNumRegistered_Grows(t *testing.T) {
	before := core.NumRegistered()
	require.NoError(t, core.Register(regBase+9, 2))
	assert.Equal(t, before+1, core.NumRegistered())

	// Idempotent re-registration must not grow the count.
	require.NoError(t, core.Register(regBase+9, 2))
	assert.Equal(t, before+1, core.NumRegistered())
}

// TestRegister_ConcurrentSameVariable hammers one id from many
// goroutines; all same-size registrations must succeed and the size
// must never change.
func TestRegister_ConcurrentSameVariable(t *testing.T) {
	v := regBase + 10

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, core.Register(v, 6))
			size, err := core.DomainSize(v)
			assert.NoError(t, err)
			assert.Equal(t, core.ValIndex(6), size)
		}()
	}
	wg.Wait()
}
