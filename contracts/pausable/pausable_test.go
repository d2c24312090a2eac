package pausable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compactkit/compactkit/pkg/runtime"
)

func TestPauseUnpauseCycle(t *testing.T) {
	caller := runtime.PublicKeyFromSeed([32]byte{1})
	sim, err := NewSimulator(caller)
	require.NoError(t, err)

	paused, err := sim.IsPaused()
	require.NoError(t, err)
	assert.False(t, paused, "contract should deploy unpaused")

	require.NoError(t, sim.Pause())
	paused, err = sim.IsPaused()
	require.NoError(t, err)
	assert.True(t, paused)

	require.NoError(t, sim.Unpause())
	paused, err = sim.IsPaused()
	require.NoError(t, err)
	assert.False(t, paused)
}

func TestPause_Twice(t *testing.T) {
	caller := runtime.PublicKeyFromSeed([32]byte{1})
	sim, err := NewSimulator(caller)
	require.NoError(t, err)

	require.NoError(t, sim.Pause())
	assert.ErrorIs(t, sim.Pause(), ErrPaused, "double pause must revert")
}

func TestUnpause_WhileRunning(t *testing.T) {
	caller := runtime.PublicKeyFromSeed([32]byte{1})
	sim, err := NewSimulator(caller)
	require.NoError(t, err)

	assert.ErrorIs(t, sim.Unpause(), ErrNotPaused, "unpausing a running contract must revert")
}

func TestAssertNotPaused(t *testing.T) {
	var s State
	assert.NoError(t, s.AssertNotPaused())

	require.NoError(t, s.Pause())
	assert.ErrorIs(t, s.AssertNotPaused(), ErrPaused)
}
