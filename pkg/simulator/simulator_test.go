package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compactkit/compactkit/pkg/runtime"
)

// The tests drive a tiny counter contract: one cell, an increment circuit,
// a read circuit, and a circuit that records the caller it observed.

type counterLedger struct {
	Count      uint64
	LastCaller runtime.PublicKey
}

func (l *counterLedger) Clone() runtime.State {
	c := *l
	return &c
}

const errCounterOverflow = runtime.AssertError("Counter: overflow")

func deployCounter(start uint64, failDeploy bool) func(runtime.ConstructorContext[struct{}]) (runtime.DeployResult[struct{}], error) {
	return func(ctx runtime.ConstructorContext[struct{}]) (runtime.DeployResult[struct{}], error) {
		if failDeploy {
			return runtime.DeployResult[struct{}]{}, runtime.AssertError("Counter: invalid constructor arguments")
		}
		return runtime.DeployResult[struct{}]{
			State: &counterLedger{Count: start},
			Local: runtime.LocalState{Caller: ctx.Caller},
		}, nil
	}
}

func increment(ctx runtime.Context[struct{}], by uint64) (runtime.CallResult[struct{}, uint64], error) {
	led, next := runtime.Begin[struct{}, *counterLedger](ctx)
	if led.Count+by < led.Count {
		return runtime.Fail[struct{}, uint64](errCounterOverflow)
	}
	led.Count += by
	led.LastCaller = ctx.Caller()
	return runtime.Succeed(next, led.Count)
}

func read(ctx runtime.Context[struct{}]) (uint64, error) {
	return ctx.Query.State.(*counterLedger).Count, nil
}

func newCounterSim(t *testing.T, caller runtime.PublicKey) *Simulator[struct{}, *counterLedger] {
	t.Helper()
	sim, err := New(Options[struct{}, *counterLedger]{
		Caller: caller,
		Ledger: func(s runtime.State) *counterLedger { return s.(*counterLedger) },
		Deploy: deployCounter(0, false),
	})
	require.NoError(t, err)
	return sim
}

func TestImpure_ThreadsContextAcrossCalls(t *testing.T) {
	owner := runtime.PublicKeyFromSeed([32]byte{1})
	sim := newCounterSim(t, owner)

	// Each impure call must observe the state left by the previous one.
	for i := uint64(1); i <= 5; i++ {
		got, err := Impure(sim, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, uint64], error) {
			return increment(ctx, 1)
		})
		require.NoError(t, err)
		assert.Equal(t, i, got, "call %d should see all prior increments", i)
	}
	assert.Equal(t, uint64(5), sim.Ledger().Count)
}

func TestImpure_ErrorLeavesContextUntouched(t *testing.T) {
	owner := runtime.PublicKeyFromSeed([32]byte{1})
	sim := newCounterSim(t, owner)

	_, err := Impure(sim, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, uint64], error) {
		return increment(ctx, 3)
	})
	require.NoError(t, err)
	before := sim.Context()

	_, err = Impure(sim, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, uint64], error) {
		return increment(ctx, ^uint64(0)) // overflows
	})
	require.EqualError(t, err, "Counter: overflow")

	assert.Equal(t, before, sim.Context(), "failed call must not replace the stored context")
	assert.Equal(t, uint64(3), sim.Ledger().Count)
}

func TestPure_DoesNotReplaceContext(t *testing.T) {
	owner := runtime.PublicKeyFromSeed([32]byte{1})
	sim := newCounterSim(t, owner)

	before := sim.Context()
	got, err := Pure(sim, read)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got)
	assert.Equal(t, before, sim.Context())
}

func TestSetCaller_OverridesAndReverts(t *testing.T) {
	owner := runtime.PublicKeyFromSeed([32]byte{1})
	mallory := runtime.PublicKeyFromSeed([32]byte{2})
	sim := newCounterSim(t, owner)

	// Default identity.
	_, err := Impure(sim, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, uint64], error) {
		return increment(ctx, 1)
	})
	require.NoError(t, err)
	assert.Equal(t, owner, sim.Ledger().LastCaller, "default caller should be the constructor identity")

	// Override persists across calls until changed.
	sim.SetCaller(&mallory)
	for i := 0; i < 2; i++ {
		_, err = Impure(sim, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, uint64], error) {
			return increment(ctx, 1)
		})
		require.NoError(t, err)
		assert.Equal(t, mallory, sim.Ledger().LastCaller, "override should persist until changed")
	}

	// nil reverts to the default identity.
	sim.SetCaller(nil)
	_, err = Impure(sim, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, uint64], error) {
		return increment(ctx, 1)
	})
	require.NoError(t, err)
	assert.Equal(t, owner, sim.Ledger().LastCaller, "SetCaller(nil) should revert to the default")
}

func TestNew_ConstructorFailureRejectsBeforeCircuits(t *testing.T) {
	owner := runtime.PublicKeyFromSeed([32]byte{1})

	sim, err := New(Options[struct{}, *counterLedger]{
		Caller: owner,
		Ledger: func(s runtime.State) *counterLedger { return s.(*counterLedger) },
		Deploy: deployCounter(0, true),
	})
	require.EqualError(t, err, "Counter: invalid constructor arguments")
	assert.Nil(t, sim, "no simulator should exist after a failed constructor")
}

func TestNew_RequiresWiring(t *testing.T) {
	_, err := New(Options[struct{}, *counterLedger]{
		Deploy: deployCounter(0, false),
	})
	assert.Error(t, err, "missing ledger extractor should be rejected")

	_, err = New(Options[struct{}, *counterLedger]{
		Ledger: func(s runtime.State) *counterLedger { return s.(*counterLedger) },
	})
	assert.Error(t, err, "missing constructor should be rejected")
}

func TestLedger_ProjectionIsIsolated(t *testing.T) {
	owner := runtime.PublicKeyFromSeed([32]byte{1})
	sim := newCounterSim(t, owner)

	// Mutating the projection must not leak into simulated state.
	sim.Ledger().Count = 99
	assert.Equal(t, uint64(0), sim.Ledger().Count, "ledger projection should be taken from a clone")
}
