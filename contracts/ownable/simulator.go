package ownable

import (
	"github.com/compactkit/compactkit/pkg/runtime"
	"github.com/compactkit/compactkit/pkg/simulator"
)

// Simulator drives the standalone ownable contract in tests.
type Simulator struct {
	*simulator.Simulator[struct{}, *Ledger]
}

// NewSimulator deploys the contract with the given default caller and
// initial owner. Constructor validation failures (zero initial owner)
// surface here, before any circuit is reachable.
func NewSimulator(caller, initialOwner runtime.PublicKey) (*Simulator, error) {
	base, err := simulator.New(simulator.Options[struct{}, *Ledger]{
		Caller: caller,
		Ledger: func(s runtime.State) *Ledger { return s.(*Ledger) },
		Deploy: func(ctx runtime.ConstructorContext[struct{}]) (runtime.DeployResult[struct{}], error) {
			led, err := NewLedger(initialOwner)
			if err != nil {
				return runtime.DeployResult[struct{}]{}, err
			}
			return runtime.DeployResult[struct{}]{
				State: led,
				Local: runtime.LocalState{Caller: ctx.Caller},
			}, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return &Simulator{Simulator: base}, nil
}

// Owner returns the current owner.
func (s *Simulator) Owner() (runtime.PublicKey, error) {
	return simulator.Pure(s.Simulator, Owner[struct{}])
}

// TransferOwnership hands ownership to newOwner as the effective caller.
func (s *Simulator) TransferOwnership(newOwner runtime.PublicKey) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return TransferOwnership(ctx, newOwner)
	})
	return err
}

// RenounceOwnership clears ownership as the effective caller.
func (s *Simulator) RenounceOwnership() error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return RenounceOwnership(ctx)
	})
	return err
}
