package pausable

import (
	"github.com/compactkit/compactkit/pkg/runtime"
	"github.com/compactkit/compactkit/pkg/simulator"
)

// Simulator drives the standalone pausable contract in tests.
type Simulator struct {
	*simulator.Simulator[struct{}, *Ledger]
}

// NewSimulator deploys the contract in the running (unpaused) state.
func NewSimulator(caller runtime.PublicKey) (*Simulator, error) {
	base, err := simulator.New(simulator.Options[struct{}, *Ledger]{
		Caller: caller,
		Ledger: func(s runtime.State) *Ledger { return s.(*Ledger) },
		Deploy: func(ctx runtime.ConstructorContext[struct{}]) (runtime.DeployResult[struct{}], error) {
			return runtime.DeployResult[struct{}]{
				State: &Ledger{},
				Local: runtime.LocalState{Caller: ctx.Caller},
			}, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return &Simulator{Simulator: base}, nil
}

// IsPaused reports the switch position.
func (s *Simulator) IsPaused() (bool, error) {
	return simulator.Pure(s.Simulator, IsPaused[struct{}])
}

// Pause stops the contract as the effective caller.
func (s *Simulator) Pause() error {
	_, err := simulator.Impure(s.Simulator, Pause[struct{}])
	return err
}

// Unpause resumes the contract as the effective caller.
func (s *Simulator) Unpause() error {
	_, err := simulator.Impure(s.Simulator, Unpause[struct{}])
	return err
}
