// Package simulator provides the contract simulation harness used to
// unit-test contracts without a live blockchain.
//
// A Simulator owns the single mutable circuit context of one contract
// instance. Calls go through the Pure and Impure helpers, which inject the
// current context and, for impure calls, write the returned successor
// context back into the slot. Contract packages wrap these helpers in
// typed methods so tests read as plain method calls.
//
// # Caller identity
//
// Every call executes under an effective caller: the override set with
// SetCaller if present, otherwise the default identity the simulator was
// constructed with. The override persists until changed; SetCaller(nil)
// reverts to the default.
//
// # Thread safety
//
// A Simulator is not safe for concurrent use. Each test constructs its own
// instance and drives it sequentially; that is the execution model being
// simulated.
package simulator

import (
	"fmt"

	"github.com/compactkit/compactkit/pkg/runtime"
)

// Options parameterizes a simulator for one generated contract type.
// P is the contract's private state type, L its public ledger type.
type Options[P any, L any] struct {
	// Address of the simulated instance. Derived from Caller when zero.
	Address runtime.ContractAddress

	// Caller is the default identity calls originate from.
	Caller runtime.PublicKey

	// Block is the simulated block metadata visible to circuits.
	Block runtime.BlockInfo

	// PrivateState seeds the contract's private state.
	PrivateState P

	// Ledger projects the contract's public state to its typed ledger.
	// The projection must be read-only; the simulator hands it a clone.
	Ledger func(runtime.State) L

	// Deploy is the contract's initial-state constructor. Constructor
	// failures surface unchanged from New, before any circuit runs.
	Deploy func(runtime.ConstructorContext[P]) (runtime.DeployResult[P], error)
}

// Simulator holds the current circuit context of one contract instance.
type Simulator[P any, L any] struct {
	ctx           runtime.Context[P]
	extract       func(runtime.State) L
	defaultCaller runtime.PublicKey
	override      *runtime.PublicKey
}

// New deploys a contract instance and returns a simulator bound to it.
func New[P any, L any](opts Options[P, L]) (*Simulator[P, L], error) {
	if opts.Ledger == nil {
		return nil, fmt.Errorf("simulator: Ledger extractor is required")
	}
	if opts.Deploy == nil {
		return nil, fmt.Errorf("simulator: Deploy constructor is required")
	}

	addr := opts.Address
	if addr == (runtime.ContractAddress{}) {
		addr = runtime.DeriveContractAddress(opts.Caller, 0)
	}

	deployed, err := opts.Deploy(runtime.ConstructorContext[P]{
		PrivateState: opts.PrivateState,
		Caller:       opts.Caller,
		Address:      addr,
		Block:        opts.Block,
	})
	if err != nil {
		return nil, err
	}

	return &Simulator[P, L]{
		ctx: runtime.Context[P]{
			PrivateState: deployed.PrivateState,
			Local:        deployed.Local,
			Original:     deployed.State,
			Query: runtime.QueryContext{
				State:   deployed.State,
				Address: addr,
				Block:   opts.Block,
			},
		},
		extract:       opts.Ledger,
		defaultCaller: opts.Caller,
	}, nil
}

// Context returns the current circuit context.
func (s *Simulator[P, L]) Context() runtime.Context[P] {
	return s.ctx
}

// SetContext replaces the current circuit context wholesale.
func (s *Simulator[P, L]) SetContext(ctx runtime.Context[P]) {
	s.ctx = ctx
}

// Ledger returns the typed projection of the current public state. The
// projection is taken from a clone, so callers can inspect it freely
// without touching simulated state.
func (s *Simulator[P, L]) Ledger() L {
	return s.extract(s.ctx.Query.State.Clone())
}

// SetCaller overrides the identity subsequent calls appear to originate
// from. Passing nil reverts to the default identity.
func (s *Simulator[P, L]) SetCaller(key *runtime.PublicKey) {
	if key == nil {
		s.override = nil
		return
	}
	k := *key
	s.override = &k
}

// EffectiveCaller returns the identity the next call will execute under.
func (s *Simulator[P, L]) EffectiveCaller() runtime.PublicKey {
	if s.override != nil {
		return *s.override
	}
	return s.defaultCaller
}

// prepare builds the per-call context: the stored context with a fresh
// caller-scoped local state.
func (s *Simulator[P, L]) prepare() runtime.Context[P] {
	ctx := s.ctx
	ctx.Local = runtime.LocalState{Caller: s.EffectiveCaller()}
	return ctx
}

// Pure invokes a read-only circuit with the current context injected and
// returns only its result. The stored context is never modified.
func Pure[P any, L any, R any](s *Simulator[P, L], circuit func(runtime.Context[P]) (R, error)) (R, error) {
	return circuit(s.prepare())
}

// Impure invokes a state-mutating circuit with the current context
// injected, replaces the stored context with the successor context from
// the call result, and returns the result. On error the stored context is
// left untouched.
func Impure[P any, L any, R any](s *Simulator[P, L], circuit func(runtime.Context[P]) (runtime.CallResult[P, R], error)) (R, error) {
	res, err := circuit(s.prepare())
	if err != nil {
		var zero R
		return zero, err
	}
	s.ctx = res.Context
	return res.Result, nil
}
