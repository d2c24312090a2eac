package fungible

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/pkg/runtime"
	"github.com/compactkit/compactkit/pkg/simulator"
)

// Simulator drives a fungible token instance in tests.
type Simulator struct {
	*simulator.Simulator[struct{}, *Ledger]
}

// NewSimulator deploys a token and runs Initialize with the given
// metadata, matching how generated contracts initialize at deploy time.
func NewSimulator(caller runtime.PublicKey, meta Metadata) (*Simulator, error) {
	base, err := simulator.New(simulator.Options[struct{}, *Ledger]{
		Caller: caller,
		Ledger: func(s runtime.State) *Ledger { return s.(*Ledger) },
		Deploy: func(ctx runtime.ConstructorContext[struct{}]) (runtime.DeployResult[struct{}], error) {
			return runtime.DeployResult[struct{}]{
				State: NewLedger(),
				Local: runtime.LocalState{Caller: ctx.Caller},
			}, nil
		},
	})
	if err != nil {
		return nil, err
	}
	sim := &Simulator{Simulator: base}
	if err := sim.Initialize(meta); err != nil {
		return nil, err
	}
	return sim, nil
}

// Initialize fixes the token metadata.
func (s *Simulator) Initialize(meta Metadata) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Initialize(ctx, meta)
	})
	return err
}

// Name returns the token name.
func (s *Simulator) Name() (string, error) {
	return simulator.Pure(s.Simulator, Name[struct{}])
}

// Symbol returns the token symbol.
func (s *Simulator) Symbol() (string, error) {
	return simulator.Pure(s.Simulator, Symbol[struct{}])
}

// Decimals returns the token's decimal places.
func (s *Simulator) Decimals() (uint8, error) {
	return simulator.Pure(s.Simulator, Decimals[struct{}])
}

// TotalSupply returns the current total supply.
func (s *Simulator) TotalSupply() (*uint256.Int, error) {
	return simulator.Pure(s.Simulator, TotalSupply[struct{}])
}

// BalanceOf returns account's balance.
func (s *Simulator) BalanceOf(account runtime.PublicKey) (*uint256.Int, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (*uint256.Int, error) {
		return BalanceOf(ctx, account)
	})
}

// Allowance returns the amount spender may move on owner's behalf.
func (s *Simulator) Allowance(owner, spender runtime.PublicKey) (*uint256.Int, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (*uint256.Int, error) {
		return Allowance(ctx, owner, spender)
	})
}

// Transfer moves value from the effective caller to to.
func (s *Simulator) Transfer(to runtime.PublicKey, value *uint256.Int) (bool, error) {
	return simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, bool], error) {
		return Transfer(ctx, to, value)
	})
}

// Approve sets the effective caller's allowance for spender.
func (s *Simulator) Approve(spender runtime.PublicKey, value *uint256.Int) (bool, error) {
	return simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, bool], error) {
		return Approve(ctx, spender, value)
	})
}

// TransferFrom moves value from from to to, spending the caller's
// allowance.
func (s *Simulator) TransferFrom(from, to runtime.PublicKey, value *uint256.Int) (bool, error) {
	return simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, bool], error) {
		return TransferFrom(ctx, from, to, value)
	})
}

// Mint creates value new tokens for to.
func (s *Simulator) Mint(to runtime.PublicKey, value *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Mint(ctx, to, value)
	})
	return err
}

// Burn destroys value tokens held by the effective caller.
func (s *Simulator) Burn(value *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Burn(ctx, value)
	})
	return err
}
