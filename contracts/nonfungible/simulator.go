package nonfungible

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/pkg/runtime"
	"github.com/compactkit/compactkit/pkg/simulator"
)

// Simulator drives a non-fungible token instance in tests.
type Simulator struct {
	*simulator.Simulator[struct{}, *Ledger]
}

// NewSimulator deploys a collection and runs Initialize with the given
// metadata.
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
	if _, err := simulator.Impure(sim.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Initialize(ctx, meta)
	}); err != nil {
		return nil, err
	}
	return sim, nil
}

// Name returns the collection name.
func (s *Simulator) Name() (string, error) {
	return simulator.Pure(s.Simulator, Name[struct{}])
}

// Symbol returns the collection symbol.
func (s *Simulator) Symbol() (string, error) {
	return simulator.Pure(s.Simulator, Symbol[struct{}])
}

// BalanceOf returns the number of tokens account holds.
func (s *Simulator) BalanceOf(account runtime.PublicKey) (*uint256.Int, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (*uint256.Int, error) {
		return BalanceOf(ctx, account)
	})
}

// OwnerOf returns the owner of token id.
func (s *Simulator) OwnerOf(id *uint256.Int) (runtime.PublicKey, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.PublicKey, error) {
		return OwnerOf(ctx, id)
	})
}

// TokenURI returns the token's metadata URI.
func (s *Simulator) TokenURI(id *uint256.Int) (string, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (string, error) {
		return TokenURI(ctx, id)
	})
}

// GetApproved returns the key approved for token id.
func (s *Simulator) GetApproved(id *uint256.Int) (runtime.PublicKey, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.PublicKey, error) {
		return GetApproved(ctx, id)
	})
}

// IsApprovedForAll reports whether operator manages all of owner's tokens.
func (s *Simulator) IsApprovedForAll(owner, operator runtime.PublicKey) (bool, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (bool, error) {
		return IsApprovedForAll(ctx, owner, operator)
	})
}

// Approve grants to the right to move token id as the effective caller.
func (s *Simulator) Approve(to runtime.PublicKey, id *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Approve(ctx, to, id)
	})
	return err
}

// SetApprovalForAll grants or revokes operator over all of the caller's
// tokens.
func (s *Simulator) SetApprovalForAll(operator runtime.PublicKey, approved bool) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return SetApprovalForAll(ctx, operator, approved)
	})
	return err
}

// TransferFrom moves token id from from to to as the effective caller.
func (s *Simulator) TransferFrom(from, to runtime.PublicKey, id *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return TransferFrom(ctx, from, to, id)
	})
	return err
}

// Mint creates token id for to.
func (s *Simulator) Mint(to runtime.PublicKey, id *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Mint(ctx, to, id)
	})
	return err
}

// Burn destroys token id as the effective caller.
func (s *Simulator) Burn(id *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Burn(ctx, id)
	})
	return err
}
