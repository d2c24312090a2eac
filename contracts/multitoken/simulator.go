package multitoken

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/pkg/runtime"
	"github.com/compactkit/compactkit/pkg/simulator"
)

// Simulator drives a multi-token instance in tests.
type Simulator struct {
	*simulator.Simulator[struct{}, *Ledger]
}

// NewSimulator deploys a multi-token contract and runs Initialize with the
// given URI template.
func NewSimulator(caller runtime.PublicKey, uri string) (*Simulator, error) {
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
		return Initialize(ctx, uri)
	}); err != nil {
		return nil, err
	}
	return sim, nil
}

// URI returns the metadata URI for token id.
func (s *Simulator) URI(id *uint256.Int) (string, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (string, error) {
		return URI(ctx, id)
	})
}

// BalanceOf returns account's balance of token id.
func (s *Simulator) BalanceOf(account runtime.PublicKey, id *uint256.Int) (*uint256.Int, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (*uint256.Int, error) {
		return BalanceOf(ctx, account, id)
	})
}

// BalanceOfBatch returns the balances of accounts[i] for ids[i].
func (s *Simulator) BalanceOfBatch(accounts []runtime.PublicKey, ids []*uint256.Int) ([]*uint256.Int, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) ([]*uint256.Int, error) {
		return BalanceOfBatch(ctx, accounts, ids)
	})
}

// IsApprovedForAll reports whether operator manages all of owner's tokens.
func (s *Simulator) IsApprovedForAll(owner, operator runtime.PublicKey) (bool, error) {
	return simulator.Pure(s.Simulator, func(ctx runtime.Context[struct{}]) (bool, error) {
		return IsApprovedForAll(ctx, owner, operator)
	})
}

// SetApprovalForAll grants or revokes operator over all of the caller's
// tokens.
func (s *Simulator) SetApprovalForAll(operator runtime.PublicKey, approved bool) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return SetApprovalForAll(ctx, operator, approved)
	})
	return err
}

// TransferFrom moves value of token id from from to to.
func (s *Simulator) TransferFrom(from, to runtime.PublicKey, id, value *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return TransferFrom(ctx, from, to, id, value)
	})
	return err
}

// BatchTransferFrom moves values[i] of ids[i] from from to to.
func (s *Simulator) BatchTransferFrom(from, to runtime.PublicKey, ids, values []*uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return BatchTransferFrom(ctx, from, to, ids, values)
	})
	return err
}

// Mint creates value of token id for to.
func (s *Simulator) Mint(to runtime.PublicKey, id, value *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Mint(ctx, to, id, value)
	})
	return err
}

// MintBatch creates values[i] of ids[i] for to.
func (s *Simulator) MintBatch(to runtime.PublicKey, ids, values []*uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return MintBatch(ctx, to, ids, values)
	})
	return err
}

// Burn destroys value of token id held by from.
func (s *Simulator) Burn(from runtime.PublicKey, id, value *uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return Burn(ctx, from, id, value)
	})
	return err
}

// BurnBatch destroys values[i] of ids[i] held by from.
func (s *Simulator) BurnBatch(from runtime.PublicKey, ids, values []*uint256.Int) error {
	_, err := simulator.Impure(s.Simulator, func(ctx runtime.Context[struct{}]) (runtime.CallResult[struct{}, struct{}], error) {
		return BurnBatch(ctx, from, ids, values)
	})
	return err
}
