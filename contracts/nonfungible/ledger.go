// Package nonfungible implements the non-fungible token standard: unique
// 256-bit token identifiers with per-token and per-operator approvals.
//
// Token identifiers key the ledger maps directly as uint256.Int values,
// which are comparable fixed-size arrays.
package nonfungible

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/contracts/initializable"
	"github.com/compactkit/compactkit/pkg/runtime"
)

// Metadata is the collection's immutable description.
type Metadata struct {
	Name    string
	Symbol  string
	BaseURI string
}

// Ledger is the public state of one non-fungible token instance.
type Ledger struct {
	Init initializable.State
	Meta Metadata

	// Owners maps token id -> owner. Absence means the token does not
	// exist.
	Owners map[uint256.Int]runtime.PublicKey

	// Balances maps owner -> number of tokens held.
	Balances map[runtime.PublicKey]*uint256.Int

	// TokenApprovals maps token id -> the single approved key.
	TokenApprovals map[uint256.Int]runtime.PublicKey

	// OperatorApprovals maps owner -> operator -> approval for all of the
	// owner's tokens.
	OperatorApprovals map[runtime.PublicKey]map[runtime.PublicKey]bool
}

// NewLedger builds an empty, uninitialized collection ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Owners:            map[uint256.Int]runtime.PublicKey{},
		Balances:          map[runtime.PublicKey]*uint256.Int{},
		TokenApprovals:    map[uint256.Int]runtime.PublicKey{},
		OperatorApprovals: map[runtime.PublicKey]map[runtime.PublicKey]bool{},
	}
}

// Holder is the ledger surface the circuits operate on.
type Holder interface {
	runtime.State
	NonFungible() *Ledger
}

// NonFungible implements Holder.
func (l *Ledger) NonFungible() *Ledger {
	return l
}

// Clone implements runtime.State with a deep copy.
func (l *Ledger) Clone() runtime.State {
	c := &Ledger{
		Init:              l.Init,
		Meta:              l.Meta,
		Owners:            make(map[uint256.Int]runtime.PublicKey, len(l.Owners)),
		Balances:          make(map[runtime.PublicKey]*uint256.Int, len(l.Balances)),
		TokenApprovals:    make(map[uint256.Int]runtime.PublicKey, len(l.TokenApprovals)),
		OperatorApprovals: make(map[runtime.PublicKey]map[runtime.PublicKey]bool, len(l.OperatorApprovals)),
	}
	for id, owner := range l.Owners {
		c.Owners[id] = owner
	}
	for acct, bal := range l.Balances {
		c.Balances[acct] = bal.Clone()
	}
	for id, approved := range l.TokenApprovals {
		c.TokenApprovals[id] = approved
	}
	for owner, ops := range l.OperatorApprovals {
		m := make(map[runtime.PublicKey]bool, len(ops))
		for op, ok := range ops {
			m[op] = ok
		}
		c.OperatorApprovals[owner] = m
	}
	return c
}

// OwnerOf returns the owner of id and whether the token exists.
func (l *Ledger) OwnerOf(id *uint256.Int) (runtime.PublicKey, bool) {
	owner, ok := l.Owners[*id]
	return owner, ok
}

// BalanceOf returns the number of tokens account holds.
func (l *Ledger) BalanceOf(account runtime.PublicKey) *uint256.Int {
	if bal, ok := l.Balances[account]; ok {
		return bal.Clone()
	}
	return uint256.NewInt(0)
}

// IsOperator reports whether operator may manage all of owner's tokens.
func (l *Ledger) IsOperator(owner, operator runtime.PublicKey) bool {
	return l.OperatorApprovals[owner][operator]
}

// isAuthorized reports whether caller may move token id owned by owner:
// the owner, the token's approved key, or an operator of the owner.
func (l *Ledger) isAuthorized(owner, caller runtime.PublicKey, id *uint256.Int) bool {
	if caller == owner {
		return true
	}
	if l.TokenApprovals[*id] == caller {
		return true
	}
	return l.IsOperator(owner, caller)
}

func (l *Ledger) adjustBalance(account runtime.PublicKey, delta int) {
	bal := l.BalanceOf(account)
	one := uint256.NewInt(1)
	if delta > 0 {
		bal.Add(bal, one)
	} else {
		bal.Sub(bal, one)
	}
	if bal.IsZero() {
		delete(l.Balances, account)
		return
	}
	l.Balances[account] = bal
}
