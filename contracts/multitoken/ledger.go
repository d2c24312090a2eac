// Package multitoken implements the multi-token standard: many token
// classes in one contract, each identified by a 256-bit id, with fungible
// per-id balances and operator-based delegated transfers.
package multitoken

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/contracts/initializable"
	"github.com/compactkit/compactkit/pkg/runtime"
)

// Ledger is the public state of one multi-token instance.
type Ledger struct {
	Init initializable.State

	// URI is the metadata URI template shared by every token id.
	URI string

	// Balances maps token id -> account -> amount.
	Balances map[uint256.Int]map[runtime.PublicKey]*uint256.Int

	// Operators maps owner -> operator -> approval for all of the owner's
	// tokens.
	Operators map[runtime.PublicKey]map[runtime.PublicKey]bool
}

// NewLedger builds an empty, uninitialized multi-token ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Balances:  map[uint256.Int]map[runtime.PublicKey]*uint256.Int{},
		Operators: map[runtime.PublicKey]map[runtime.PublicKey]bool{},
	}
}

// Holder is the ledger surface the circuits operate on.
type Holder interface {
	runtime.State
	MultiToken() *Ledger
}

// MultiToken implements Holder.
func (l *Ledger) MultiToken() *Ledger {
	return l
}

// Clone implements runtime.State with a deep copy.
func (l *Ledger) Clone() runtime.State {
	c := &Ledger{
		Init:      l.Init,
		URI:       l.URI,
		Balances:  make(map[uint256.Int]map[runtime.PublicKey]*uint256.Int, len(l.Balances)),
		Operators: make(map[runtime.PublicKey]map[runtime.PublicKey]bool, len(l.Operators)),
	}
	for id, holders := range l.Balances {
		m := make(map[runtime.PublicKey]*uint256.Int, len(holders))
		for acct, bal := range holders {
			m[acct] = bal.Clone()
		}
		c.Balances[id] = m
	}
	for owner, ops := range l.Operators {
		m := make(map[runtime.PublicKey]bool, len(ops))
		for op, ok := range ops {
			m[op] = ok
		}
		c.Operators[owner] = m
	}
	return c
}

// BalanceOf returns account's balance of token id, zero when unknown.
func (l *Ledger) BalanceOf(account runtime.PublicKey, id *uint256.Int) *uint256.Int {
	if holders, ok := l.Balances[*id]; ok {
		if bal, ok := holders[account]; ok {
			return bal.Clone()
		}
	}
	return uint256.NewInt(0)
}

// IsOperator reports whether operator may manage all of owner's tokens.
func (l *Ledger) IsOperator(owner, operator runtime.PublicKey) bool {
	return l.Operators[owner][operator]
}

func (l *Ledger) setBalance(account runtime.PublicKey, id *uint256.Int, v *uint256.Int) {
	if v.IsZero() {
		if holders, ok := l.Balances[*id]; ok {
			delete(holders, account)
			if len(holders) == 0 {
				delete(l.Balances, *id)
			}
		}
		return
	}
	if l.Balances[*id] == nil {
		l.Balances[*id] = map[runtime.PublicKey]*uint256.Int{}
	}
	l.Balances[*id][account] = v
}

// move debits from and credits to for one token id.
func (l *Ledger) move(from, to runtime.PublicKey, id, value *uint256.Int) error {
	fromBal := l.BalanceOf(from, id)
	if fromBal.Lt(value) {
		return ErrInsufficientBalance
	}
	l.setBalance(from, id, fromBal.Sub(fromBal, value))

	toBal := l.BalanceOf(to, id)
	toBal, overflow := toBal.AddOverflow(toBal, value)
	if overflow {
		return ErrBalanceOverflow
	}
	l.setBalance(to, id, toBal)
	return nil
}
