// Package fungible implements the fungible token standard: named,
// divisible balances with allowance-based delegated transfers.
//
// The ledger keeps balances and allowances in 256-bit amounts. All
// state-changing circuits are gated on one-shot initialization, which is
// where the token's metadata is fixed.
package fungible

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/contracts/initializable"
	"github.com/compactkit/compactkit/pkg/runtime"
)

// Metadata is the token's immutable description, fixed at initialization.
type Metadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Ledger is the public state of one fungible token instance.
type Ledger struct {
	Init initializable.State
	Meta Metadata

	Supply     *uint256.Int
	Balances   map[runtime.PublicKey]*uint256.Int
	Allowances map[runtime.PublicKey]map[runtime.PublicKey]*uint256.Int
}

// NewLedger builds an empty, uninitialized token ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Supply:     uint256.NewInt(0),
		Balances:   map[runtime.PublicKey]*uint256.Int{},
		Allowances: map[runtime.PublicKey]map[runtime.PublicKey]*uint256.Int{},
	}
}

// Holder is the ledger surface the circuits operate on. Composed contracts
// satisfy it by embedding *Ledger.
type Holder interface {
	runtime.State
	Fungible() *Ledger
}

// Fungible implements Holder.
func (l *Ledger) Fungible() *Ledger {
	return l
}

// Clone implements runtime.State with a deep copy.
func (l *Ledger) Clone() runtime.State {
	c := &Ledger{
		Init:       l.Init,
		Meta:       l.Meta,
		Supply:     l.Supply.Clone(),
		Balances:   make(map[runtime.PublicKey]*uint256.Int, len(l.Balances)),
		Allowances: make(map[runtime.PublicKey]map[runtime.PublicKey]*uint256.Int, len(l.Allowances)),
	}
	for acct, bal := range l.Balances {
		c.Balances[acct] = bal.Clone()
	}
	for owner, spenders := range l.Allowances {
		m := make(map[runtime.PublicKey]*uint256.Int, len(spenders))
		for spender, v := range spenders {
			m[spender] = v.Clone()
		}
		c.Allowances[owner] = m
	}
	return c
}

// BalanceOf returns account's balance, zero when the account is unknown.
func (l *Ledger) BalanceOf(account runtime.PublicKey) *uint256.Int {
	if bal, ok := l.Balances[account]; ok {
		return bal.Clone()
	}
	return uint256.NewInt(0)
}

// AllowanceOf returns the amount spender may move on owner's behalf.
func (l *Ledger) AllowanceOf(owner, spender runtime.PublicKey) *uint256.Int {
	if spenders, ok := l.Allowances[owner]; ok {
		if v, ok := spenders[spender]; ok {
			return v.Clone()
		}
	}
	return uint256.NewInt(0)
}

func (l *Ledger) setBalance(account runtime.PublicKey, v *uint256.Int) {
	if v.IsZero() {
		delete(l.Balances, account)
		return
	}
	l.Balances[account] = v
}

func (l *Ledger) setAllowance(owner, spender runtime.PublicKey, v *uint256.Int) {
	if v.IsZero() {
		if spenders, ok := l.Allowances[owner]; ok {
			delete(spenders, spender)
			if len(spenders) == 0 {
				delete(l.Allowances, owner)
			}
		}
		return
	}
	if l.Allowances[owner] == nil {
		l.Allowances[owner] = map[runtime.PublicKey]*uint256.Int{}
	}
	l.Allowances[owner][spender] = v
}

// move debits from and credits to. The total supply is untouched, so the
// conservation invariant sum(balances) == supply holds across transfers.
func (l *Ledger) move(from, to runtime.PublicKey, value *uint256.Int) error {
	fromBal := l.BalanceOf(from)
	if fromBal.Lt(value) {
		return ErrInsufficientBalance
	}
	l.setBalance(from, fromBal.Sub(fromBal, value))

	toBal := l.BalanceOf(to)
	// Cannot overflow: supply is overflow-checked at mint time.
	l.setBalance(to, toBal.Add(toBal, value))
	return nil
}
