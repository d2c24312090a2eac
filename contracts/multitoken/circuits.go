package multitoken

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/pkg/runtime"
)

// Initialize fixes the shared metadata URI. One-shot.
func Initialize[P any](ctx runtime.Context[P], uri string) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	m := led.MultiToken()
	if err := m.Init.Initialize(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	m.URI = uri
	return runtime.Succeed(next, struct{}{})
}

// URI returns the metadata URI for token id. Every id shares the same
// template string; clients substitute the id themselves.
func URI[P any](ctx runtime.Context[P], _ *uint256.Int) (string, error) {
	m := ctx.Query.State.(Holder).MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return "", err
	}
	return m.URI, nil
}

// BalanceOf returns account's balance of token id.
func BalanceOf[P any](ctx runtime.Context[P], account runtime.PublicKey, id *uint256.Int) (*uint256.Int, error) {
	m := ctx.Query.State.(Holder).MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return nil, err
	}
	return m.BalanceOf(account, id), nil
}

// BalanceOfBatch returns the balances of accounts[i] for ids[i], pairwise.
func BalanceOfBatch[P any](ctx runtime.Context[P], accounts []runtime.PublicKey, ids []*uint256.Int) ([]*uint256.Int, error) {
	m := ctx.Query.State.(Holder).MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return nil, err
	}
	if len(accounts) != len(ids) {
		return nil, ErrLengthMismatch
	}
	balances := make([]*uint256.Int, len(accounts))
	for i := range accounts {
		balances[i] = m.BalanceOf(accounts[i], ids[i])
	}
	return balances, nil
}

// IsApprovedForAll reports whether operator manages all of owner's tokens.
func IsApprovedForAll[P any](ctx runtime.Context[P], owner, operator runtime.PublicKey) (bool, error) {
	m := ctx.Query.State.(Holder).MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return false, err
	}
	return m.IsOperator(owner, operator), nil
}

// SetApprovalForAll grants or revokes operator over all of the caller's
// tokens.
func SetApprovalForAll[P any](ctx runtime.Context[P], operator runtime.PublicKey, approved bool) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	m := led.MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if operator.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidOperator)
	}
	caller := ctx.Caller()
	if !approved {
		delete(m.Operators[caller], operator)
		if len(m.Operators[caller]) == 0 {
			delete(m.Operators, caller)
		}
	} else {
		if m.Operators[caller] == nil {
			m.Operators[caller] = map[runtime.PublicKey]bool{}
		}
		m.Operators[caller][operator] = true
	}
	return runtime.Succeed(next, struct{}{})
}

// assertSourceAuthorized checks the caller may move from's tokens.
func assertSourceAuthorized(m *Ledger, from, caller runtime.PublicKey) error {
	if caller != from && !m.IsOperator(from, caller) {
		return ErrUnauthorized
	}
	return nil
}

// TransferFrom moves value of token id from from to to.
func TransferFrom[P any](ctx runtime.Context[P], from, to runtime.PublicKey, id, value *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	m := led.MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if to.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidRecipient)
	}
	if err := assertSourceAuthorized(m, from, ctx.Caller()); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if err := m.move(from, to, id, value); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}

// BatchTransferFrom moves values[i] of ids[i] from from to to, atomically:
// any failing leg reverts the whole batch.
func BatchTransferFrom[P any](ctx runtime.Context[P], from, to runtime.PublicKey, ids, values []*uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	m := led.MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if len(ids) != len(values) {
		return runtime.Fail[P, struct{}](ErrLengthMismatch)
	}
	if to.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidRecipient)
	}
	if err := assertSourceAuthorized(m, from, ctx.Caller()); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	for i := range ids {
		if err := m.move(from, to, ids[i], values[i]); err != nil {
			return runtime.Fail[P, struct{}](err)
		}
	}
	return runtime.Succeed(next, struct{}{})
}

// Mint creates value of token id for to.
func Mint[P any](ctx runtime.Context[P], to runtime.PublicKey, id, value *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	m := led.MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if to.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidRecipient)
	}
	if err := mintOne(m, to, id, value); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}

// MintBatch creates values[i] of ids[i] for to, atomically.
func MintBatch[P any](ctx runtime.Context[P], to runtime.PublicKey, ids, values []*uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	m := led.MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if len(ids) != len(values) {
		return runtime.Fail[P, struct{}](ErrLengthMismatch)
	}
	if to.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidRecipient)
	}
	for i := range ids {
		if err := mintOne(m, to, ids[i], values[i]); err != nil {
			return runtime.Fail[P, struct{}](err)
		}
	}
	return runtime.Succeed(next, struct{}{})
}

func mintOne(m *Ledger, to runtime.PublicKey, id, value *uint256.Int) error {
	bal := m.BalanceOf(to, id)
	bal, overflow := bal.AddOverflow(bal, value)
	if overflow {
		return ErrBalanceOverflow
	}
	m.setBalance(to, id, bal)
	return nil
}

// Burn destroys value of token id held by from. Caller must be from or one
// of from's operators.
func Burn[P any](ctx runtime.Context[P], from runtime.PublicKey, id, value *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	m := led.MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if err := assertSourceAuthorized(m, from, ctx.Caller()); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if err := burnOne(m, from, id, value); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	return runtime.Succeed(next, struct{}{})
}

// BurnBatch destroys values[i] of ids[i] held by from, atomically.
func BurnBatch[P any](ctx runtime.Context[P], from runtime.PublicKey, ids, values []*uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	m := led.MultiToken()
	if err := m.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if len(ids) != len(values) {
		return runtime.Fail[P, struct{}](ErrLengthMismatch)
	}
	if err := assertSourceAuthorized(m, from, ctx.Caller()); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	for i := range ids {
		if err := burnOne(m, from, ids[i], values[i]); err != nil {
			return runtime.Fail[P, struct{}](err)
		}
	}
	return runtime.Succeed(next, struct{}{})
}

func burnOne(m *Ledger, from runtime.PublicKey, id, value *uint256.Int) error {
	bal := m.BalanceOf(from, id)
	if bal.Lt(value) {
		return ErrInsufficientBalance
	}
	m.setBalance(from, id, bal.Sub(bal, value))
	return nil
}
