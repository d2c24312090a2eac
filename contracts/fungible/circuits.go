package fungible

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/pkg/runtime"
)

// Initialize fixes the token's metadata. One-shot: a second call reverts
// with the initializable guard's error.
func Initialize[P any](ctx runtime.Context[P], meta Metadata) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	f := led.Fungible()
	if err := f.Init.Initialize(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	f.Meta = meta
	return runtime.Succeed(next, struct{}{})
}

// Name returns the token name.
func Name[P any](ctx runtime.Context[P]) (string, error) {
	f := ctx.Query.State.(Holder).Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return "", err
	}
	return f.Meta.Name, nil
}

// Symbol returns the token symbol.
func Symbol[P any](ctx runtime.Context[P]) (string, error) {
	f := ctx.Query.State.(Holder).Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return "", err
	}
	return f.Meta.Symbol, nil
}

// Decimals returns the token's decimal places.
func Decimals[P any](ctx runtime.Context[P]) (uint8, error) {
	f := ctx.Query.State.(Holder).Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return 0, err
	}
	return f.Meta.Decimals, nil
}

// TotalSupply returns the current total supply.
func TotalSupply[P any](ctx runtime.Context[P]) (*uint256.Int, error) {
	f := ctx.Query.State.(Holder).Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return nil, err
	}
	return f.Supply.Clone(), nil
}

// BalanceOf returns account's balance, zero for unknown accounts.
func BalanceOf[P any](ctx runtime.Context[P], account runtime.PublicKey) (*uint256.Int, error) {
	f := ctx.Query.State.(Holder).Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return nil, err
	}
	return f.BalanceOf(account), nil
}

// Allowance returns the amount spender may move on owner's behalf.
func Allowance[P any](ctx runtime.Context[P], owner, spender runtime.PublicKey) (*uint256.Int, error) {
	f := ctx.Query.State.(Holder).Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return nil, err
	}
	return f.AllowanceOf(owner, spender), nil
}

// Transfer moves value from the caller to to.
func Transfer[P any](ctx runtime.Context[P], to runtime.PublicKey, value *uint256.Int) (runtime.CallResult[P, bool], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	f := led.Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, bool](err)
	}
	if to.IsZero() {
		return runtime.Fail[P, bool](ErrInvalidRecipient)
	}
	if err := f.move(ctx.Caller(), to, value); err != nil {
		return runtime.Fail[P, bool](err)
	}
	return runtime.Succeed(next, true)
}

// Approve sets the caller's allowance for spender to exactly value,
// replacing any previous allowance.
func Approve[P any](ctx runtime.Context[P], spender runtime.PublicKey, value *uint256.Int) (runtime.CallResult[P, bool], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	f := led.Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, bool](err)
	}
	if spender.IsZero() {
		return runtime.Fail[P, bool](ErrInvalidSpender)
	}
	f.setAllowance(ctx.Caller(), spender, value.Clone())
	return runtime.Succeed(next, true)
}

// TransferFrom moves value from from to to, spending the caller's
// allowance. An allowance of the maximum 256-bit value is treated as
// unlimited and never decremented.
func TransferFrom[P any](ctx runtime.Context[P], from, to runtime.PublicKey, value *uint256.Int) (runtime.CallResult[P, bool], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	f := led.Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, bool](err)
	}
	if to.IsZero() {
		return runtime.Fail[P, bool](ErrInvalidRecipient)
	}

	allowed := f.AllowanceOf(from, ctx.Caller())
	unlimited := allowed.Eq(maxUint256())
	if !unlimited {
		if allowed.Lt(value) {
			return runtime.Fail[P, bool](ErrInsufficientAllowance)
		}
	}
	if err := f.move(from, to, value); err != nil {
		return runtime.Fail[P, bool](err)
	}
	if !unlimited {
		f.setAllowance(from, ctx.Caller(), allowed.Sub(allowed, value))
	}
	return runtime.Succeed(next, true)
}

// Mint creates value new tokens for to, growing the total supply.
func Mint[P any](ctx runtime.Context[P], to runtime.PublicKey, value *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	f := led.Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if to.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidRecipient)
	}

	supply, overflow := new(uint256.Int).AddOverflow(f.Supply, value)
	if overflow {
		return runtime.Fail[P, struct{}](ErrSupplyOverflow)
	}
	f.Supply = supply

	bal := f.BalanceOf(to)
	f.setBalance(to, bal.Add(bal, value))
	return runtime.Succeed(next, struct{}{})
}

// Burn destroys value tokens held by the caller, shrinking the total
// supply.
func Burn[P any](ctx runtime.Context[P], value *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	f := led.Fungible()
	if err := f.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}

	bal := f.BalanceOf(ctx.Caller())
	if bal.Lt(value) {
		return runtime.Fail[P, struct{}](ErrInsufficientBalance)
	}
	f.setBalance(ctx.Caller(), bal.Sub(bal, value))
	f.Supply = new(uint256.Int).Sub(f.Supply, value)
	return runtime.Succeed(next, struct{}{})
}

func maxUint256() *uint256.Int {
	max := new(uint256.Int)
	return max.Not(max)
}
