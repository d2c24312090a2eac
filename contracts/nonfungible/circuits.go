package nonfungible

import (
	"github.com/holiman/uint256"

	"github.com/compactkit/compactkit/pkg/runtime"
)

// Initialize fixes the collection's metadata. One-shot.
func Initialize[P any](ctx runtime.Context[P], meta Metadata) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	n := led.NonFungible()
	if err := n.Init.Initialize(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	n.Meta = meta
	return runtime.Succeed(next, struct{}{})
}

// Name returns the collection name.
func Name[P any](ctx runtime.Context[P]) (string, error) {
	n := ctx.Query.State.(Holder).NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return "", err
	}
	return n.Meta.Name, nil
}

// Symbol returns the collection symbol.
func Symbol[P any](ctx runtime.Context[P]) (string, error) {
	n := ctx.Query.State.(Holder).NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return "", err
	}
	return n.Meta.Symbol, nil
}

// BalanceOf returns the number of tokens account holds.
func BalanceOf[P any](ctx runtime.Context[P], account runtime.PublicKey) (*uint256.Int, error) {
	n := ctx.Query.State.(Holder).NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return nil, err
	}
	return n.BalanceOf(account), nil
}

// OwnerOf returns the owner of token id. Nonexistent tokens revert.
func OwnerOf[P any](ctx runtime.Context[P], id *uint256.Int) (runtime.PublicKey, error) {
	n := ctx.Query.State.(Holder).NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return runtime.PublicKey{}, err
	}
	owner, ok := n.OwnerOf(id)
	if !ok {
		return runtime.PublicKey{}, ErrNonexistentToken
	}
	return owner, nil
}

// TokenURI returns the token's metadata URI: base URI plus the decimal id.
func TokenURI[P any](ctx runtime.Context[P], id *uint256.Int) (string, error) {
	n := ctx.Query.State.(Holder).NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return "", err
	}
	if _, ok := n.OwnerOf(id); !ok {
		return "", ErrNonexistentToken
	}
	if n.Meta.BaseURI == "" {
		return "", nil
	}
	return n.Meta.BaseURI + id.Dec(), nil
}

// GetApproved returns the single key approved for token id, zero when none.
func GetApproved[P any](ctx runtime.Context[P], id *uint256.Int) (runtime.PublicKey, error) {
	n := ctx.Query.State.(Holder).NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return runtime.PublicKey{}, err
	}
	if _, ok := n.OwnerOf(id); !ok {
		return runtime.PublicKey{}, ErrNonexistentToken
	}
	return n.TokenApprovals[*id], nil
}

// IsApprovedForAll reports whether operator may manage all of owner's
// tokens.
func IsApprovedForAll[P any](ctx runtime.Context[P], owner, operator runtime.PublicKey) (bool, error) {
	n := ctx.Query.State.(Holder).NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return false, err
	}
	return n.IsOperator(owner, operator), nil
}

// Approve grants to the right to move token id. Caller must be the owner
// or one of the owner's operators.
func Approve[P any](ctx runtime.Context[P], to runtime.PublicKey, id *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	n := led.NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	owner, ok := n.OwnerOf(id)
	if !ok {
		return runtime.Fail[P, struct{}](ErrNonexistentToken)
	}
	caller := ctx.Caller()
	if caller != owner && !n.IsOperator(owner, caller) {
		return runtime.Fail[P, struct{}](ErrUnauthorized)
	}
	if to.IsZero() {
		delete(n.TokenApprovals, *id)
	} else {
		n.TokenApprovals[*id] = to
	}
	return runtime.Succeed(next, struct{}{})
}

// SetApprovalForAll grants or revokes operator over all of the caller's
// tokens.
func SetApprovalForAll[P any](ctx runtime.Context[P], operator runtime.PublicKey, approved bool) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	n := led.NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if operator.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidOperator)
	}
	caller := ctx.Caller()
	if !approved {
		delete(n.OperatorApprovals[caller], operator)
		if len(n.OperatorApprovals[caller]) == 0 {
			delete(n.OperatorApprovals, caller)
		}
	} else {
		if n.OperatorApprovals[caller] == nil {
			n.OperatorApprovals[caller] = map[runtime.PublicKey]bool{}
		}
		n.OperatorApprovals[caller][operator] = true
	}
	return runtime.Succeed(next, struct{}{})
}

// TransferFrom moves token id from from to to. Caller must be authorized
// for the token, and from must be its current owner. The token's single
// approval is cleared by the transfer.
func TransferFrom[P any](ctx runtime.Context[P], from, to runtime.PublicKey, id *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	n := led.NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if to.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidRecipient)
	}
	owner, ok := n.OwnerOf(id)
	if !ok {
		return runtime.Fail[P, struct{}](ErrNonexistentToken)
	}
	if !n.isAuthorized(owner, ctx.Caller(), id) {
		return runtime.Fail[P, struct{}](ErrUnauthorized)
	}
	if owner != from {
		return runtime.Fail[P, struct{}](ErrIncorrectOwner)
	}

	delete(n.TokenApprovals, *id)
	n.Owners[*id] = to
	n.adjustBalance(from, -1)
	n.adjustBalance(to, +1)
	return runtime.Succeed(next, struct{}{})
}

// Mint creates token id for to. Minting an existing id reverts.
func Mint[P any](ctx runtime.Context[P], to runtime.PublicKey, id *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	n := led.NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	if to.IsZero() {
		return runtime.Fail[P, struct{}](ErrInvalidRecipient)
	}
	if _, ok := n.OwnerOf(id); ok {
		return runtime.Fail[P, struct{}](ErrAlreadyMinted)
	}
	n.Owners[*id] = to
	n.adjustBalance(to, +1)
	return runtime.Succeed(next, struct{}{})
}

// Burn destroys token id. Caller must be authorized for the token.
func Burn[P any](ctx runtime.Context[P], id *uint256.Int) (runtime.CallResult[P, struct{}], error) {
	led, next := runtime.Begin[P, Holder](ctx)
	n := led.NonFungible()
	if err := n.Init.AssertInitialized(); err != nil {
		return runtime.Fail[P, struct{}](err)
	}
	owner, ok := n.OwnerOf(id)
	if !ok {
		return runtime.Fail[P, struct{}](ErrNonexistentToken)
	}
	if !n.isAuthorized(owner, ctx.Caller(), id) {
		return runtime.Fail[P, struct{}](ErrUnauthorized)
	}
	delete(n.TokenApprovals, *id)
	delete(n.Owners, *id)
	n.adjustBalance(owner, -1)
	return runtime.Succeed(next, struct{}{})
}
