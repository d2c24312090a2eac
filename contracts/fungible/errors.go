package fungible

import "github.com/compactkit/compactkit/pkg/runtime"

// Revert conditions of the fungible token circuits. Messages are stable;
// tests match on them verbatim.
const (
	// ErrInsufficientBalance is returned when a transfer or burn exceeds
	// the source account's balance.
	ErrInsufficientBalance = runtime.AssertError("FungibleToken: insufficient balance")

	// ErrInsufficientAllowance is returned when a delegated transfer
	// exceeds the spender's allowance.
	ErrInsufficientAllowance = runtime.AssertError("FungibleToken: insufficient allowance")

	// ErrInvalidRecipient is returned when tokens would be sent or minted
	// to the zero key.
	ErrInvalidRecipient = runtime.AssertError("FungibleToken: invalid recipient")

	// ErrInvalidSpender is returned when an allowance would be granted to
	// the zero key.
	ErrInvalidSpender = runtime.AssertError("FungibleToken: invalid spender")

	// ErrSupplyOverflow is returned when a mint would overflow the
	// 256-bit total supply.
	ErrSupplyOverflow = runtime.AssertError("FungibleToken: total supply overflow")
)
