package multitoken

import "github.com/compactkit/compactkit/pkg/runtime"

// Revert conditions of the multi-token circuits.
const (
	// ErrInsufficientBalance is returned when a transfer or burn exceeds
	// the source account's balance of the token id.
	ErrInsufficientBalance = runtime.AssertError("MultiToken: insufficient balance")

	// ErrBalanceOverflow is returned when a mint or transfer would
	// overflow a 256-bit balance.
	ErrBalanceOverflow = runtime.AssertError("MultiToken: balance overflow")

	// ErrUnauthorized is returned when the caller is neither the source
	// account nor one of its operators.
	ErrUnauthorized = runtime.AssertError("MultiToken: unauthorized operator")

	// ErrInvalidRecipient is returned when tokens would be sent or minted
	// to the zero key.
	ErrInvalidRecipient = runtime.AssertError("MultiToken: invalid recipient")

	// ErrInvalidOperator is returned when approving the zero key as an
	// operator.
	ErrInvalidOperator = runtime.AssertError("MultiToken: invalid operator")

	// ErrLengthMismatch is returned when a batch call's id and value
	// slices differ in length.
	ErrLengthMismatch = runtime.AssertError("MultiToken: ids and values length mismatch")
)
