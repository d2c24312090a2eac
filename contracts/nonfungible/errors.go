package nonfungible

import "github.com/compactkit/compactkit/pkg/runtime"

// Revert conditions of the non-fungible token circuits.
const (
	// ErrNonexistentToken is returned when a circuit references a token
	// id that was never minted or has been burned.
	ErrNonexistentToken = runtime.AssertError("NonFungibleToken: nonexistent token")

	// ErrUnauthorized is returned when the caller is neither the owner,
	// the approved key, nor an operator of the owner.
	ErrUnauthorized = runtime.AssertError("NonFungibleToken: unauthorized caller")

	// ErrIncorrectOwner is returned when a transfer names a from account
	// that does not own the token.
	ErrIncorrectOwner = runtime.AssertError("NonFungibleToken: transfer from incorrect owner")

	// ErrInvalidRecipient is returned when a token would be sent or
	// minted to the zero key.
	ErrInvalidRecipient = runtime.AssertError("NonFungibleToken: invalid recipient")

	// ErrInvalidOperator is returned when approving the zero key as an
	// operator.
	ErrInvalidOperator = runtime.AssertError("NonFungibleToken: invalid operator")

	// ErrAlreadyMinted is returned when minting a token id that exists.
	ErrAlreadyMinted = runtime.AssertError("NonFungibleToken: token already minted")
)
