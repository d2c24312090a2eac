package simulator

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/hkdf"

	"github.com/compactkit/compactkit/pkg/runtime"
)

// ErrInvalidMnemonic is returned when an invalid BIP-39 mnemonic phrase is
// provided.
var ErrInvalidMnemonic = errors.New("simulator: invalid mnemonic phrase")

// AccountsFromMnemonic deterministically derives n test account keys from a
// BIP-39 mnemonic. The same mnemonic always produces the same accounts, so
// tests can name identities ("owner is account 0, spender is account 1")
// and stay reproducible across runs.
//
// Per-account seeds are expanded from the mnemonic seed with HKDF-SHA256
// using the account index as info.
func AccountsFromMnemonic(mnemonic string, n int) ([]runtime.PublicKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	if n <= 0 {
		return nil, fmt.Errorf("simulator: account count must be positive, got %d", n)
	}

	seed := bip39.NewSeed(mnemonic, "")

	keys := make([]runtime.PublicKey, n)
	for i := range keys {
		info := fmt.Sprintf("compactkit/account/%d", i)
		r := hkdf.New(sha256.New, seed, nil, []byte(info))

		var accountSeed [32]byte
		if _, err := io.ReadFull(r, accountSeed[:]); err != nil {
			return nil, fmt.Errorf("simulator: derive account %d: %w", i, err)
		}
		keys[i] = runtime.PublicKeyFromSeed(accountSeed)
	}
	return keys, nil
}

// NewMnemonic generates a fresh 24-word BIP-39 mnemonic for test accounts.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256) // 24 words
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}
