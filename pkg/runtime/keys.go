package runtime

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"
)

// PublicKey identifies an account in the simulated ledger. It is the
// 32-byte Ed25519 public key of the account, rendered as base58 in string
// form.
type PublicKey [32]byte

// ContractAddress identifies a deployed contract instance.
type ContractAddress [32]byte

// String renders the key as base58.
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// IsZero reports whether the key is the all-zero value, which the contract
// library treats as the invalid ("burn") recipient.
func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}

// ParsePublicKey decodes a base58-encoded public key.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("runtime: decode public key: %w", err)
	}
	if len(raw) != len(PublicKey{}) {
		return PublicKey{}, fmt.Errorf("runtime: public key must be %d bytes, got %d", len(PublicKey{}), len(raw))
	}
	var k PublicKey
	copy(k[:], raw)
	return k, nil
}

// PublicKeyFromSeed deterministically derives an account key from a 32-byte
// seed. The same seed always yields the same key.
func PublicKeyFromSeed(seed [32]byte) PublicKey {
	priv := ed25519.NewKeyFromSeed(seed[:])
	var k PublicKey
	copy(k[:], priv.Public().(ed25519.PublicKey))
	return k
}

// RandomPublicKey generates a fresh account key.
func RandomPublicKey() (PublicKey, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return PublicKey{}, fmt.Errorf("runtime: generate key seed: %w", err)
	}
	return PublicKeyFromSeed(seed), nil
}

// String renders the address as base58.
func (a ContractAddress) String() string {
	return base58.Encode(a[:])
}

// DeriveContractAddress computes the address of a contract deployed by the
// given key with the given nonce: sha3-256(deployer || nonce).
func DeriveContractAddress(deployer PublicKey, nonce uint64) ContractAddress {
	h := sha3.New256()
	h.Write(deployer[:])
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(nonce >> (8 * (7 - i)))
	}
	h.Write(buf[:])
	var a ContractAddress
	copy(a[:], h.Sum(nil))
	return a
}
