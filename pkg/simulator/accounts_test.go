package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fixed valid BIP-39 mnemonic for deterministic account tests.
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestAccountsFromMnemonic_Deterministic(t *testing.T) {
	first, err := AccountsFromMnemonic(testMnemonic, 4)
	require.NoError(t, err)
	require.Len(t, first, 4)

	second, err := AccountsFromMnemonic(testMnemonic, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same mnemonic must derive the same accounts")

	seen := map[string]bool{}
	for _, k := range first {
		assert.False(t, k.IsZero())
		assert.False(t, seen[k.String()], "accounts must be distinct")
		seen[k.String()] = true
	}
}

func TestAccountsFromMnemonic_RejectsInvalidInput(t *testing.T) {
	_, err := AccountsFromMnemonic("definitely not a mnemonic", 2)
	assert.ErrorIs(t, err, ErrInvalidMnemonic)

	_, err = AccountsFromMnemonic(testMnemonic, 0)
	assert.Error(t, err, "zero accounts should be rejected")
}

func TestNewMnemonic_ProducesUsableAccounts(t *testing.T) {
	mnemonic, err := NewMnemonic()
	require.NoError(t, err)

	keys, err := AccountsFromMnemonic(mnemonic, 1)
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}
