package nonfungible

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compactkit/compactkit/pkg/runtime"
	"github.com/compactkit/compactkit/pkg/simulator"
)

const accountsMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

var testMeta = Metadata{Name: "Night Owls", Symbol: "OWL", BaseURI: "https://owls.example/"}

func setup(t *testing.T) (*Simulator, []runtime.PublicKey) {
	t.Helper()
	accts, err := simulator.AccountsFromMnemonic(accountsMnemonic, 4)
	require.NoError(t, err)

	sim, err := NewSimulator(accts[0], testMeta)
	require.NoError(t, err)
	return sim, accts
}

func id(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func TestMetadataAndTokenURI(t *testing.T) {
	sim, accts := setup(t)

	name, err := sim.Name()
	require.NoError(t, err)
	assert.Equal(t, "Night Owls", name)

	symbol, err := sim.Symbol()
	require.NoError(t, err)
	assert.Equal(t, "OWL", symbol)

	_, err = sim.TokenURI(id(7))
	assert.ErrorIs(t, err, ErrNonexistentToken)

	require.NoError(t, sim.Mint(accts[1], id(7)))
	uri, err := sim.TokenURI(id(7))
	require.NoError(t, err)
	assert.Equal(t, "https://owls.example/7", uri)
}

func TestMintAndOwnership(t *testing.T) {
	sim, accts := setup(t)
	alice := accts[1]

	require.NoError(t, sim.Mint(alice, id(1)))

	owner, err := sim.OwnerOf(id(1))
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	bal, err := sim.BalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(1), bal)

	err = sim.Mint(alice, id(1))
	assert.ErrorIs(t, err, ErrAlreadyMinted)

	err = sim.Mint(runtime.PublicKey{}, id(2))
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestTransferFrom_ByOwner(t *testing.T) {
	sim, accts := setup(t)
	owner, alice, bob := accts[0], accts[1], accts[2]

	require.NoError(t, sim.Mint(owner, id(5)))
	require.NoError(t, sim.TransferFrom(owner, alice, id(5)))

	got, err := sim.OwnerOf(id(5))
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	// Previous owner is no longer authorized.
	err = sim.TransferFrom(alice, bob, id(5))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransferFrom_Reverts(t *testing.T) {
	sim, accts := setup(t)
	owner, alice := accts[0], accts[1]

	require.NoError(t, sim.Mint(owner, id(5)))

	err := sim.TransferFrom(owner, runtime.PublicKey{}, id(5))
	assert.ErrorIs(t, err, ErrInvalidRecipient)

	err = sim.TransferFrom(owner, alice, id(6))
	assert.ErrorIs(t, err, ErrNonexistentToken)

	// from must be the actual owner even when the caller is authorized.
	err = sim.TransferFrom(alice, alice, id(5))
	assert.ErrorIs(t, err, ErrIncorrectOwner)
}

func TestApprove_SingleToken(t *testing.T) {
	sim, accts := setup(t)
	owner, spender, dest := accts[0], accts[1], accts[2]

	require.NoError(t, sim.Mint(owner, id(9)))

	// Only the owner (or an operator) may approve.
	sim.SetCaller(&spender)
	err := sim.Approve(spender, id(9))
	assert.ErrorIs(t, err, ErrUnauthorized)

	sim.SetCaller(nil)
	require.NoError(t, sim.Approve(spender, id(9)))

	approved, err := sim.GetApproved(id(9))
	require.NoError(t, err)
	assert.Equal(t, spender, approved)

	// The approved key can move the token; the approval is consumed.
	sim.SetCaller(&spender)
	require.NoError(t, sim.TransferFrom(owner, dest, id(9)))

	approved, err = sim.GetApproved(id(9))
	require.NoError(t, err)
	assert.True(t, approved.IsZero(), "transfer must clear the token approval")
}

func TestSetApprovalForAll(t *testing.T) {
	sim, accts := setup(t)
	owner, operator, dest := accts[0], accts[1], accts[2]

	require.NoError(t, sim.Mint(owner, id(1)))
	require.NoError(t, sim.Mint(owner, id(2)))

	err := sim.SetApprovalForAll(runtime.PublicKey{}, true)
	assert.ErrorIs(t, err, ErrInvalidOperator)

	require.NoError(t, sim.SetApprovalForAll(operator, true))
	ok, err := sim.IsApprovedForAll(owner, operator)
	require.NoError(t, err)
	assert.True(t, ok)

	sim.SetCaller(&operator)
	require.NoError(t, sim.TransferFrom(owner, dest, id(1)))
	require.NoError(t, sim.TransferFrom(owner, dest, id(2)))

	sim.SetCaller(nil)
	require.NoError(t, sim.SetApprovalForAll(operator, false))
	ok, err = sim.IsApprovedForAll(owner, operator)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBurn(t *testing.T) {
	sim, accts := setup(t)
	owner, mallory := accts[0], accts[1]

	require.NoError(t, sim.Mint(owner, id(3)))

	sim.SetCaller(&mallory)
	err := sim.Burn(id(3))
	assert.ErrorIs(t, err, ErrUnauthorized)

	sim.SetCaller(nil)
	require.NoError(t, sim.Burn(id(3)))

	_, err = sim.OwnerOf(id(3))
	assert.ErrorIs(t, err, ErrNonexistentToken)

	bal, err := sim.BalanceOf(owner)
	require.NoError(t, err)
	assert.True(t, bal.IsZero())

	err = sim.Burn(id(3))
	assert.ErrorIs(t, err, ErrNonexistentToken)
}
