package types

import (
	"bytes"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	sdk "github.com/plexfi/plexlock/types"
)

func TestVerifyRewardProof(t *testing.T) {
	account1 := sdk.AccAddressFromBytes([]byte("merkle-account-1----"))
	account2 := sdk.AccAddressFromBytes([]byte("merkle-account-2----"))

	leaf1 := RewardLeaf("crv", 0, account1, sdk.NewInt(100))
	leaf2 := RewardLeaf("crv", 1, account2, sdk.NewInt(250))

	// two-leaf tree: the root hashes the sorted pair
	root := testHashPair(leaf1, leaf2)

	require.True(t, VerifyRewardProof(root, leaf1, [][]byte{leaf2}))
	require.True(t, VerifyRewardProof(root, leaf2, [][]byte{leaf1}))

	// wrong amount produces a different leaf
	bad := RewardLeaf("crv", 0, account1, sdk.NewInt(101))
	require.False(t, VerifyRewardProof(root, bad, [][]byte{leaf2}))

	// wrong proof node
	require.False(t, VerifyRewardProof(root, leaf1, [][]byte{leaf1}))

	// a single-leaf tree verifies with an empty proof
	require.True(t, VerifyRewardProof(leaf1, leaf1, nil))
}

func TestVerifyRewardProofDeeperTree(t *testing.T) {
	account := sdk.AccAddressFromBytes([]byte("merkle-account-3----"))
	leaves := make([][]byte, 4)
	for i := range leaves {
		leaves[i] = RewardLeaf("cvx", uint64(i), account, sdk.NewInt(int64(10*(i+1))))
	}

	n01 := testHashPair(leaves[0], leaves[1])
	n23 := testHashPair(leaves[2], leaves[3])
	root := testHashPair(n01, n23)

	require.True(t, VerifyRewardProof(root, leaves[2], [][]byte{leaves[3], n01}))
	require.False(t, VerifyRewardProof(root, leaves[2], [][]byte{n01, leaves[3]}))
}

func TestRewardLeafDomainSeparation(t *testing.T) {
	account := sdk.AccAddressFromBytes([]byte("merkle-account-4----"))

	a := RewardLeaf("crv", 0, account, sdk.NewInt(100))
	b := RewardLeaf("cvx", 0, account, sdk.NewInt(100))
	c := RewardLeaf("crv", 1, account, sdk.NewInt(100))
	require.False(t, bytes.Equal(a, b))
	require.False(t, bytes.Equal(a, c))
}

func testHashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return ethcrypto.Keccak256(append(append([]byte{}, a...), b...))
}
