package types

import (
	"bytes"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	sdk "github.com/plexfi/plexlock/types"
)

// RewardLeaf hashes one reward entitlement into a merkle leaf:
// keccak256(index ‖ account ‖ amount ‖ token).
func RewardLeaf(token sdk.Symbol, index uint64, account sdk.AccAddress, amount sdk.Int) []byte {
	var buf bytes.Buffer
	buf.Write(sdk.Uint64ToBigEndian(index))
	buf.Write(account.Bytes())
	buf.Write(amount.BigInt().Bytes())
	buf.WriteString(token.String())
	return ethcrypto.Keccak256(buf.Bytes())
}

// VerifyRewardProof walks proof from leaf to root with sorted-pair hashing.
func VerifyRewardProof(root []byte, leaf []byte, proof [][]byte) bool {
	computed := leaf
	for _, node := range proof {
		computed = hashPair(computed, node)
	}
	return bytes.Equal(computed, root)
}

func hashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return ethcrypto.Keccak256(append(append([]byte{}, a...), b...))
}
