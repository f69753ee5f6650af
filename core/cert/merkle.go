package cert

import (
	"math/bits"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
)

// verifyMerkleInclusion walks the sibling path pairing leaf with each
// sibling as left/right according to the corresponding bit of index,
// hashing keccak(left||right) at each step, and checks the final hash
// against root. The sibling path length must equal numChunksLog2
// (log2 of the batch's VersionedBlobParams.NumChunks for the certificate's
// blob version).
func verifyMerkleInclusion(leaf common.Hash, index uint32, siblingPath []common.Hash, root common.Hash, numChunksLog2 int) error {
	if len(siblingPath) != numChunksLog2 {
		return ErrMerkleProofPathTooShort
	}

	current := leaf
	for i, sibling := range siblingPath {
		bitSet := (index>>uint(i))&1 == 1
		var left, right common.Hash
		if bitSet {
			left, right = sibling, current
		} else {
			left, right = current, sibling
		}
		current = common.BytesToHash(bn254.Keccak256(left[:], right[:])[:])
	}

	if current != root {
		return ErrLeafNodeDoesNotBelongToMerkleTree
	}
	return nil
}

// log2Exact returns log2(n) for a power-of-two n, or -1 if n is not a
// power of two (including n == 0).
func log2Exact(n uint32) int {
	if n == 0 || n&(n-1) != 0 {
		return -1
	}
	return bits.TrailingZeros32(n)
}
