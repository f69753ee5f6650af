package cert

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
)

var (
	typeUint16, _       = abi.NewType("uint16", "", nil)
	typeUint32, _       = abi.NewType("uint32", "", nil)
	typeUint32Arr, _    = abi.NewType("uint32[]", "", nil)
	typeBytes, _        = abi.NewType("bytes", "", nil)
	typeBytes32, _      = abi.NewType("bytes32", "", nil)
	typeUint256, _      = abi.NewType("uint256", "", nil)
	typeG1PointTuple, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "X", Type: "uint256"},
		{Name: "Y", Type: "uint256"},
	})
)

func keccak(b []byte) common.Hash {
	return common.BytesToHash(bn254.Keccak256(b)[:])
}

// g1PointTupleValue converts a G1Point into the value go-ethereum's abi
// packer expects for a Solidity (uint256,uint256) tuple, mirroring the
// BlobHeaderV2.commitment field.
func g1PointTupleValue(p G1Point) struct {
	X *big.Int
	Y *big.Int
} {
	return struct {
		X *big.Int
		Y *big.Int
	}{X: p.X, Y: p.Y}
}

// hashBatchHeader computes keccak256(abi.encode(batchRoot, referenceBlockNumber)),
// matching BatchHeaderV2.hash_ext in the original implementation.
func hashBatchHeader(h BatchHeaderV2) (common.Hash, error) {
	args := abi.Arguments{{Type: typeBytes32}, {Type: typeUint32}}
	packed, err := args.Pack(h.BatchRoot, h.ReferenceBlockNumber)
	if err != nil {
		return common.Hash{}, err
	}
	return keccak(packed), nil
}

// hashBlobHeader computes the two-stage struct hash of a BlobHeaderV2:
// first keccak256(abi.encode(version, quorumNumbers, commitment)), then
// keccak256(abi.encode(that hash, paymentHeaderHash)).
func hashBlobHeader(h BlobHeaderV2) (common.Hash, error) {
	innerArgs := abi.Arguments{{Type: typeUint16}, {Type: typeBytes}, {Type: typeG1PointTuple}}
	innerPacked, err := innerArgs.Pack(h.Version, h.QuorumNumbers, g1PointTupleValue(h.Commitment))
	if err != nil {
		return common.Hash{}, err
	}
	inner := keccak(innerPacked)

	outerArgs := abi.Arguments{{Type: typeBytes32}, {Type: typeBytes32}}
	outerPacked, err := outerArgs.Pack(inner, h.PaymentHeaderHash)
	if err != nil {
		return common.Hash{}, err
	}
	return keccak(outerPacked), nil
}

// hashBlobCertificate computes the Merkle leaf hash for a BlobCertificate:
// keccak256(abi.encode(blobHeaderHash, signature, relayKeys)).
func hashBlobCertificate(c BlobCertificate) (common.Hash, error) {
	blobHeaderHash, err := hashBlobHeader(c.BlobHeader)
	if err != nil {
		return common.Hash{}, err
	}

	args := abi.Arguments{{Type: typeBytes32}, {Type: typeBytes}, {Type: typeUint32Arr}}
	packed, err := args.Pack(blobHeaderHash, c.Signature, c.RelayKeys)
	if err != nil {
		return common.Hash{}, err
	}
	return keccak(packed), nil
}
