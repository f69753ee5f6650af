// Package cert implements the certificate verification pipeline: the
// orchestrating state machine that validates a StandardCommitment against a
// Storage snapshot of on-chain operator/quorum state, resolving historical
// state at the reference block, aggregating and pairing-checking the BLS
// signature, enforcing stake security thresholds, and validating the
// Merkle inclusion proof and blob-header binding.
package cert

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bitmap"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/history"
)

// QuorumNumber identifies a quorum (0-255).
type QuorumNumber = uint8

// Version is a blob encoding version.
type Version = uint16

// RelayKey identifies a data relay.
type RelayKey = uint32

// Stake is an operator or quorum stake amount, matching the 96-bit
// precision Ethereum's StakeRegistry contract stores stakes with. Unlike
// the ABI-encoded G1Point/G2Point coordinates (which must stay *big.Int to
// match go-ethereum/accounts/abi's uint256 packer), stakes never cross the
// ABI boundary, so they use the fixed-width uint256.Int: arithmetic that
// would silently wrap in a 256-bit register is instead caught explicitly
// via SubOverflow/MulOverflow below.
type Stake = *uint256.Int

// G1Point is the wire (Solidity ABI) representation of a BN254 G1 point:
// two 256-bit big-endian integers. StandardCommitment and
// NonSignerStakesAndSignature carry points in this form; core/bn254.G1 is
// used only once a point has been decoded for arithmetic.
type G1Point struct {
	X, Y *big.Int
}

// G2Point is the wire representation of a BN254 G2 point, coordinate order
// (x.c0, x.c1, y.c0, y.c1) matching the gamma preimage convention.
type G2Point struct {
	X, Y [2]*big.Int
}

// VersionedBlobParams are the per-version blob encoding constraints stored
// by the EigenDAThresholdRegistry.
type VersionedBlobParams struct {
	MaxNumOperators uint32
	NumChunks       uint32
	CodingRate      uint8
}

// SecurityThresholds are the confirmation/adversary stake percentages
// (0..100) a certificate's quorums must satisfy.
type SecurityThresholds struct {
	ConfirmationThreshold uint8
	AdversaryThreshold    uint8
}

// Staleness carries the optional stale-stake-forbidden view of storage.
type Staleness struct {
	StaleStakesForbidden      bool
	MinWithdrawalDelayBlocks  history.BlockNumber
	QuorumUpdateBlockNumber   map[QuorumNumber]history.BlockNumber
}

// Storage is the immutable, read-only snapshot of on-chain state at the
// certificate's reference block, produced once per verification by the
// external extraction layer (outside this package's scope, see
// adapter.StorageSource).
type Storage struct {
	QuorumCount              uint8
	NextBlobVersion          Version
	VersionedBlobParams      map[Version]VersionedBlobParams
	SecurityThresholds       SecurityThresholds
	RequiredQuorumNumbers    []byte
	QuorumBitmapHistory      map[common.Hash]history.History[bitmap.Bitmap]
	ApkHistory               map[QuorumNumber]history.History[[24]byte]
	TotalStakeHistory        map[QuorumNumber]history.History[Stake]
	OperatorStakeHistory     map[common.Hash]map[QuorumNumber]history.History[Stake]
	Staleness                *Staleness
}

// BatchHeaderV2 binds a batch Merkle root to the reference block it was
// built against.
type BatchHeaderV2 struct {
	BatchRoot       common.Hash
	ReferenceBlockNumber uint32
}

// BlobHeaderV2 identifies the versioned, quorum-scoped KZG commitment for
// one blob within a batch.
type BlobHeaderV2 struct {
	Version            Version
	QuorumNumbers      []byte
	Commitment         G1Point
	CommitmentLength   uint32
	PaymentHeaderHash  common.Hash
}

// BlobCertificate binds a blob header to the relays holding it and the
// signature field carried through the batch.
type BlobCertificate struct {
	BlobHeader BlobHeaderV2
	Signature  []byte
	RelayKeys  []RelayKey
}

// BlobInclusionInfo is the blob's position and Merkle sibling path within
// the batch root.
type BlobInclusionInfo struct {
	BlobIndex    uint32
	SiblingPath  []common.Hash
}

// NonSignerStakesAndSignature carries the aggregated signing-set data a
// certificate submits for verification: the declared non-signers, the
// per-quorum aggregate public keys and history indices, and the aggregate
// signature itself.
type NonSignerStakesAndSignature struct {
	NonSignerPubkeys               []G1Point
	NonSignerQuorumBitmapIndices   []uint32
	QuorumApks                     []G1Point
	ApkG2                          G2Point
	Sigma                          G1Point
	QuorumApkIndices               []uint32
	TotalStakeIndices              []uint32
	NonSignerStakeIndices          [][]uint32
}

// StandardCommitment is the EigenDA data-availability certificate: a batch
// header, blob certificate, Merkle inclusion proof, and the BLS
// non-signer/signature bundle, plus the quorum set and KZG commitment the
// blob was dispersed against.
type StandardCommitment struct {
	BatchHeader                 BatchHeaderV2
	BlobCertificate              BlobCertificate
	BlobInclusionInfo            BlobInclusionInfo
	NonSignerStakesAndSignature NonSignerStakesAndSignature
	Version                      Version
	QuorumNumbers                []byte
	Commitment                   G1Point
	CommitmentLength             uint32
}
