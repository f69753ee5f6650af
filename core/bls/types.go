// Package bls implements BN254 BLS signature aggregation and pairing
// verification for EigenDA quorums: computing the aggregate signer public
// key per quorum (the on-chain APK minus declared non-signer contributions)
// and verifying the resulting aggregate signature via a randomized pairing
// check.
package bls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bitmap"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
)

// QuorumNumber identifies a quorum (0-255).
type QuorumNumber = uint8

// Quorum is the aggregate public key and quorum number for one signed
// quorum in a certificate, prior to non-signer subtraction.
type Quorum struct {
	Number QuorumNumber
	Apk    bn254.G1
}

// NonSigner is an operator who was registered in a quorum at the reference
// block but did not sign the batch.
type NonSigner struct {
	Pk                bn254.G1
	PkHash            common.Hash
	QuorumBitmapAtRef bitmap.Bitmap
}
