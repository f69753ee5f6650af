// Package bn254 provides the BN254 field/curve primitives the rest of the
// verification core is built on: G1/G2 affine points, the scalar field Fr,
// and the Keccak-256 based hashing conventions the on-chain contracts use.
//
// Curve and pairing arithmetic is delegated entirely to gnark-crypto; this
// package only adds the EigenDA-specific encoding and hashing conventions
// layered on top of it.
package bn254

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// G1 is an affine point on BN254 over the base field Fq.
type G1 = bn254.G1Affine

// G2 is an affine point on the BN254 twist, over Fq2.
type G2 = bn254.G2Affine

// Fr is the BN254 scalar field, used for the gamma randomizer in the BLS
// pairing check.
type Fr = fr.Element

// BeHash is a 32-byte big-endian Keccak-256 digest.
type BeHash [32]byte

// TruncHash is the first 24 bytes of a BeHash, used for on-chain APK-hash
// storage compatibility (contracts store bytes24, not the full digest).
type TruncHash [24]byte

// Trunc truncates a BeHash to its first 24 bytes.
func Trunc(h BeHash) TruncHash {
	var t TruncHash
	copy(t[:], h[:24])
	return t
}

// G1Generator returns the canonical BN254 G1 generator.
func G1Generator() G1 {
	_, _, g1, _ := bn254.Generators()
	return g1
}

// G2Generator returns the canonical BN254 G2 generator.
func G2Generator() G2 {
	_, _, _, g2 := bn254.Generators()
	return g2
}
