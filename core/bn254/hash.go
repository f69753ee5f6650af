package bn254

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"golang.org/x/crypto/sha3"
)

// maxHashToPointIterations bounds the try-and-increment loop in HashToPoint.
// Exactly half of the non-zero elements of Fq satisfy y^2 = x^3 + 3, so in
// practice only a handful of iterations are ever needed; this cap exists so
// the core fails closed rather than looping forever on pathological input.
const maxHashToPointIterations = 256

// ErrHashToPointExhausted is returned if HashToPoint doesn't find a point on
// the curve within maxHashToPointIterations tries. This should never happen
// for real inputs; its presence is a defensive bound, not an expected path.
var ErrHashToPointExhausted = errors.New("bn254: hash-to-point exceeded iteration cap")

// Keccak256 hashes the concatenation of inputs with Keccak-256.
func Keccak256(inputs ...[]byte) BeHash {
	h := sha3.NewLegacyKeccak256()
	for _, in := range inputs {
		h.Write(in)
	}
	var out BeHash
	copy(out[:], h.Sum(nil))
	return out
}

// Keccak256Many hashes the concatenation of values with Keccak-256; it is
// the same operation as Keccak256, which also streams each fragment into
// the hasher without concatenating them first.
func Keccak256Many(values ...[]byte) BeHash {
	return Keccak256(values...)
}

// PointToHash computes Keccak256(x || y) over the big-endian 32-byte limbs
// of an affine G1 point. The point at infinity is treated as (0, 0), matching
// the on-chain convention used by the registry contracts.
func PointToHash(p G1) BeHash {
	if p.IsInfinity() {
		var zero [32]byte
		return Keccak256(zero[:], zero[:])
	}
	xBytes := p.X.Bytes()
	yBytes := p.Y.Bytes()
	return Keccak256(xBytes[:], yBytes[:])
}

// HashToPoint implements try-and-increment hash-to-curve: interpret h as a
// big-endian Fq element x, and increment x until x^3+3 is a quadratic
// residue, returning (x, sqrt(x^3+3)). Deterministic and terminates in a
// small, statistically bounded number of iterations.
func HashToPoint(h BeHash) (G1, error) {
	var x fp.Element
	x.SetBytes(h[:])

	var three fp.Element
	three.SetUint64(3)

	for i := 0; i < maxHashToPointIterations; i++ {
		var x3 fp.Element
		x3.Square(&x).Mul(&x3, &x).Add(&x3, &three)

		var y fp.Element
		if y.Sqrt(&x3) != nil {
			return G1{X: x, Y: y}, nil
		}
		x.Add(&x, new(fp.Element).SetOne())
	}
	return G1{}, ErrHashToPointExhausted
}

// FqToBytesBE returns the big-endian 32-byte encoding of a base-field
// element, exported for callers that need the raw limb bytes rather than a
// full point hash.
func FqToBytesBE(x *fp.Element) [32]byte {
	return x.Bytes()
}
