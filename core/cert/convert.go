package cert

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
)

// ToG1 converts the wire (big.Int) representation of a G1 point into the
// curve-arithmetic representation used by core/bn254 and core/bls. A
// (0, 0) point decodes to the point at infinity, matching the on-chain
// convention.
func (p G1Point) ToG1() bn254.G1 {
	var x, y fp.Element
	x.SetBigInt(p.X)
	y.SetBigInt(p.Y)
	return bn254.G1{X: x, Y: y}
}

// ToG2 converts the wire representation of a G2 point, with coordinate
// order (x.c0, x.c1, y.c0, y.c1), into the curve-arithmetic representation.
func (p G2Point) ToG2() bn254.G2 {
	var g bn254.G2
	g.X.A0.SetBigInt(p.X[0])
	g.X.A1.SetBigInt(p.X[1])
	g.Y.A0.SetBigInt(p.Y[0])
	g.Y.A1.SetBigInt(p.Y[1])
	return g
}

// PointToHash computes the Keccak256(x||y) hash of a wire-format G1 point,
// matching core/bn254.PointToHash applied to its decoded form.
func (p G1Point) PointToHash() bn254.BeHash {
	return bn254.PointToHash(p.ToG1())
}

// TruncHash truncates a wire-format G1 point's PointToHash to 24 bytes, the
// on-chain apkHash storage convention.
func (p G1Point) TruncHash() [24]byte {
	return bn254.Trunc(p.PointToHash())
}
