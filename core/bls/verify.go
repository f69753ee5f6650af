package bls

import (
	"math/big"

	gnarkbn254 "github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
)

// Verify checks the aggregate BLS signature sigma over msgHash against the
// aggregate public key (apkG1, apkG2), per
//
//	e(sigma + gamma*apkG1, -G2) * e(H(msgHash) + gamma*G1, apkG2) == 1
//
// where gamma = Keccak(msgHash || apkG1 || apkG2 || sigma) mod r. The
// gamma-randomization binds all four points into the check so an adversary
// cannot substitute a forged (sigma, apkG2) that individually satisfies an
// unrandomized pairing.
//
// Any of apkG1, apkG2, sigma being the point at infinity is rejected.
func Verify(msgHash bn254.BeHash, apkG1 bn254.G1, apkG2 bn254.G2, sigma bn254.G1) bool {
	if apkG1.IsInfinity() || apkG2.IsInfinity() || sigma.IsInfinity() {
		return false
	}

	gamma := ComputeGamma(msgHash, apkG1, apkG2, sigma)
	gammaInt := new(big.Int)
	gamma.BigInt(gammaInt)

	msgPoint, err := bn254.HashToPoint(msgHash)
	if err != nil {
		return false
	}

	var gammaApkG1, a1 bn254.G1
	gammaApkG1.ScalarMultiplication(&apkG1, gammaInt)
	a1.Add(&sigma, &gammaApkG1)

	g2Gen := bn254.G2Generator()
	var a2 bn254.G2
	a2.Neg(&g2Gen)

	g1Gen := bn254.G1Generator()
	var gammaG1Gen, b1 bn254.G1
	gammaG1Gen.ScalarMultiplication(&g1Gen, gammaInt)
	b1.Add(&msgPoint, &gammaG1Gen)

	b2 := apkG2

	result, err := gnarkbn254.Pair([]gnarkbn254.G1Affine{a1, b1}, []gnarkbn254.G2Affine{a2, b2})
	if err != nil {
		return false
	}
	return result.IsOne()
}

// ComputeGamma derives the Fiat-Shamir randomizer used by Verify:
//
//	gamma = Keccak(msgHash || apkG1.x || apkG1.y ||
//	               apkG2.x.c0 || apkG2.x.c1 || apkG2.y.c0 || apkG2.y.c1 ||
//	               sigma.x || sigma.y) mod r
func ComputeGamma(msgHash bn254.BeHash, apkG1 bn254.G1, apkG2 bn254.G2, sigma bn254.G1) bn254.Fr {
	apkG1X := apkG1.X.Bytes()
	apkG1Y := apkG1.Y.Bytes()
	apkG2XC0 := apkG2.X.A0.Bytes()
	apkG2XC1 := apkG2.X.A1.Bytes()
	apkG2YC0 := apkG2.Y.A0.Bytes()
	apkG2YC1 := apkG2.Y.A1.Bytes()
	sigmaX := sigma.X.Bytes()
	sigmaY := sigma.Y.Bytes()

	h := bn254.Keccak256(
		msgHash[:],
		apkG1X[:], apkG1Y[:],
		apkG2XC0[:], apkG2XC1[:], apkG2YC0[:], apkG2YC1[:],
		sigmaX[:], sigmaY[:],
	)

	var gamma bn254.Fr
	gamma.SetBytes(h[:])
	return gamma
}
