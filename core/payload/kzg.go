package payload

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/srs"
)

// VerifyBlob checks that encoded, interpreted as a sequence of Fr
// coefficients, commits to commitmentPoint under the SRS s. The SRS is
// supplied by the caller (see srs.Load); none is embedded in the binary. It
// does not decode or otherwise validate the payload framing; callers that
// need the decoded payload should also call Decode.
func VerifyBlob(commitmentPoint bn254.G1, commitmentLength uint32, encoded []byte, s *srs.SRS) error {
	if commitmentLength == 0 || commitmentLength&(commitmentLength-1) != 0 {
		return ErrCommitmentLengthNotPowerOfTwo
	}

	numElements := len(encoded) / elementSize
	if uint32(numElements) > commitmentLength {
		return ErrBlobLargerThanCommitmentLength
	}

	coeffs := make([]fr.Element, commitmentLength)
	for i := 0; i < numElements; i++ {
		coeffs[bitReverse(uint32(i), commitmentLength)].SetBytes(encoded[i*elementSize : (i+1)*elementSize])
	}
	// Remaining coefficients stay at their zero value, matching the
	// right-pad-with-zeros step of the on-chain convention.

	computed, err := s.Commit(coeffs)
	if err != nil {
		return err
	}
	if !computed.Equal(&commitmentPoint) {
		return ErrInvalidKzgCommitment
	}
	return nil
}

// bitReverse maps index i into its bit-reversed position within a domain of
// size n (a power of two), matching the evaluation-order convention the
// on-chain KZG verifier uses when committing blob coefficients.
func bitReverse(i, n uint32) uint32 {
	bits := 0
	for t := n; t > 1; t >>= 1 {
		bits++
	}
	var r uint32
	for b := 0; b < bits; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}
