package bls

import (
	"errors"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
)

// ErrNotStrictlySortedByHash is returned by VerifyNonSignerOrdering when the non-signer
// set is not strictly sorted by Keccak(pk.x||pk.y). This prevents both
// duplicate non-signer entries and replay of a non-signer's contribution.
var ErrNotStrictlySortedByHash = errors.New("bls: non-signers not strictly sorted by pubkey hash")

// Aggregate computes the aggregate signer public key across all signed
// quorums: for each quorum, start from the certificate's claimed aggregate
// public key for that quorum and subtract the G1 public key of every
// non-signer whose reference-block quorum bitmap has that quorum's bit set.
// The total is the sum across quorums, so an operator belonging to multiple
// signed quorums is subtracted once per quorum it belongs to, mirroring the
// on-chain APK construction (which double-counts multi-quorum operators).
//
// nonSigners must already be strictly sorted by Keccak(pk.x||pk.y); callers
// are expected to have validated this via VerifyNonSignerOrdering before
// calling Aggregate.
func Aggregate(nonSigners []NonSigner, quorums []Quorum) (bn254.G1, error) {
	var total bn254.G1
	total.X.SetZero()
	total.Y.SetZero()

	for _, q := range quorums {
		apk := q.Apk
		for _, ns := range nonSigners {
			if !ns.QuorumBitmapAtRef.IsSet(q.Number) {
				continue
			}
			var neg bn254.G1
			neg.Neg(&ns.Pk)
			apk.Add(&apk, &neg)
		}
		total.Add(&total, &apk)
	}
	return total, nil
}

// VerifyNonSignerOrdering validates that the supplied pubkey-hash sequence
// is strictly increasing, as required by the non-signer ordering rule in
// Aggregate's contract.
func VerifyNonSignerOrdering(hashes [][32]byte) error {
	for i := 1; i < len(hashes); i++ {
		if lexCompare(hashes[i-1][:], hashes[i][:]) >= 0 {
			return ErrNotStrictlySortedByHash
		}
	}
	return nil
}

func lexCompare(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
