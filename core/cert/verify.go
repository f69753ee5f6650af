package cert

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bitmap"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/bls"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
)

// VerifyInput bundles everything Verify needs: the certificate, the
// on-chain state snapshot it is checked against, and the caller's view of
// the current block and recency window for the freshness check (step 1-2
// of the pipeline).
type VerifyInput struct {
	Commitment    *StandardCommitment
	Storage       *Storage
	CurrentBlock  uint64
	RecencyWindow uint64
}

// Verify runs the 11-step certificate verification pipeline described in
// SPEC_FULL.md §8.5 / spec.md §4.6: recency, temporal ordering, input shape
// validation, blob version, bitmap resolution, non-signer ordering,
// per-quorum historical state resolution, BLS aggregation and pairing
// verification, security threshold enforcement, blob-quorum containment,
// and Merkle inclusion. Returns the first violated invariant, or nil if
// every check passes.
func Verify(in VerifyInput) error {
	c, s := in.Commitment, in.Storage
	nsss := c.NonSignerStakesAndSignature

	if err := VerifyRecency(in.CurrentBlock, uint64(c.BatchHeader.ReferenceBlockNumber), in.RecencyWindow); err != nil {
		return err
	}

	if err := verifyShape(c, nsss); err != nil {
		return err
	}

	if err := verifyBlobVersion(c, s); err != nil {
		return err
	}

	if err := verifyRequiredQuorumsSubset(s.RequiredQuorumNumbers, c.BlobCertificate.BlobHeader.QuorumNumbers); err != nil {
		return err
	}

	if _, err := resolveSignedQuorumBitmap(c, s); err != nil {
		return err
	}

	nonSigners, err := resolveNonSigners(c, s)
	if err != nil {
		return err
	}

	quorums, totalStakes, signedStakes, err := resolvePerQuorumState(c, s, nonSigners)
	if err != nil {
		return err
	}

	apkG1, err := bls.Aggregate(nonSigners, quorums)
	if err != nil {
		return err
	}

	batchHeaderHash, err := hashBatchHeader(c.BatchHeader)
	if err != nil {
		return err
	}
	if !bls.Verify(bn254.BeHash(batchHeaderHash), apkG1, nsss.ApkG2.ToG2(), nsss.Sigma.ToG1()) {
		return ErrSignatureVerificationFailed
	}

	if err := verifySecurityThresholds(c, s, totalStakes, signedStakes); err != nil {
		return err
	}

	if err := verifyBlobQuorumContainment(c); err != nil {
		return err
	}

	return verifyInclusion(c, s)
}

func verifyBlobVersion(c *StandardCommitment, s *Storage) error {
	if c.Version >= s.NextBlobVersion {
		return ErrInvalidBlobVersion
	}
	return nil
}

func verifyShape(c *StandardCommitment, nsss NonSignerStakesAndSignature) error {
	n := len(c.QuorumNumbers)
	if n == 0 {
		return ErrEmptyBlobQuorums
	}
	if len(nsss.QuorumApks) != n || len(nsss.QuorumApkIndices) != n ||
		len(nsss.TotalStakeIndices) != n || len(nsss.NonSignerStakeIndices) != n {
		return ErrUnequalLengths
	}
	if len(nsss.NonSignerPubkeys) != len(nsss.NonSignerQuorumBitmapIndices) {
		return ErrUnequalLengths
	}
	return nil
}

func resolveSignedQuorumBitmap(c *StandardCommitment, s *Storage) (bitmap.Bitmap, error) {
	bound := s.QuorumCount
	return bitmap.BitIndicesToBitmap(c.QuorumNumbers, &bound)
}

// verifyRequiredQuorumsSubset checks required_blob_quorums ⊆ blob_quorum_numbers:
// every quorum storage requires a certificate to cover must be one the blob
// itself was dispersed against. This is the first link in the
// required ⊆ blob ⊆ confirmed chain; verifyBlobQuorumContainment checks the
// second link (blob_quorum_numbers ⊆ confirmed_quorums).
func verifyRequiredQuorumsSubset(required, blobQuorums []byte) error {
	for _, qn := range required {
		if !contains(blobQuorums, qn) {
			return ErrBlobQuorumsDoNotContainRequiredQuorums
		}
	}
	return nil
}

func resolveNonSigners(c *StandardCommitment, s *Storage) ([]bls.NonSigner, error) {
	nsss := c.NonSignerStakesAndSignature
	referenceBlock := c.BatchHeader.ReferenceBlockNumber

	hashes := make([][32]byte, len(nsss.NonSignerPubkeys))
	nonSigners := make([]bls.NonSigner, len(nsss.NonSignerPubkeys))
	for i, pk := range nsss.NonSignerPubkeys {
		pkHashBe := pk.PointToHash()
		pkHash := common.Hash(pkHashBe)
		hashes[i] = pkHashBe

		hist, ok := s.QuorumBitmapHistory[pkHash]
		if !ok {
			return nil, ErrMissingSignerEntry
		}
		update, err := hist.TryGetAt(nsss.NonSignerQuorumBitmapIndices[i])
		if err != nil {
			return nil, err
		}
		bm, err := update.TryGetAgainst(referenceBlock)
		if err != nil {
			return nil, err
		}

		nonSigners[i] = bls.NonSigner{
			Pk:                pk.ToG1(),
			PkHash:            pkHash,
			QuorumBitmapAtRef: bm,
		}
	}

	if err := bls.VerifyNonSignerOrdering(hashes); err != nil {
		return nil, ErrNotStrictlySortedByHash
	}
	return nonSigners, nil
}

func resolvePerQuorumState(
	c *StandardCommitment,
	s *Storage,
	nonSigners []bls.NonSigner,
) (quorums []bls.Quorum, totalStakes, signedStakes map[QuorumNumber]Stake, err error) {
	referenceBlock := c.BatchHeader.ReferenceBlockNumber
	nsss := c.NonSignerStakesAndSignature

	totalStakes = make(map[QuorumNumber]Stake)
	signedStakes = make(map[QuorumNumber]Stake)
	quorums = make([]bls.Quorum, len(c.QuorumNumbers))

	for i, qn := range c.QuorumNumbers {
		apkHist, ok := s.ApkHistory[qn]
		if !ok {
			return nil, nil, nil, ErrMissingQuorumEntry
		}
		apkUpdate, err := apkHist.TryGetAt(nsss.QuorumApkIndices[i])
		if err != nil {
			return nil, nil, nil, err
		}
		storageApkTrunc, err := apkUpdate.TryGetAgainst(referenceBlock)
		if err != nil {
			return nil, nil, nil, err
		}

		certApkTrunc := nsss.QuorumApks[i].TruncHash()
		if certApkTrunc != storageApkTrunc {
			return nil, nil, nil, ErrCertApkDoesNotEqualStorageApk
		}

		stakeHist, ok := s.TotalStakeHistory[qn]
		if !ok {
			return nil, nil, nil, ErrMissingQuorumEntry
		}
		stakeUpdate, err := stakeHist.TryGetAt(nsss.TotalStakeIndices[i])
		if err != nil {
			return nil, nil, nil, err
		}
		totalStake, err := stakeUpdate.TryGetAgainst(referenceBlock)
		if err != nil {
			return nil, nil, nil, err
		}

		signedStake := new(uint256.Int).Set(totalStake)
		nonSignerIdx := 0
		for _, ns := range nonSigners {
			if !ns.QuorumBitmapAtRef.IsSet(qn) {
				continue
			}
			opHist, ok := s.OperatorStakeHistory[ns.PkHash]
			if !ok {
				return nil, nil, nil, ErrMissingSignerEntry
			}
			quorumHist, ok := opHist[qn]
			if !ok {
				return nil, nil, nil, ErrMissingSignerEntry
			}
			if nonSignerIdx >= len(nsss.NonSignerStakeIndices[i]) {
				return nil, nil, nil, ErrMissingSignerEntry
			}
			update, err := quorumHist.TryGetAt(nsss.NonSignerStakeIndices[i][nonSignerIdx])
			if err != nil {
				return nil, nil, nil, err
			}
			nonSignerStake, err := update.TryGetAgainst(referenceBlock)
			if err != nil {
				return nil, nil, nil, err
			}
			nonSignerIdx++

			if _, overflow := signedStake.SubOverflow(signedStake, nonSignerStake); overflow {
				return nil, nil, nil, ErrUnderflow
			}
		}

		if s.Staleness != nil && s.Staleness.StaleStakesForbidden {
			updatedAt, ok := s.Staleness.QuorumUpdateBlockNumber[qn]
			if !ok {
				return nil, nil, nil, ErrMissingQuorumEntry
			}
			if updatedAt+s.Staleness.MinWithdrawalDelayBlocks <= referenceBlock {
				return nil, nil, nil, ErrStaleQuorum
			}
		}

		totalStakes[qn] = totalStake
		signedStakes[qn] = signedStake
		quorums[i] = bls.Quorum{Number: qn, Apk: nsss.QuorumApks[i].ToG1()}
	}

	return quorums, totalStakes, signedStakes, nil
}

func verifySecurityThresholds(c *StandardCommitment, s *Storage, totalStakes, signedStakes map[QuorumNumber]Stake) error {
	th := s.SecurityThresholds
	if th.ConfirmationThreshold <= th.AdversaryThreshold {
		return ErrConfirmationThresholdLessThanOrEqualToAdversaryThreshold
	}

	hundred := uint256.NewInt(100)
	confirmationThreshold := uint256.NewInt(uint64(th.ConfirmationThreshold))
	for _, qn := range c.QuorumNumbers {
		total, ok := totalStakes[qn]
		if !ok {
			return ErrMissingQuorumEntry
		}
		signed := signedStakes[qn]

		lhs, overflow := new(uint256.Int).MulOverflow(signed, hundred)
		if overflow {
			return ErrOverflow
		}
		rhs, overflow := new(uint256.Int).MulOverflow(total, confirmationThreshold)
		if overflow {
			return ErrOverflow
		}
		if lhs.Cmp(rhs) < 0 {
			return ErrUnmetSecurityAssumptions
		}
	}
	return nil
}

func verifyBlobQuorumContainment(c *StandardCommitment) error {
	blobQuorums := c.BlobCertificate.BlobHeader.QuorumNumbers
	for _, qn := range blobQuorums {
		if !contains(c.QuorumNumbers, qn) {
			return ErrConfirmedQuorumsDoNotContainBlobQuorums
		}
	}
	return nil
}

func contains(sorted []byte, v byte) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v })
	return i < len(sorted) && sorted[i] == v
}

func verifyInclusion(c *StandardCommitment, s *Storage) error {
	leaf, err := hashBlobCertificate(c.BlobCertificate)
	if err != nil {
		return err
	}

	siblingPathLen := len(c.BlobInclusionInfo.SiblingPath)

	params, ok := s.VersionedBlobParams[c.Version]
	if !ok {
		return ErrMissingVersionEntry
	}
	numChunksLog2 := log2Exact(params.NumChunks)
	if numChunksLog2 < 0 {
		return ErrMerkleProofLengthNotMultipleOf32Bytes
	}
	if siblingPathLen != numChunksLog2 {
		return ErrMerkleProofPathTooShort
	}

	return verifyMerkleInclusion(
		leaf,
		c.BlobInclusionInfo.BlobIndex,
		c.BlobInclusionInfo.SiblingPath,
		c.BatchHeader.BatchRoot,
		numChunksLog2,
	)
}
