package cert

import "errors"

// The certificate-level verification errors. Each value is a distinct,
// comparable sentinel so callers can pattern match with errors.Is.
// Verification has no partial success: it returns nil or the first error
// that a violated invariant triggers, in pipeline order. Besides the
// sentinels below, Verify returns the errors of core/bitmap and
// core/history, and ABI encoding errors, unchanged.
var (
	// Input shape.
	ErrUnequalLengths             = errors.New("cert: unequal lengths")
	ErrEmptyVec                   = errors.New("cert: empty vec")
	ErrEmptyBlobQuorums           = errors.New("cert: blob certificate has no quorum numbers")
	ErrInvalidBlobVersion         = errors.New("cert: blob version not less than storage's next blob version")

	// Temporal.
	ErrRecencyWindowMissed                     = errors.New("cert: recency window missed")
	ErrReferenceBlockDoesNotPrecedeCurrentBlock = errors.New("cert: reference block does not precede current block")
	ErrStaleQuorum                              = errors.New("cert: stale quorum")

	// Crypto.
	ErrNotStrictlySortedByHash    = errors.New("cert: non-signer pubkeys not strictly sorted by hash")
	ErrSignatureVerificationFailed = errors.New("cert: signature verification failed")
	ErrCertApkDoesNotEqualStorageApk = errors.New("cert: certificate apk does not equal storage apk")
	ErrMissingQuorumEntry         = errors.New("cert: missing quorum entry")
	ErrMissingSignerEntry         = errors.New("cert: missing signer entry")

	// Stake / threshold.
	ErrUnderflow                                                = errors.New("cert: stake underflow")
	ErrOverflow                                                 = errors.New("cert: stake overflow")
	ErrUnmetSecurityAssumptions                                 = errors.New("cert: unmet security assumptions")
	ErrConfirmationThresholdLessThanOrEqualToAdversaryThreshold = errors.New("cert: confirmation threshold <= adversary threshold")
	ErrBlobQuorumsDoNotContainRequiredQuorums                   = errors.New("cert: blob quorums do not contain required quorums")
	ErrConfirmedQuorumsDoNotContainBlobQuorums                  = errors.New("cert: confirmed quorums do not contain blob quorums")

	// Merkle.
	ErrMerkleProofLengthNotMultipleOf32Bytes = errors.New("cert: merkle proof length not a multiple of 32 bytes")
	ErrMerkleProofPathTooShort               = errors.New("cert: merkle proof path too short")
	ErrLeafNodeDoesNotBelongToMerkleTree     = errors.New("cert: leaf node does not belong to merkle tree")

	// Version registry.
	ErrMissingVersionEntry = errors.New("cert: missing versioned blob params entry")
)
