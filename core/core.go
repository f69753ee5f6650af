// Package core composes the certificate, blob-commitment, and payload-codec
// verification stages into the single entry point an integrator calls:
// given a certificate, the payload it supposedly commits to, and a snapshot
// of on-chain state, decide whether the certificate is valid and the
// payload is the one it commits to.
package core

import (
	"fmt"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/cert"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/payload"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/srs"
)

// Stage identifies which verification stage produced a VerificationError.
type Stage string

const (
	StageCert  Stage = "cert"
	StageBlob  Stage = "blob"
	StageCodec Stage = "codec"
)

// VerificationError wraps the first failing stage's error with the stage
// that produced it, so callers can both log a stable top-level error type
// and errors.Is/errors.As through to the specific sentinel beneath it.
type VerificationError struct {
	Stage Stage
	Err   error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("eigenda verification failed at %s stage: %s", e.Stage, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *VerificationError for the same stage,
// following the errname sentinel-error convention; it does not compare the
// wrapped error, use errors.As for that.
func (e *VerificationError) Is(target error) bool {
	t, ok := target.(*VerificationError)
	if !ok {
		return false
	}
	return t.Stage == "" || t.Stage == e.Stage
}

// VerifyBlobCert is the composed top-level operation: it validates the
// certificate against the storage snapshot at the given reference-block
// view, checks the encoded payload's KZG commitment against the
// certificate, and finally decodes the payload. Stages run in that order
// and stop at the first failure, each failure reported via a
// *VerificationError naming which stage failed.
func VerifyBlobCert(
	commitment *cert.StandardCommitment,
	storage *cert.Storage,
	encodedPayload []byte,
	currentBlock uint64,
	recencyWindow uint64,
	s *srs.SRS,
) (payload.Payload, error) {
	if err := cert.Verify(cert.VerifyInput{
		Commitment:    commitment,
		Storage:       storage,
		CurrentBlock:  currentBlock,
		RecencyWindow: recencyWindow,
	}); err != nil {
		return nil, &VerificationError{Stage: StageCert, Err: err}
	}

	commitmentPoint := commitment.Commitment.ToG1()
	if err := payload.VerifyBlob(commitmentPoint, commitment.CommitmentLength, encodedPayload, s); err != nil {
		return nil, &VerificationError{Stage: StageBlob, Err: err}
	}

	decoded, err := payload.Decode(encodedPayload)
	if err != nil {
		return nil, &VerificationError{Stage: StageCodec, Err: err}
	}

	return decoded, nil
}
