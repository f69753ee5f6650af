// Package adapter documents the seam between the deterministic
// verification core and the collaborators that feed it: the extraction
// layer that turns a reference Ethereum block into a cert.Storage
// snapshot, and the proxy that stores/retrieves payloads against EigenDA.
// Neither collaborator is implemented here; fetching storage proofs over
// an RPC connection and speaking the proxy's HTTP API are explicitly out
// of scope for this module.
package adapter

import (
	"context"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/cert"
)

// StorageSource produces the on-chain state snapshot core.VerifyBlobCert
// checks a certificate against, as of a given reference block.
type StorageSource interface {
	FetchStorage(ctx context.Context, referenceBlock uint32) (*cert.Storage, error)
}

// ProxyClient is the EigenDA disperser/proxy surface a payload crosses on
// its way in and out of this verifier: storing a payload yields the
// certificate that attests to it, and a certificate can be exchanged back
// for its encoded payload.
type ProxyClient interface {
	StorePayload(ctx context.Context, payload []byte) (*cert.StandardCommitment, error)
	GetEncodedPayload(ctx context.Context, commitment *cert.StandardCommitment) ([]byte, error)
}
