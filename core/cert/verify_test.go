package cert

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bitmap"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/history"
)

func g1Point(p bn254.G1) G1Point {
	return G1Point{X: p.X.BigInt(new(big.Int)), Y: p.Y.BigInt(new(big.Int))}
}

func g2Point(p bn254.G2) G2Point {
	return G2Point{
		X: [2]*big.Int{p.X.A0.BigInt(new(big.Int)), p.X.A1.BigInt(new(big.Int))},
		Y: [2]*big.Int{p.Y.A0.BigInt(new(big.Int)), p.Y.A1.BigInt(new(big.Int))},
	}
}

func scalarG1(sk int64) bn254.G1 {
	g := bn254.G1Generator()
	var p bn254.G1
	p.ScalarMultiplication(&g, big.NewInt(sk))
	return p
}

func scalarG2(sk int64) bn254.G2 {
	g := bn254.G2Generator()
	var p bn254.G2
	p.ScalarMultiplication(&g, big.NewInt(sk))
	return p
}

// buildValidFixture constructs a single-quorum, single-signer, no-non-signer
// certificate and the storage snapshot it validates against, mirroring
// end-to-end scenario 1.
func buildValidFixture(t testing.TB) (StandardCommitment, Storage) {
	t.Helper()

	const sk = int64(42)
	const referenceBlock = 100
	const numChunks = 2

	batchHeader := BatchHeaderV2{
		BatchRoot:            common.Hash{}, // filled in below
		ReferenceBlockNumber: referenceBlock,
	}

	blobHeader := BlobHeaderV2{
		Version:           0,
		QuorumNumbers:     []byte{0},
		Commitment:        g1Point(scalarG1(7)),
		CommitmentLength:  4,
		PaymentHeaderHash: common.Hash{},
	}
	blobCert := BlobCertificate{
		BlobHeader: blobHeader,
		Signature:  []byte{},
		RelayKeys:  []RelayKey{1},
	}

	leaf, err := hashBlobCertificate(blobCert)
	require.NoError(t, err)
	var sibling common.Hash
	sibling[0] = 0xAB
	root := common.Hash(bn254.Keccak256(leaf[:], sibling[:])) // blobIndex 0 -> leaf is the left sibling

	batchHeader.BatchRoot = root
	batchHeaderHash, err := hashBatchHeader(batchHeader)
	require.NoError(t, err)

	apkG1 := scalarG1(sk)
	apkG2 := scalarG2(sk)
	msgPoint, err := bn254.HashToPoint(bn254.BeHash(batchHeaderHash))
	require.NoError(t, err)
	var sigma bn254.G1
	sigma.ScalarMultiplication(&msgPoint, big.NewInt(sk))

	commitment := StandardCommitment{
		BatchHeader:       batchHeader,
		BlobCertificate:   blobCert,
		BlobInclusionInfo: BlobInclusionInfo{BlobIndex: 0, SiblingPath: []common.Hash{sibling}},
		NonSignerStakesAndSignature: NonSignerStakesAndSignature{
			NonSignerPubkeys:             nil,
			NonSignerQuorumBitmapIndices: nil,
			QuorumApks:                   []G1Point{g1Point(apkG1)},
			ApkG2:                        g2Point(apkG2),
			Sigma:                        g1Point(sigma),
			QuorumApkIndices:             []uint32{0},
			TotalStakeIndices:            []uint32{0},
			NonSignerStakeIndices:        [][]uint32{{}},
		},
		Version:           0,
		QuorumNumbers:     []byte{0},
		Commitment:        blobHeader.Commitment,
		CommitmentLength:  blobHeader.CommitmentLength,
	}

	apkTrunc := bn254.Trunc(bn254.PointToHash(apkG1))
	apkHistory := history.History[[24]byte]{
		0: mustUpdate[[24]byte](t, 0, 1000, apkTrunc),
	}
	stakeHistory := history.History[Stake]{
		0: mustUpdate(t, 0, 1000, uint256.NewInt(1000)),
	}

	storage := Storage{
		QuorumCount:      1,
		NextBlobVersion:  1,
		VersionedBlobParams: map[Version]VersionedBlobParams{
			0: {MaxNumOperators: 100, NumChunks: numChunks, CodingRate: 8},
		},
		SecurityThresholds:    SecurityThresholds{ConfirmationThreshold: 55, AdversaryThreshold: 33},
		RequiredQuorumNumbers: []byte{0},
		QuorumBitmapHistory:   map[common.Hash]history.History[bitmap.Bitmap]{},
		ApkHistory:            map[QuorumNumber]history.History[[24]byte]{0: apkHistory},
		TotalStakeHistory:     map[QuorumNumber]history.History[Stake]{0: stakeHistory},
		OperatorStakeHistory:  map[common.Hash]map[QuorumNumber]history.History[Stake]{},
	}

	return commitment, storage
}

func mustUpdate[T any](t testing.TB, left, right history.BlockNumber, value T) history.Update[T] {
	t.Helper()
	u, err := history.NewUpdate(left, right, value)
	require.NoError(t, err)
	return u
}

func TestVerifyAcceptsValidCertificate(t *testing.T) {
	commitment, storage := buildValidFixture(t)

	err := Verify(VerifyInput{
		Commitment:    &commitment,
		Storage:       &storage,
		CurrentBlock:  110,
		RecencyWindow: 300,
	})
	require.NoError(t, err)
}

func TestVerifyRejectsWrongSignatureScalar(t *testing.T) {
	commitment, storage := buildValidFixture(t)

	batchHeaderHash, err := hashBatchHeader(commitment.BatchHeader)
	require.NoError(t, err)
	msgPoint, err := bn254.HashToPoint(bn254.BeHash(batchHeaderHash))
	require.NoError(t, err)
	var wrongSigma bn254.G1
	wrongSigma.ScalarMultiplication(&msgPoint, big.NewInt(9999))
	commitment.NonSignerStakesAndSignature.Sigma = g1Point(wrongSigma)

	err = Verify(VerifyInput{Commitment: &commitment, Storage: &storage, CurrentBlock: 110, RecencyWindow: 300})
	require.ErrorIs(t, err, ErrSignatureVerificationFailed)
}

func TestVerifyRejectsReferenceBlockNotBeforeCurrent(t *testing.T) {
	commitment, storage := buildValidFixture(t)
	err := Verify(VerifyInput{Commitment: &commitment, Storage: &storage, CurrentBlock: 100, RecencyWindow: 300})
	require.ErrorIs(t, err, ErrReferenceBlockDoesNotPrecedeCurrentBlock)
}

func TestVerifyRejectsRecencyWindowMissed(t *testing.T) {
	commitment, storage := buildValidFixture(t)
	err := Verify(VerifyInput{Commitment: &commitment, Storage: &storage, CurrentBlock: 500, RecencyWindow: 10})
	require.ErrorIs(t, err, ErrRecencyWindowMissed)
}

func TestVerifyRejectsMerkleProofPathTooShort(t *testing.T) {
	commitment, storage := buildValidFixture(t)
	commitment.BlobInclusionInfo.SiblingPath = nil

	err := Verify(VerifyInput{Commitment: &commitment, Storage: &storage, CurrentBlock: 110, RecencyWindow: 300})
	require.ErrorIs(t, err, ErrMerkleProofPathTooShort)
}

func BenchmarkVerifyCert(b *testing.B) {
	commitment, storage := buildValidFixture(b)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := Verify(VerifyInput{
			Commitment:    &commitment,
			Storage:       &storage,
			CurrentBlock:  110,
			RecencyWindow: 300,
		}); err != nil {
			b.Fatal(err)
		}
	}
}
