package bn254

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointToHashGenerator(t *testing.T) {
	g1 := G1Generator()
	h := PointToHash(g1)

	want, err := hex.DecodeString("e90b7bceb6e7df5418fb78d8ee546e97c83a08bbccc01a0644d599ccd2a7c2e0")
	require.NoError(t, err)
	require.Equal(t, want, h[:])
}

func TestPointToHashInfinity(t *testing.T) {
	var infinity G1
	require.True(t, infinity.IsInfinity())

	h := PointToHash(infinity)
	var zero [32]byte
	require.Equal(t, Keccak256(zero[:], zero[:]), h)
}

func TestTrunc(t *testing.T) {
	var h BeHash
	for i := range h {
		h[i] = byte(i)
	}
	trunc := Trunc(h)
	require.Equal(t, h[:24], trunc[:])
}

func TestHashToPointIsOnCurve(t *testing.T) {
	h := Keccak256([]byte("hash-to-point fixture"))
	p, err := HashToPoint(h)
	require.NoError(t, err)
	require.False(t, p.IsInfinity())
	require.True(t, p.IsOnCurve())
}

func TestKeccak256ManyMatchesConcatenation(t *testing.T) {
	a, b := []byte("foo"), []byte("bar")
	require.Equal(t, Keccak256(a, b), Keccak256Many(a, b))
	require.Equal(t, Keccak256(append(append([]byte{}, a...), b...)), Keccak256(a, b))
}
