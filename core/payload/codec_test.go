package payload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	lengths := []int{0, 1, 30, 31, 32, 63, 64, 1000, 31 * 8}

	for _, n := range lengths {
		p := make([]byte, n)
		for i := range p {
			p[i] = byte(i % 251)
		}

		encoded := Encode(p)
		require.Equal(t, 0, len(encoded)%32)
		numElements := len(encoded) / 32
		require.Zero(t, numElements&(numElements-1), "element count must be a power of two")

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, Payload(p), decoded)
	}
}

func TestDecodeRejectsNonMultipleOf32(t *testing.T) {
	_, err := Decode(make([]byte, 40))
	require.ErrorIs(t, err, ErrLengthNotMultipleOf32)
}

func TestDecodeRejectsTooShort(t *testing.T) {
	_, err := Decode(make([]byte, 0))
	require.ErrorIs(t, err, ErrTooShort)
}

func TestDecodeRejectsNonPowerOfTwoElementCount(t *testing.T) {
	_, err := Decode(make([]byte, 32*3))
	require.ErrorIs(t, err, ErrElementCountNotPowerOfTwo)
}

func TestDecodeRejectsBadHeaderFirstByte(t *testing.T) {
	encoded := Encode([]byte("hello"))
	encoded[0] = 0x01
	_, err := Decode(encoded)
	require.ErrorIs(t, err, ErrInvalidHeaderFirstByte)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	encoded := Encode([]byte("hello"))
	encoded[1] = 0x01
	_, err := Decode(encoded)
	require.ErrorIs(t, err, ErrUnknownVersion)
}

func TestDecodeRejectsNonZeroHeaderPadding(t *testing.T) {
	encoded := Encode([]byte("hello"))
	encoded[10] = 0xff
	_, err := Decode(encoded)
	require.ErrorIs(t, err, ErrNonZeroHeaderPadding)
}

func TestDecodeRejectsBadFieldElementPadding(t *testing.T) {
	// Second element (index 32..64) is the first payload-carrying element;
	// corrupting its padding byte.
	encoded := Encode(make([]byte, 64))
	encoded[32] = 0x01
	_, err := Decode(encoded)
	require.ErrorIs(t, err, ErrInvalidFieldElementPadding)
}

func TestDecodeRejectsClaimedLengthExceedingCapacity(t *testing.T) {
	encoded := Encode([]byte("hello"))
	encoded[2] = 0xff // corrupt the big-endian length field upward
	_, err := Decode(encoded)
	require.ErrorIs(t, err, ErrClaimedLengthExceedsCapacity)
}

func TestDecodeRejectsNonZeroTailBytes(t *testing.T) {
	encoded := Encode([]byte("hi"))
	// Byte beyond the claimed 2-byte payload, inside the same element.
	encoded[headerSize+1+2] = 0xff
	_, err := Decode(encoded)
	require.ErrorIs(t, err, ErrNonZeroTailBytes)
}

func TestDecodeRejectsNonZeroTrailingElement(t *testing.T) {
	// 1 data byte needs 1 data element; Encode pads to a power of two, so
	// with a single data byte the total element count (header + 1 data)
	// rounds up to 2, leaving no spare element. Force a 3rd element to get
	// a genuine trailing element to corrupt.
	encoded := Encode(make([]byte, 32)) // needs 2 data elements -> total 3 -> rounds to 4
	trailingOff := headerSize + 2*32
	encoded[trailingOff+1] = 0xff
	_, err := Decode(encoded)
	require.ErrorIs(t, err, ErrNonZeroTrailingElement)
}
