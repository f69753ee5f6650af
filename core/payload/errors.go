package payload

import "errors"

// Codec errors, one per violated encoding invariant in Decode.
var (
	ErrLengthNotMultipleOf32       = errors.New("payload: encoded length not a multiple of 32 bytes")
	ErrTooShort                    = errors.New("payload: encoded length shorter than the 32-byte header")
	ErrElementCountNotPowerOfTwo   = errors.New("payload: element count not a power of two")
	ErrInvalidHeaderFirstByte      = errors.New("payload: header first byte must be 0x00")
	ErrUnknownVersion              = errors.New("payload: unknown encoding version")
	ErrNonZeroHeaderPadding        = errors.New("payload: header bytes 6..32 must be zero")
	ErrInvalidFieldElementPadding  = errors.New("payload: field element first byte must be 0x00")
	ErrClaimedLengthExceedsCapacity = errors.New("payload: claimed length exceeds encoded capacity")
	ErrNonZeroTailBytes            = errors.New("payload: bytes beyond claimed length must be zero")
	ErrNonZeroTrailingElement      = errors.New("payload: trailing unused element must be all zero")
)

// KZG commitment verification errors.
var (
	ErrCommitmentLengthNotPowerOfTwo = errors.New("payload: commitment length not a power of two")
	ErrBlobLargerThanCommitmentLength = errors.New("payload: blob larger than commitment length")
	ErrInvalidKzgCommitment           = errors.New("payload: invalid kzg commitment")
)
