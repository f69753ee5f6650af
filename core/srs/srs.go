// Package srs loads and holds the KZG trusted-setup Structured Reference
// String: the read-only array of BN254 G1 points every commitment
// verification in core/payload is checked against.
package srs

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Layr-Labs/eigenda-cert-verifier/core/bn254"
)

// PointsToLoad bounds the maximum polynomial degree (and therefore the
// maximum blob size) this verifier can check a KZG commitment against: a
// 16 MiB trusted-setup file of 32-byte compressed G1 points.
const PointsToLoad = 16 * 1024 * 1024 / 32 // 524,288

var (
	ErrTruncatedPoint  = errors.New("srs: truncated point in trusted setup stream")
	ErrTooManyPoints   = errors.New("srs: trusted setup exceeds PointsToLoad")
	ErrDegreeTooLarge  = errors.New("srs: polynomial degree exceeds loaded SRS order")
	ErrOrderMismatch   = errors.New("srs: serialized order does not match point count")
)

// SRS is the loaded subset of the trusted setup's G1 points, g1[i] = [tau^i]G1
// for the ceremony's secret tau. Order is the number of valid points; it may
// be less than len(G1) only transiently during construction.
type SRS struct {
	G1    []bn254.G1
	Order uint32
}

// Load reads up to PointsToLoad 32-byte compressed G1 points from r, in
// ascending power order, stopping at EOF. It reads the trusted-setup
// ceremony output at run time; no SRS is embedded at build time. The
// resulting SRS is not modified by any verification call and can be shared
// across them for the life of the process.
func Load(r io.Reader) (*SRS, error) {
	br := bufio.NewReaderSize(r, 1<<20)
	points := make([]bn254.G1, 0, PointsToLoad)

	var buf [32]byte
	for {
		_, err := io.ReadFull(br, buf[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedPoint
		}
		if err != nil {
			return nil, err
		}

		var p bn254.G1
		if _, err := p.SetBytes(buf[:]); err != nil {
			return nil, err
		}
		points = append(points, p)
		if len(points) > PointsToLoad {
			return nil, ErrTooManyPoints
		}
	}

	return &SRS{G1: points, Order: uint32(len(points))}, nil
}

// Commit computes the KZG commitment Σ coeffs[i]·G1[i] via a single
// multi-scalar multiplication against the loaded SRS. len(coeffs) must not
// exceed s.Order.
func (s *SRS) Commit(coeffs []fr.Element) (bn254.G1, error) {
	if uint32(len(coeffs)) > s.Order {
		return bn254.G1{}, ErrDegreeTooLarge
	}

	var result bn254.G1
	if _, err := result.MultiExp(s.G1[:len(coeffs)], coeffs, ecc.MultiExpConfig{}); err != nil {
		return bn254.G1{}, err
	}
	return result, nil
}

// MarshalBinary serializes the SRS as order (big-endian uint32) followed by
// order compressed 32-byte G1 points, mirroring the trusted-setup ceremony's
// own on-disk point format so a verified SRS can be cached and reloaded
// without repeating the Load scan.
func (s *SRS) MarshalBinary() ([]byte, error) {
	out := make([]byte, 4+32*len(s.G1))
	binary.BigEndian.PutUint32(out[:4], s.Order)
	for i, p := range s.G1 {
		b := p.Bytes()
		copy(out[4+32*i:4+32*(i+1)], b[:])
	}
	return out, nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (s *SRS) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return ErrTruncatedPoint
	}
	order := binary.BigEndian.Uint32(data[:4])
	rest := data[4:]
	if len(rest)%32 != 0 || uint32(len(rest)/32) != order {
		return ErrOrderMismatch
	}

	points := make([]bn254.G1, order)
	for i := range points {
		if _, err := points[i].SetBytes(rest[32*i : 32*(i+1)]); err != nil {
			return err
		}
	}
	s.G1 = points
	s.Order = order
	return nil
}
