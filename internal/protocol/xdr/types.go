// Package xdr implements the subset of XDR (RFC 4506) spoken by the
// glusterd management RPC programs.
//
// Key characteristics of the encoding:
//   - Big-endian byte order for all multi-byte integers
//   - Variable-length data is preceded by a 4-byte length
//   - Strings and opaque data are padded with zero bytes to a 4-byte boundary
//
// The package has no dependencies on other glusterrpc packages.
package xdr

import (
	"errors"
	"io"
)

// MaxOpaqueLength bounds any single length-prefixed field read from the
// wire. glusterd dictionaries and strings are far below this.
const MaxOpaqueLength = 1024 * 1024

var (
	// ErrTooLarge is returned when a declared length exceeds MaxOpaqueLength.
	ErrTooLarge = errors.New("xdr: declared length too large")

	// ErrInvalidUTF8 is returned when a string field is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("xdr: string is not valid UTF-8")
)

// Encoder is implemented by messages that serialize themselves in XDR.
type Encoder interface {
	Encode(w io.Writer) error
}

// Decoder is implemented by messages that deserialize themselves from XDR.
type Decoder interface {
	Decode(r io.Reader) error
}

// Padding returns the number of zero bytes that follow an n-byte body.
//
//	n=3 → 1, n=4 → 0, n=5 → 3
func Padding(n uint32) uint32 {
	return (4 - n%4) % 4
}

// EncodeUnionDiscriminant writes the discriminant of an XDR union
// (RFC 4506 section 4.15).
func EncodeUnionDiscriminant(w io.Writer, disc uint32) error {
	return WriteUint32(w, disc)
}

// DecodeUnionDiscriminant reads the discriminant of an XDR union.
func DecodeUnionDiscriminant(r io.Reader) (uint32, error) {
	return DecodeUint32(r)
}
