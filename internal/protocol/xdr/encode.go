package xdr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ============================================================================
// Encoding - Go Types → Wire Format
// ============================================================================

var zeroPad [3]byte

// WriteXDROpaque encodes variable-length opaque data: length, bytes, padding.
//
//	[]byte{0x01, 0x02, 0x03} → [00 00 00 03][01 02 03][00]
func WriteXDROpaque(w io.Writer, data []byte) error {
	if err := WriteUint32(w, uint32(len(data))); err != nil {
		return fmt.Errorf("write opaque length: %w", err)
	}
	if err := writeFull(w, data); err != nil {
		return fmt.Errorf("write opaque data: %w", err)
	}
	return WriteXDRPadding(w, uint32(len(data)))
}

// WriteXDRString encodes a string with the same layout as opaque data.
//
//	"abc"  → [00 00 00 03][61 62 63][00]
//	"test" → [00 00 00 04][74 65 73 74]
func WriteXDRString(w io.Writer, s string) error {
	if err := WriteUint32(w, uint32(len(s))); err != nil {
		return fmt.Errorf("write string length: %w", err)
	}
	if err := writeFull(w, []byte(s)); err != nil {
		return fmt.Errorf("write string data: %w", err)
	}
	return WriteXDRPadding(w, uint32(len(s)))
}

// WriteXDRPadding writes the zero bytes that align a dataLen-byte body to
// four bytes.
func WriteXDRPadding(w io.Writer, dataLen uint32) error {
	if pad := Padding(dataLen); pad > 0 {
		if err := writeFull(w, zeroPad[:pad]); err != nil {
			return fmt.Errorf("write padding: %w", err)
		}
	}
	return nil
}

// WriteUint32 encodes a big-endian uint32.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	if err := writeFull(w, b[:]); err != nil {
		return fmt.Errorf("write uint32: %w", err)
	}
	return nil
}

// WriteInt32 encodes a big-endian two's complement int32.
func WriteInt32(w io.Writer, v int32) error {
	return WriteUint32(w, uint32(v))
}

// WriteUint64 encodes a big-endian uint64 (XDR unsigned hyper).
func WriteUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	if err := writeFull(w, b[:]); err != nil {
		return fmt.Errorf("write uint64: %w", err)
	}
	return nil
}

// WriteBool encodes a boolean as uint32 0 or 1.
func WriteBool(w io.Writer, v bool) error {
	if v {
		return WriteUint32(w, 1)
	}
	return WriteUint32(w, 0)
}

// writeFull turns a silent short write into io.ErrShortWrite.
func writeFull(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}
	return nil
}
