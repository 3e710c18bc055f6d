package xdr

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// ============================================================================
// Decoding - Wire Format → Go Types
// ============================================================================

// DecodeOpaque decodes variable-length opaque data and consumes its padding.
//
// Format: [length:uint32][data:length bytes][padding:0-3 bytes]
//
// Lengths above MaxOpaqueLength are rejected before allocating.
func DecodeOpaque(r io.Reader) ([]byte, error) {
	length, err := DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read length: %w", err)
	}

	data, err := ReadBytes(r, length)
	if err != nil {
		return nil, err
	}
	if err := SkipPadding(r, length); err != nil {
		return nil, err
	}
	return data, nil
}

// DecodeString decodes an XDR string. The body must be valid UTF-8.
func DecodeString(r io.Reader) (string, error) {
	data, err := DecodeOpaque(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// ReadBytes reads exactly size raw bytes, where size was already read by
// the caller. Padding is not consumed.
func ReadBytes(r io.Reader, size uint32) ([]byte, error) {
	if size > MaxOpaqueLength {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooLarge, size, MaxOpaqueLength)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return data, nil
}

// ReadString is ReadBytes followed by UTF-8 validation.
func ReadString(r io.Reader, size uint32) (string, error) {
	data, err := ReadBytes(r, size)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// SkipPadding consumes the 0-3 pad bytes following a size-byte body.
func SkipPadding(r io.Reader, size uint32) error {
	if pad := Padding(size); pad > 0 {
		var buf [3]byte
		if _, err := io.ReadFull(r, buf[:pad]); err != nil {
			return fmt.Errorf("skip padding: %w", err)
		}
	}
	return nil
}

// DecodeUint32 decodes a big-endian uint32.
func DecodeUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read uint32: %w", err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// DecodeInt32 decodes a big-endian two's complement int32.
func DecodeInt32(r io.Reader) (int32, error) {
	v, err := DecodeUint32(r)
	if err != nil {
		return 0, fmt.Errorf("read int32: %w", err)
	}
	return int32(v), nil
}

// DecodeUint64 decodes a big-endian uint64.
func DecodeUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read uint64: %w", err)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// DecodeBool decodes a uint32 boolean; any non-zero value is true.
func DecodeBool(r io.Reader) (bool, error) {
	v, err := DecodeUint32(r)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
