package rpc

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/marmos91/glusterrpc/pkg/bufpool"
)

// DefaultMaxRecordSize bounds a received record when the caller does not
// configure a limit (1 MiB).
const DefaultMaxRecordSize = 1 << 20

// FragmentHeader is a parsed record-marking header (RFC 5531 section 11):
//   - bit 31: last fragment flag
//   - bits 0-30: fragment length in bytes
type FragmentHeader struct {
	IsLast bool
	Length uint32
}

// Fragment is one piece of a record.
type Fragment struct {
	Data   []byte
	IsLast bool
}

// EncodeFragmentHeader packs a fragment length and last flag.
func EncodeFragmentHeader(length uint32, last bool) uint32 {
	h := length & MaxFragmentLength
	if last {
		h |= LastFragmentBit
	}
	return h
}

// ReadFragmentHeader reads the 4-byte fragment header. EOF is returned
// unwrapped so callers can tell a closed peer from a truncated header.
func ReadFragmentHeader(r io.Reader) (FragmentHeader, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return FragmentHeader{}, err
	}
	h := binary.BigEndian.Uint32(buf[:])
	return FragmentHeader{
		IsLast: h&LastFragmentBit != 0,
		Length: h & MaxFragmentLength,
	}, nil
}

// ReadFragment reads one fragment whose body is at most limit bytes.
func ReadFragment(r io.Reader, limit uint32) (Fragment, error) {
	hdr, err := ReadFragmentHeader(r)
	if err != nil {
		return Fragment{}, fmt.Errorf("read fragment header: %w", err)
	}
	if hdr.Length > limit {
		return Fragment{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrFragmentTooLarge, hdr.Length, limit)
	}

	data := make([]byte, hdr.Length)
	if _, err := io.ReadFull(r, data); err != nil {
		return Fragment{}, fmt.Errorf("read fragment body: %w", err)
	}
	return Fragment{Data: data, IsLast: hdr.IsLast}, nil
}

// SendRecord writes payload as a single last fragment. Header and payload
// go out in one Write; a *bufio.Writer is flushed afterwards.
func SendRecord(w io.Writer, payload []byte) error {
	if len(payload) > MaxFragmentLength {
		return fmt.Errorf("%w: payload of %d bytes", ErrFragmentTooLarge, len(payload))
	}

	msg := bufpool.Get(4 + len(payload))
	defer bufpool.Put(msg)
	binary.BigEndian.PutUint32(msg[:4], EncodeFragmentHeader(uint32(len(payload)), true))
	copy(msg[4:], payload)

	n, err := w.Write(msg)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if n != len(msg) {
		return fmt.Errorf("write record: %w", io.ErrShortWrite)
	}

	if bw, ok := w.(*bufio.Writer); ok {
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("flush record: %w", err)
		}
	}
	return nil
}

// ReceiveRecord reads fragments until the last one and returns their
// concatenated bodies. Zero-length fragments are allowed. maxRecord bounds
// the whole record; zero selects DefaultMaxRecordSize.
func ReceiveRecord(r io.Reader, maxRecord uint32) ([]byte, error) {
	if maxRecord == 0 {
		maxRecord = DefaultMaxRecordSize
	}

	var record []byte
	for {
		frag, err := ReadFragment(r, maxRecord-uint32(len(record)))
		if err != nil {
			return nil, err
		}
		if record == nil {
			record = frag.Data
		} else {
			record = append(record, frag.Data...)
		}
		if frag.IsLast {
			if record == nil {
				record = []byte{}
			}
			return record, nil
		}
	}
}
