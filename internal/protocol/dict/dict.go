// Package dict implements glusterd's dictionary wire format.
//
// A serialized dictionary is:
//
//	count:u32
//	count × { key_len:u32 value_len:u32 key[key_len] 0x00 value[value_len] }
//
// All integers are big-endian. Keys carry a NUL terminator that is not
// counted in key_len; values are raw bytes. An empty dictionary serializes to
// zero bytes, without even the count field. The serialized blob is carried
// inside RPC messages as XDR opaque data.
package dict

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/marmos91/glusterrpc/internal/protocol/xdr"
)

// MaxEntries bounds the declared entry count accepted by Deserialize.
const MaxEntries = 1 << 16

var (
	// ErrInvalidKey is returned when a key contains a NUL byte.
	ErrInvalidKey = errors.New("dict: key contains NUL byte")

	// ErrTooManyEntries is returned when the declared count exceeds MaxEntries.
	ErrTooManyEntries = errors.New("dict: too many entries")
)

// Dict maps string keys to opaque values. Ordering is not significant on
// the wire.
type Dict map[string][]byte

// Serialize encodes d. nil and empty dictionaries both produce zero bytes.
// Entries are written in sorted key order so the output is deterministic.
func Serialize(d Dict) ([]byte, error) {
	if len(d) == 0 {
		return []byte{}, nil
	}

	keys := d.Keys()
	size := 4
	for _, k := range keys {
		if strings.IndexByte(k, 0) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, k)
		}
		size += 8 + len(k) + 1 + len(d[k])
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(d)))
	buf.Write(hdr[:4])

	for _, k := range keys {
		v := d[k]
		binary.BigEndian.PutUint32(hdr[:4], uint32(len(k)))
		binary.BigEndian.PutUint32(hdr[4:], uint32(len(v)))
		buf.Write(hdr[:])
		buf.WriteString(k)
		buf.WriteByte(0)
		buf.Write(v)
	}
	return buf.Bytes(), nil
}

// Deserialize reads one dictionary from r. It always reads the count field,
// so callers holding a possibly-empty blob should use Unmarshal.
func Deserialize(r io.Reader) (Dict, error) {
	count, err := xdr.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read dict count: %w", err)
	}
	if count > MaxEntries {
		return nil, fmt.Errorf("%w: %d", ErrTooManyEntries, count)
	}

	d := make(Dict, min(count, 64))
	for i := uint32(0); i < count; i++ {
		keyLen, err := xdr.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("read key length of entry %d: %w", i, err)
		}
		valLen, err := xdr.DecodeUint32(r)
		if err != nil {
			return nil, fmt.Errorf("read value length of entry %d: %w", i, err)
		}

		key, err := xdr.ReadString(r, keyLen)
		if err != nil {
			return nil, fmt.Errorf("read key of entry %d: %w", i, err)
		}
		var nul [1]byte
		if _, err := io.ReadFull(r, nul[:]); err != nil {
			return nil, fmt.Errorf("read key terminator of entry %d: %w", i, err)
		}

		val, err := xdr.ReadBytes(r, valLen)
		if err != nil {
			return nil, fmt.Errorf("read value of %q: %w", key, err)
		}
		d[key] = val
	}
	return d, nil
}

// Unmarshal decodes a complete serialized blob. A zero-length blob is an
// empty dictionary.
func Unmarshal(b []byte) (Dict, error) {
	if len(b) == 0 {
		return Dict{}, nil
	}
	return Deserialize(bytes.NewReader(b))
}

// Keys returns the keys of d in sorted order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetString stores s with the trailing NUL glusterd expects on string values.
func (d Dict) SetString(key, s string) {
	v := make([]byte, len(s)+1)
	copy(v, s)
	d[key] = v
}

// GetString returns the value for key with one trailing NUL removed.
func (d Dict) GetString(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	return string(bytes.TrimSuffix(v, []byte{0})), true
}

// GetUint64 interprets the first eight bytes of the value as a big-endian
// integer.
func (d Dict) GetUint64(key string) (uint64, bool) {
	v, ok := d[key]
	if !ok || len(v) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(v[:8]), true
}

// Clone returns a deep copy of d.
func (d Dict) Clone() Dict {
	if d == nil {
		return nil
	}
	c := make(Dict, len(d))
	for k, v := range d {
		c[k] = append([]byte(nil), v...)
	}
	return c
}
