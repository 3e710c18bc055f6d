package dict

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeEmpty(t *testing.T) {
	for name, d := range map[string]Dict{"Nil": nil, "Empty": {}} {
		t.Run(name, func(t *testing.T) {
			b, err := Serialize(d)
			require.NoError(t, err)
			assert.Empty(t, b)
		})
	}
}

func TestSerializeLayout(t *testing.T) {
	d := Dict{"count": []byte("1\x00")}
	b, err := Serialize(d)
	require.NoError(t, err)

	want := []byte{
		0, 0, 0, 1, // count
		0, 0, 0, 5, // key_len
		0, 0, 0, 2, // value_len
		'c', 'o', 'u', 'n', 't', 0,
		'1', 0,
	}
	assert.Equal(t, want, b)
}

func TestSerializeSortedKeys(t *testing.T) {
	d := Dict{"b": []byte("2"), "a": []byte("1")}
	b1, err := Serialize(d)
	require.NoError(t, err)
	b2, err := Serialize(d.Clone())
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	// "a" comes first
	assert.Equal(t, byte('a'), b1[12])
}

func TestSerializeRejectsNULKey(t *testing.T) {
	_, err := Serialize(Dict{"bad\x00key": nil})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestRoundTrip(t *testing.T) {
	tests := map[string]Dict{
		"QuotaRequest": {
			"gfid":               []byte("00000000-0000-0000-0000-000000000001"),
			"volume-uuid":        []byte("test"),
			"default-soft-limit": []byte("80%"),
			"type":               []byte("5"),
		},
		"BinaryValues": {
			"trusted.glusterfs.quota.size": {0, 0, 0, 1, 0x3a, 0, 0, 0},
			"empty":                        {},
		},
		"SingleKey": {"k": []byte("v")},
	}

	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			b, err := Serialize(d)
			require.NoError(t, err)

			got, err := Deserialize(bytes.NewReader(b))
			require.NoError(t, err)
			require.Len(t, got, len(d))
			for k, v := range d {
				assert.Equal(t, string(v), string(got[k]), k)
			}

			viaUnmarshal, err := Unmarshal(b)
			require.NoError(t, err)
			assert.Len(t, viaUnmarshal, len(d))
		})
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	d, err := Unmarshal(nil)
	require.NoError(t, err)
	assert.NotNil(t, d)
	assert.Empty(t, d)
}

func TestDeserializeErrors(t *testing.T) {
	good, err := Serialize(Dict{"friend1.hostname": []byte("localhost\x00")})
	require.NoError(t, err)

	t.Run("EmptyReader", func(t *testing.T) {
		_, err := Deserialize(bytes.NewReader(nil))
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("TruncatedEverywhere", func(t *testing.T) {
		for n := 1; n < len(good); n++ {
			_, err := Unmarshal(good[:n])
			assert.Error(t, err, "prefix %d", n)
		}
	})

	t.Run("TooManyEntries", func(t *testing.T) {
		_, err := Unmarshal([]byte{0xff, 0xff, 0xff, 0xff})
		assert.ErrorIs(t, err, ErrTooManyEntries)
	})
}

func TestHelpers(t *testing.T) {
	d := Dict{}
	d.SetString("volume-uuid", "gv0")
	assert.Equal(t, []byte("gv0\x00"), d["volume-uuid"])

	s, ok := d.GetString("volume-uuid")
	assert.True(t, ok)
	assert.Equal(t, "gv0", s)

	_, ok = d.GetString("missing")
	assert.False(t, ok)

	d["size"] = []byte{0, 0, 0, 1, 0x3a, 0, 0, 0, 0xff}
	n, ok := d.GetUint64("size")
	assert.True(t, ok)
	assert.Equal(t, uint64(5268045824), n)

	d["short"] = []byte{1, 2}
	_, ok = d.GetUint64("short")
	assert.False(t, ok)

	assert.Equal(t, []string{"short", "size", "volume-uuid"}, d.Keys())
	assert.Nil(t, Dict(nil).Clone())
}
