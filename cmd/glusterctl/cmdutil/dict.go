package cmdutil

import (
	"encoding/hex"
	"strconv"
	"unicode/utf8"

	"github.com/marmos91/glusterrpc/internal/protocol/dict"
)

// DictTable renders a glusterd dictionary as KEY/VALUE rows. Values are
// shown as strings when printable and as hex otherwise.
type DictTable struct {
	keys   []string
	values map[string]string
}

// NewDictTable builds a table from d in key order.
func NewDictTable(d dict.Dict) DictTable {
	t := DictTable{keys: d.Keys(), values: make(map[string]string, len(d))}
	for _, k := range t.keys {
		t.values[k] = DictValue(d, k)
	}
	return t
}

// Values returns the rendered values by key, for JSON and YAML output.
func (t DictTable) Values() map[string]string { return t.values }

// Headers implements TableRenderer.
func (t DictTable) Headers() []string { return []string{"KEY", "VALUE"} }

// Rows implements TableRenderer.
func (t DictTable) Rows() [][]string {
	rows := make([][]string, 0, len(t.keys))
	for _, k := range t.keys {
		rows = append(rows, []string{k, t.values[k]})
	}
	return rows
}

// DictValue returns the value of key as text.
func DictValue(d dict.Dict, key string) string {
	s, ok := d.GetString(key)
	if !ok {
		return ""
	}
	if utf8.ValidString(s) && isPrintable(s) {
		return s
	}
	return "0x" + hex.EncodeToString(d[key])
}

func isPrintable(s string) bool {
	for _, r := range s {
		if !strconv.IsPrint(r) {
			return false
		}
	}
	return true
}
