package gluster

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/marmos91/glusterrpc/internal/protocol/dict"
)

// ErrMissingKey is matched by every *MissingKeyError.
var ErrMissingKey = errors.New("gluster: expected key missing from response")

// ErrOpFailed is matched by every *OpError.
var ErrOpFailed = errors.New("gluster: operation failed")

// MissingKeyError reports a response dictionary without a required key.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("gluster: response is missing key %q", e.Key)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// OpError reports a response whose op_ret was negative.
type OpError struct {
	Procedure string
	OpRet     int32
	OpErrno   int32
	OpErrstr  string
}

func (e *OpError) Error() string {
	msg := fmt.Sprintf("gluster: %s failed: op_ret=%d op_errno=%d", e.Procedure, e.OpRet, e.OpErrno)
	if e.OpErrstr != "" {
		msg += ": " + e.OpErrstr
	}
	return msg
}

func (e *OpError) Unwrap() error { return ErrOpFailed }

// CheckStatus returns an *OpError if s reports failure.
func CheckStatus(proc fmt.Stringer, s OpStatus, errstr string) error {
	if !s.Failed() {
		return nil
	}
	return &OpError{Procedure: proc.String(), OpRet: s.OpRet, OpErrno: s.OpErrno, OpErrstr: errstr}
}

// ============================================================================
// Peers
// ============================================================================

// Peer is one entry of the friend list glusterd returns for
// GLUSTER_CLI_LIST_FRIENDS.
type Peer struct {
	Index     int
	Hostname  string
	UUID      uuid.UUID
	Connected bool
	State     string
}

// ParsePeers extracts peers from the friends dictionary. Keys are
// "count" and "friend<N>.hostname|uuid|connected|stateStr" for N in
// 1..count. A friend with no hostname is skipped.
func ParsePeers(d dict.Dict) ([]Peer, error) {
	countStr, ok := d.GetString("count")
	if !ok {
		return nil, &MissingKeyError{Key: "count"}
	}
	count, err := strconv.Atoi(countStr)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("gluster: invalid peer count %q", countStr)
	}
	// Every friend carries at least a hostname key.
	if count > len(d) {
		return nil, fmt.Errorf("gluster: peer count %d exceeds %d dictionary entries", count, len(d))
	}

	peers := make([]Peer, 0, count)
	for i := 1; i <= count; i++ {
		prefix := "friend" + strconv.Itoa(i) + "."

		host, ok := d.GetString(prefix + "hostname")
		if !ok {
			continue
		}
		p := Peer{Index: i, Hostname: host}

		if s, ok := d.GetString(prefix + "uuid"); ok {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("gluster: friend%d has invalid uuid %q: %w", i, s, err)
			}
			p.UUID = id
		}
		if s, ok := d.GetString(prefix + "connected"); ok {
			p.Connected = s == "1"
		}
		if s, ok := d.GetString(prefix + "stateStr"); ok {
			p.State = s
		}
		peers = append(peers, p)
	}

	sort.Slice(peers, func(a, b int) bool { return peers[a].Index < peers[b].Index })
	return peers, nil
}

// ============================================================================
// Quota
// ============================================================================

const (
	// QuotaSizeKey holds a volume directory's usage in a getlimit reply.
	QuotaSizeKey = "trusted.glusterfs.quota.size"

	// RootGFID is the gfid of a volume's root directory.
	RootGFID = "00000000-0000-0000-0000-000000000001"

	// quotaGetLimitType is GF_QUOTA_OPTION_TYPE_LIST.
	quotaGetLimitType = "5"

	// quotaClientVersion is the version string quotad checks in requests.
	quotaClientVersion = "1.20000005"
)

// QuotaGetLimitRequest builds the dictionary quotad expects for a getlimit
// call on the directory identified by gfid. An empty gfid selects the
// volume root.
func QuotaGetLimitRequest(volume, gfid string) (dict.Dict, error) {
	if volume == "" {
		return nil, errors.New("gluster: volume name is required")
	}
	if gfid == "" {
		gfid = RootGFID
	}
	if _, err := uuid.Parse(gfid); err != nil {
		return nil, fmt.Errorf("gluster: invalid gfid %q: %w", gfid, err)
	}

	d := dict.Dict{}
	d.SetString("gfid", gfid)
	d.SetString("type", quotaGetLimitType)
	d.SetString("volume-uuid", volume)
	d.SetString("version", quotaClientVersion)
	return d, nil
}

// QuotaUsage is the decoded value of trusted.glusterfs.quota.size.
type QuotaUsage struct {
	Size      uint64
	FileCount uint64
	DirCount  uint64
}

// ParseQuotaUsage decodes the usage blob from a getlimit reply. Older
// servers send only the 8-byte size; newer ones append file and directory
// counts.
func ParseQuotaUsage(d dict.Dict) (QuotaUsage, error) {
	v, ok := d[QuotaSizeKey]
	if !ok {
		return QuotaUsage{}, &MissingKeyError{Key: QuotaSizeKey}
	}

	switch {
	case len(v) >= 24:
		return QuotaUsage{
			Size:      binary.BigEndian.Uint64(v[0:8]),
			FileCount: binary.BigEndian.Uint64(v[8:16]),
			DirCount:  binary.BigEndian.Uint64(v[16:24]),
		}, nil
	case len(v) >= 8:
		return QuotaUsage{Size: binary.BigEndian.Uint64(v[0:8])}, nil
	}
	return QuotaUsage{}, fmt.Errorf("gluster: %s value is %d bytes, want 8 or 24", QuotaSizeKey, len(v))
}
