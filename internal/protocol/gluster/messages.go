package gluster

import (
	"fmt"
	"io"

	"github.com/marmos91/glusterrpc/internal/protocol/dict"
	"github.com/marmos91/glusterrpc/internal/protocol/xdr"
)

// Every message encodes its fields in declaration order. Dictionaries are
// serialized and carried as XDR opaque data; strings and opaques are padded
// to four bytes on encode and the padding is consumed on decode.

func writeDict(w io.Writer, d dict.Dict) error {
	b, err := dict.Serialize(d)
	if err != nil {
		return err
	}
	if err := xdr.WriteXDROpaque(w, b); err != nil {
		return fmt.Errorf("write dict: %w", err)
	}
	return nil
}

func readDict(r io.Reader) (dict.Dict, error) {
	b, err := xdr.DecodeOpaque(r)
	if err != nil {
		return nil, fmt.Errorf("read dict: %w", err)
	}
	return dict.Unmarshal(b)
}

// OpStatus is the op_ret/op_errno prefix shared by every glusterd response.
type OpStatus struct {
	OpRet   int32
	OpErrno int32
}

// Failed reports whether glusterd signalled failure (op_ret < 0).
func (s OpStatus) Failed() bool { return s.OpRet < 0 }

func (s *OpStatus) decode(r io.Reader) error {
	var err error
	if s.OpRet, err = xdr.DecodeInt32(r); err != nil {
		return fmt.Errorf("read op_ret: %w", err)
	}
	if s.OpErrno, err = xdr.DecodeInt32(r); err != nil {
		return fmt.Errorf("read op_errno: %w", err)
	}
	return nil
}

func (s OpStatus) encode(w io.Writer) error {
	if err := xdr.WriteInt32(w, s.OpRet); err != nil {
		return err
	}
	return xdr.WriteInt32(w, s.OpErrno)
}

// ============================================================================
// Generic CLI request/response
// ============================================================================

// CliRequest is gf_cli_req: a single dictionary of arguments.
type CliRequest struct {
	Dict dict.Dict
}

func (m *CliRequest) Encode(w io.Writer) error { return writeDict(w, m.Dict) }

func (m *CliRequest) Decode(r io.Reader) (err error) {
	m.Dict, err = readDict(r)
	return err
}

// CliResponse is gf_cli_rsp.
type CliResponse struct {
	OpStatus
	OpErrstr string
	Dict     dict.Dict
}

func (m *CliResponse) Encode(w io.Writer) error {
	if err := m.OpStatus.encode(w); err != nil {
		return err
	}
	if err := xdr.WriteXDRString(w, m.OpErrstr); err != nil {
		return err
	}
	return writeDict(w, m.Dict)
}

func (m *CliResponse) Decode(r io.Reader) error {
	if err := m.OpStatus.decode(r); err != nil {
		return err
	}
	var err error
	if m.OpErrstr, err = xdr.DecodeString(r); err != nil {
		return fmt.Errorf("read op_errstr: %w", err)
	}
	m.Dict, err = readDict(r)
	return err
}

// ============================================================================
// Peer list
// ============================================================================

// Flags for PeerListRequest.
const (
	FlagsAll    int32 = 1
	FlagsGetAll int32 = 2
)

// PeerListRequest is gf1_cli_peer_list_req.
type PeerListRequest struct {
	Flags int32
	Dict  dict.Dict
}

func (m *PeerListRequest) Encode(w io.Writer) error {
	if err := xdr.WriteInt32(w, m.Flags); err != nil {
		return err
	}
	return writeDict(w, m.Dict)
}

func (m *PeerListRequest) Decode(r io.Reader) error {
	var err error
	if m.Flags, err = xdr.DecodeInt32(r); err != nil {
		return fmt.Errorf("read flags: %w", err)
	}
	m.Dict, err = readDict(r)
	return err
}

// PeerListResponse is gf1_cli_peer_list_rsp.
type PeerListResponse struct {
	OpStatus
	Friends dict.Dict
}

func (m *PeerListResponse) Encode(w io.Writer) error {
	if err := m.OpStatus.encode(w); err != nil {
		return err
	}
	return writeDict(w, m.Friends)
}

func (m *PeerListResponse) Decode(r io.Reader) error {
	if err := m.OpStatus.decode(r); err != nil {
		return err
	}
	var err error
	m.Friends, err = readDict(r)
	return err
}

// ============================================================================
// FSM log
// ============================================================================

// FsmLogRequest is gf1_cli_fsm_log_req. An empty name asks for the local
// node's log.
type FsmLogRequest struct {
	Name string
}

func (m *FsmLogRequest) Encode(w io.Writer) error { return xdr.WriteXDRString(w, m.Name) }

func (m *FsmLogRequest) Decode(r io.Reader) (err error) {
	m.Name, err = xdr.DecodeString(r)
	return err
}

// FsmLogResponse is gf1_cli_fsm_log_rsp. FsmLog holds a serialized
// dictionary of state machine transitions.
type FsmLogResponse struct {
	OpStatus
	OpErrstr string
	FsmLog   []byte
}

func (m *FsmLogResponse) Encode(w io.Writer) error {
	if err := m.OpStatus.encode(w); err != nil {
		return err
	}
	if err := xdr.WriteXDRString(w, m.OpErrstr); err != nil {
		return err
	}
	return xdr.WriteXDROpaque(w, m.FsmLog)
}

func (m *FsmLogResponse) Decode(r io.Reader) error {
	if err := m.OpStatus.decode(r); err != nil {
		return err
	}
	var err error
	if m.OpErrstr, err = xdr.DecodeString(r); err != nil {
		return fmt.Errorf("read op_errstr: %w", err)
	}
	if m.FsmLog, err = xdr.DecodeOpaque(r); err != nil {
		return fmt.Errorf("read fsm_log: %w", err)
	}
	return nil
}

// Entries decodes the state machine log dictionary.
func (m *FsmLogResponse) Entries() (dict.Dict, error) {
	return dict.Unmarshal(m.FsmLog)
}

// ============================================================================
// Getwd
// ============================================================================

// GetwdRequest is gf1_cli_getwd_req.
type GetwdRequest struct {
	Unused int32
}

func (m *GetwdRequest) Encode(w io.Writer) error { return xdr.WriteInt32(w, m.Unused) }

func (m *GetwdRequest) Decode(r io.Reader) (err error) {
	m.Unused, err = xdr.DecodeInt32(r)
	return err
}

// GetwdResponse is gf1_cli_getwd_rsp.
type GetwdResponse struct {
	OpStatus
	Wd string
}

func (m *GetwdResponse) Encode(w io.Writer) error {
	if err := m.OpStatus.encode(w); err != nil {
		return err
	}
	return xdr.WriteXDRString(w, m.Wd)
}

func (m *GetwdResponse) Decode(r io.Reader) error {
	if err := m.OpStatus.decode(r); err != nil {
		return err
	}
	var err error
	if m.Wd, err = xdr.DecodeString(r); err != nil {
		return fmt.Errorf("read wd: %w", err)
	}
	return nil
}

// ============================================================================
// Mount / Umount
// ============================================================================

// MountRequest is gf1_cli_mount_req.
type MountRequest struct {
	Label string
	Dict  dict.Dict
}

func (m *MountRequest) Encode(w io.Writer) error {
	if err := xdr.WriteXDRString(w, m.Label); err != nil {
		return err
	}
	return writeDict(w, m.Dict)
}

func (m *MountRequest) Decode(r io.Reader) error {
	var err error
	if m.Label, err = xdr.DecodeString(r); err != nil {
		return fmt.Errorf("read label: %w", err)
	}
	m.Dict, err = readDict(r)
	return err
}

// MountResponse is gf1_cli_mount_rsp.
type MountResponse struct {
	OpStatus
	Path string
}

func (m *MountResponse) Encode(w io.Writer) error {
	if err := m.OpStatus.encode(w); err != nil {
		return err
	}
	return xdr.WriteXDRString(w, m.Path)
}

func (m *MountResponse) Decode(r io.Reader) error {
	if err := m.OpStatus.decode(r); err != nil {
		return err
	}
	var err error
	if m.Path, err = xdr.DecodeString(r); err != nil {
		return fmt.Errorf("read path: %w", err)
	}
	return nil
}

// UmountRequest is gf1_cli_umount_req. Lazy is 1 for a lazy unmount.
type UmountRequest struct {
	Lazy int32
	Path string
}

func (m *UmountRequest) Encode(w io.Writer) error {
	if err := xdr.WriteInt32(w, m.Lazy); err != nil {
		return err
	}
	return xdr.WriteXDRString(w, m.Path)
}

func (m *UmountRequest) Decode(r io.Reader) error {
	var err error
	if m.Lazy, err = xdr.DecodeInt32(r); err != nil {
		return fmt.Errorf("read lazy: %w", err)
	}
	if m.Path, err = xdr.DecodeString(r); err != nil {
		return fmt.Errorf("read path: %w", err)
	}
	return nil
}

// UmountResponse is gf1_cli_umount_rsp.
type UmountResponse struct {
	OpStatus
}

func (m *UmountResponse) Encode(w io.Writer) error { return m.OpStatus.encode(w) }

func (m *UmountResponse) Decode(r io.Reader) error { return m.OpStatus.decode(r) }

var (
	_ xdr.Encoder = (*CliRequest)(nil)
	_ xdr.Decoder = (*CliResponse)(nil)
	_ xdr.Encoder = (*PeerListRequest)(nil)
	_ xdr.Decoder = (*PeerListResponse)(nil)
	_ xdr.Encoder = (*FsmLogRequest)(nil)
	_ xdr.Decoder = (*FsmLogResponse)(nil)
	_ xdr.Encoder = (*GetwdRequest)(nil)
	_ xdr.Decoder = (*GetwdResponse)(nil)
	_ xdr.Encoder = (*MountRequest)(nil)
	_ xdr.Decoder = (*MountResponse)(nil)
	_ xdr.Encoder = (*UmountRequest)(nil)
	_ xdr.Decoder = (*UmountResponse)(nil)
)
