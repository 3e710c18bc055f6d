package client

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"net"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/glusterrpc/internal/protocol/dict"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/marmos91/glusterrpc/internal/protocol/rpc"
	"github.com/marmos91/glusterrpc/internal/protocol/xdr"
)

// ============================================================================
// Fake glusterd
// ============================================================================

// call is a request as seen by the fake server.
type call struct {
	XID       uint32
	Program   uint32
	Version   uint32
	Procedure uint32
	Cred      rpc.OpaqueAuth
	Body      []byte
}

type handlerFunc func(c call) []byte

type fakeServer struct {
	path string
	ln   net.Listener

	mu    sync.Mutex
	calls []call
}

func newFakeServer(t *testing.T, name string, h handlerFunc) *fakeServer {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)

	s := &fakeServer{path: path, ln: ln}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go s.serve(t, conn, h)
		}
	}()
	return s
}

func (s *fakeServer) serve(t *testing.T, conn net.Conn, h handlerFunc) {
	defer func() { _ = conn.Close() }()

	record, err := rpc.ReceiveRecord(conn, 0)
	if err != nil {
		return
	}
	c, err := parseCall(record)
	if err != nil {
		t.Errorf("fake server: %v", err)
		return
	}

	s.mu.Lock()
	s.calls = append(s.calls, c)
	s.mu.Unlock()

	reply := h(c)
	if reply == nil {
		return
	}
	_ = rpc.SendRecord(conn, reply)
}

func (s *fakeServer) Calls() []call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]call(nil), s.calls...)
}

func parseCall(record []byte) (call, error) {
	r := bytes.NewReader(record)
	var c call
	var err error
	fields := []*uint32{&c.XID, new(uint32), new(uint32), &c.Program, &c.Version, &c.Procedure}
	for _, f := range fields {
		if *f, err = xdr.DecodeUint32(r); err != nil {
			return call{}, err
		}
	}
	if c.Cred, err = rpc.DecodeOpaqueAuth(r); err != nil {
		return call{}, err
	}
	if _, err = rpc.DecodeOpaqueAuth(r); err != nil {
		return call{}, err
	}
	c.Body = record[len(record)-r.Len():]
	return c, nil
}

func words(vals ...uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(b[4*i:], v)
	}
	return b
}

// successReply builds an accepted SUCCESS reply carrying msg.
func successReply(t *testing.T, xid uint32, msg xdr.Encoder) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(words(xid, 1, 0, 0, 0, 0))
	require.NoError(t, msg.Encode(&buf))
	return buf.Bytes()
}

func newTestClient(t *testing.T, glusterd, quotad string, opts ...Option) *Client {
	t.Helper()
	c, err := New(Config{
		GlusterdSocket: glusterd,
		QuotadSocket:   quotad,
		Timeout:        2 * time.Second,
	}, opts...)
	require.NoError(t, err)
	return c
}

// ============================================================================
// Construction
// ============================================================================

func TestNewAppliesDefaults(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)

	cfg := c.Config()
	assert.Equal(t, gluster.DefaultGlusterdSocket, cfg.GlusterdSocket)
	assert.Equal(t, gluster.DefaultQuotadSocket, cfg.QuotadSocket)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, uint32(rpc.DefaultMaxRecordSize), cfg.MaxRecordSize)
}

func TestNewCredentialFromConfig(t *testing.T) {
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		return successReply(t, c.XID, &gluster.GetwdResponse{Wd: "/var/lib/glusterd"})
	})

	c, err := New(Config{GlusterdSocket: srv.path, Pid: 0x1092, UID: 1000, GID: 100})
	require.NoError(t, err)
	_, err = c.Getwd(context.Background())
	require.NoError(t, err)

	calls := srv.Calls()
	require.Len(t, calls, 1)
	cred, err := rpc.ParseGlusterCredV2(calls[0].Cred)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1092), cred.Pid)
	assert.Equal(t, uint32(1000), cred.UID)
	assert.Equal(t, uint32(100), cred.GID)
	assert.Equal(t, []byte{0x92, 0x10, 0, 0}, cred.LockOwner)
}

// ============================================================================
// Call
// ============================================================================

func TestCallSendsCLIHeader(t *testing.T) {
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		return successReply(t, c.XID, &gluster.PeerListResponse{Friends: dict.Dict{}})
	})
	c := newTestClient(t, srv.path, "")

	_, err := c.PeerDict(context.Background())
	require.NoError(t, err)

	calls := srv.Calls()
	require.Len(t, calls, 1)
	got := calls[0]
	assert.Equal(t, uint32(1), got.XID)
	assert.Equal(t, uint32(gluster.ProgramCLI), got.Program)
	assert.Equal(t, gluster.CLIVersion, got.Version)
	assert.Equal(t, uint32(gluster.CliListFriends), got.Procedure)
	assert.Equal(t, rpc.AuthGlusterV2, got.Cred.Flavor)
	assert.Equal(t, words(2, 0), got.Body) // flags, empty dict
}

func TestCallWithXID(t *testing.T) {
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		return successReply(t, c.XID, &gluster.GetwdResponse{Wd: "/"})
	})
	c := newTestClient(t, srv.path, "", WithXID(100))

	for i := 0; i < 3; i++ {
		_, err := c.Getwd(context.Background())
		require.NoError(t, err)
	}

	var xids []uint32
	for _, cl := range srv.Calls() {
		xids = append(xids, cl.XID)
	}
	assert.ElementsMatch(t, []uint32{100, 101, 102}, xids)
}

func TestCallXIDMismatch(t *testing.T) {
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		return successReply(t, c.XID+1, &gluster.GetwdResponse{Wd: "/"})
	})
	c := newTestClient(t, srv.path, "")

	_, err := c.Getwd(context.Background())
	assert.ErrorIs(t, err, rpc.ErrXIDMismatch)
}

func TestCallReplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply func(xid uint32) []byte
		is    error
	}{
		{"ProcUnavail", func(xid uint32) []byte { return words(xid, 1, 0, 0, 0, 3) }, rpc.ErrProcUnavail},
		{"AuthError", func(xid uint32) []byte { return words(xid, 1, 1, 1, 1) }, rpc.ErrAuthError},
		{"NotAReply", func(xid uint32) []byte { return words(xid, 0) }, rpc.ErrInvalidReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeServer(t, "glusterd.sock", func(c call) []byte { return tt.reply(c.XID) })
			c := newTestClient(t, srv.path, "")

			_, err := c.Getwd(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.True(t, rpc.IsProtocolError(err))
		})
	}
}

func TestCallTruncatedResults(t *testing.T) {
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		return append(words(c.XID, 1, 0, 0, 0, 0), 0, 0)
	})
	c := newTestClient(t, srv.path, "")

	_, err := c.Getwd(context.Background())
	require.Error(t, err)
	assert.False(t, rpc.IsProtocolError(err))
}

func TestCallDialError(t *testing.T) {
	c := newTestClient(t, filepath.Join(t.TempDir(), "missing.sock"), "")

	_, err := c.Getwd(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial")
}

func TestCallServerClosesWithoutReply(t *testing.T) {
	srv := newFakeServer(t, "glusterd.sock", func(call) []byte { return nil })
	c := newTestClient(t, srv.path, "")

	_, err := c.Getwd(context.Background())
	require.Error(t, err)
}

func TestCallContextCancel(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		<-release
		return nil
	})
	c := newTestClient(t, srv.path, "")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Getwd(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCallCustomDialer(t *testing.T) {
	client, server := net.Pipe()
	go func() {
		defer func() { _ = server.Close() }()
		record, err := rpc.ReceiveRecord(server, 0)
		if err != nil {
			return
		}
		xid := binary.BigEndian.Uint32(record[:4])
		var buf bytes.Buffer
		buf.Write(words(xid, 1, 0, 0, 0, 0))
		_ = (&gluster.UmountResponse{}).Encode(&buf)
		_ = rpc.SendRecord(server, buf.Bytes())
	}()

	dialed := ""
	c := newTestClient(t, "/nonexistent/glusterd.sock", "", WithDialer(func(_ context.Context, path string) (net.Conn, error) {
		dialed = path
		return client, nil
	}))

	require.NoError(t, c.Umount(context.Background(), "/mnt/x", false))
	assert.Equal(t, "/nonexistent/glusterd.sock", dialed)
}

func TestCallRejectsNilProcedure(t *testing.T) {
	c := newTestClient(t, "/tmp/x.sock", "")
	err := c.Call(context.Background(), "/tmp/x.sock", gluster.ProgramCLI, gluster.CLIVersion, nil, nil, nil)
	assert.Error(t, err)
}

// ============================================================================
// Metrics
// ============================================================================

type recordedCall struct {
	program, procedure, outcome string
}

type fakeMetrics struct {
	mu       sync.Mutex
	calls    []recordedCall
	bytes    map[string]int
	inFlight int
}

func (m *fakeMetrics) RecordCall(program, procedure, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, recordedCall{program, procedure, outcome})
}

func (m *fakeMetrics) RecordBytes(direction string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bytes == nil {
		m.bytes = map[string]int{}
	}
	m.bytes[direction] += n
}

func (m *fakeMetrics) SetInFlight(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight += delta
}

func TestCallRecordsMetrics(t *testing.T) {
	var fail atomic.Bool
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		if fail.Load() {
			return successReply(t, c.XID, &gluster.GetwdResponse{OpStatus: gluster.OpStatus{OpRet: -1, OpErrno: 2}})
		}
		return successReply(t, c.XID, &gluster.GetwdResponse{Wd: "/var/lib/glusterd"})
	})
	m := &fakeMetrics{}
	c := newTestClient(t, srv.path, "", WithMetrics(m))

	_, err := c.Getwd(context.Background())
	require.NoError(t, err)

	fail.Store(true)
	_, err = c.Getwd(context.Background())
	require.ErrorIs(t, err, gluster.ErrOpFailed)

	require.Len(t, m.calls, 2)
	assert.Equal(t, recordedCall{"cli", "GLUSTER_CLI_GETWD", "success"}, m.calls[0])
	assert.Equal(t, recordedCall{"cli", "GLUSTER_CLI_GETWD", "op_error"}, m.calls[1])
	assert.Equal(t, 0, m.inFlight)
	assert.Greater(t, m.bytes["sent"], 0)
	assert.Greater(t, m.bytes["received"], 0)
}

// ============================================================================
// Operations
// ============================================================================

func TestListPeers(t *testing.T) {
	id := uuid.MustParse("40726b80-bc05-41f3-ba97-504ce3301ece")
	friends := dict.Dict{}
	friends.SetString("count", "2")
	friends.SetString("friend1.hostname", "localhost")
	friends.SetString("friend1.uuid", id.String())
	friends.SetString("friend1.connected", "1")
	friends.SetString("friend2.hostname", "node2")
	friends.SetString("friend2.connected", "0")
	friends.SetString("friend2.stateStr", "Peer in Cluster")

	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		return successReply(t, c.XID, &gluster.PeerListResponse{Friends: friends})
	})
	c := newTestClient(t, srv.path, "")

	peers, err := c.ListPeers(context.Background())
	require.NoError(t, err)
	require.Len(t, peers, 2)
	assert.Equal(t, "localhost", peers[0].Hostname)
	assert.Equal(t, id, peers[0].UUID)
	assert.True(t, peers[0].Connected)
	assert.Equal(t, "node2", peers[1].Hostname)
	assert.False(t, peers[1].Connected)
	assert.Equal(t, "Peer in Cluster", peers[1].State)
}

func TestListPeersOpFailure(t *testing.T) {
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		return successReply(t, c.XID, &gluster.PeerListResponse{OpStatus: gluster.OpStatus{OpRet: -1, OpErrno: 107}})
	})
	c := newTestClient(t, srv.path, "")

	_, err := c.ListPeers(context.Background())
	var opErr *gluster.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, int32(107), opErr.OpErrno)
	assert.Equal(t, "GLUSTER_CLI_LIST_FRIENDS", opErr.Procedure)
}

func quotaSize(size, files, dirs uint64) []byte {
	b := make([]byte, 24)
	binary.BigEndian.PutUint64(b[0:], size)
	binary.BigEndian.PutUint64(b[8:], files)
	binary.BigEndian.PutUint64(b[16:], dirs)
	return b
}

func TestQuotaUsage(t *testing.T) {
	var sent dict.Dict
	srv := newFakeServer(t, "quotad.sock", func(c call) []byte {
		var req gluster.CliRequest
		if err := req.Decode(bytes.NewReader(c.Body)); err == nil {
			sent = req.Dict
		}
		reply := dict.Dict{gluster.QuotaSizeKey: quotaSize(5268045824, 1, 4)}
		return successReply(t, c.XID, &gluster.CliResponse{Dict: reply})
	})
	c := newTestClient(t, "", srv.path)

	usage, err := c.QuotaUsage(context.Background(), "gv0")
	require.NoError(t, err)
	assert.Equal(t, gluster.QuotaUsage{Size: 5268045824, FileCount: 1, DirCount: 4}, usage)

	calls := srv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, uint32(gluster.ProgramQuota), calls[0].Program)
	assert.Equal(t, gluster.QuotaVersion, calls[0].Version)
	assert.Equal(t, uint32(gluster.AggregatorGetlimit), calls[0].Procedure)

	v, _ := sent.GetString("volume-uuid")
	assert.Equal(t, "gv0", v)
	gfid, _ := sent.GetString("gfid")
	assert.Equal(t, gluster.RootGFID, gfid)
}

func TestQuotaUsageErrors(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		srv := newFakeServer(t, "quotad.sock", func(c call) []byte {
			return successReply(t, c.XID, &gluster.CliResponse{Dict: dict.Dict{}})
		})
		c := newTestClient(t, "", srv.path)

		_, err := c.QuotaUsage(context.Background(), "gv0")
		assert.ErrorIs(t, err, gluster.ErrMissingKey)
	})

	t.Run("OpFailed", func(t *testing.T) {
		srv := newFakeServer(t, "quotad.sock", func(c call) []byte {
			return successReply(t, c.XID, &gluster.CliResponse{
				OpStatus: gluster.OpStatus{OpRet: -1, OpErrno: 2},
				OpErrstr: "quota not enabled",
			})
		})
		c := newTestClient(t, "", srv.path)

		_, err := c.QuotaUsage(context.Background(), "gv0")
		require.ErrorIs(t, err, gluster.ErrOpFailed)
		assert.Contains(t, err.Error(), "quota not enabled")
	})

	t.Run("InvalidGFID", func(t *testing.T) {
		c := newTestClient(t, "", "/nonexistent")
		_, err := c.QuotaUsageFor(context.Background(), "gv0", "not-a-gfid")
		assert.Error(t, err)
	})
}

func TestFsmLog(t *testing.T) {
	entries := dict.Dict{}
	entries.SetString("count", "1")
	entries.SetString("log0.old-state", "Befriended")
	blob, err := dict.Serialize(entries)
	require.NoError(t, err)

	var name string
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		var req gluster.FsmLogRequest
		if err := req.Decode(bytes.NewReader(c.Body)); err == nil {
			name = req.Name
		}
		return successReply(t, c.XID, &gluster.FsmLogResponse{FsmLog: blob})
	})
	c := newTestClient(t, srv.path, "")

	got, err := c.FsmLog(context.Background(), "node2")
	require.NoError(t, err)
	assert.Equal(t, "node2", name)
	s, _ := got.GetString("log0.old-state")
	assert.Equal(t, "Befriended", s)
}

func TestMountUmount(t *testing.T) {
	var lazy int32 = -1
	srv := newFakeServer(t, "glusterd.sock", func(c call) []byte {
		switch gluster.CliCommand(c.Procedure) {
		case gluster.CliMount:
			return successReply(t, c.XID, &gluster.MountResponse{Path: "/var/run/gluster/mnt/abc"})
		case gluster.CliUmount:
			var req gluster.UmountRequest
			if err := req.Decode(bytes.NewReader(c.Body)); err == nil {
				lazy = req.Lazy
			}
			return successReply(t, c.XID, &gluster.UmountResponse{})
		}
		return words(c.XID, 1, 0, 0, 0, 3)
	})
	c := newTestClient(t, srv.path, "")

	opts := dict.Dict{}
	opts.SetString("user-map-root", "root")
	path, err := c.Mount(context.Background(), "geo-replication", opts)
	require.NoError(t, err)
	assert.Equal(t, "/var/run/gluster/mnt/abc", path)

	require.NoError(t, c.Umount(context.Background(), path, true))
	assert.Equal(t, int32(1), lazy)
}
