// Package client issues glusterd management calls over local Unix sockets.
//
// Every call opens its own connection, sends one record and reads one
// reply, so a Client can be shared between goroutines without locking.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/marmos91/glusterrpc/internal/logger"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/marmos91/glusterrpc/internal/protocol/rpc"
	"github.com/marmos91/glusterrpc/internal/protocol/xdr"
	"github.com/marmos91/glusterrpc/internal/telemetry"
	"github.com/marmos91/glusterrpc/pkg/metrics"
)

// DefaultTimeout bounds a call when the context carries no earlier deadline.
const DefaultTimeout = 30 * time.Second

// Config holds the connection settings of a Client.
type Config struct {
	GlusterdSocket string
	QuotadSocket   string
	Timeout        time.Duration
	MaxRecordSize  uint32

	// Credential identity sent with every call. Zero values match the
	// gluster CLI.
	Pid uint32
	UID uint32
	GID uint32
}

// DefaultConfig returns the settings used by the gluster CLI.
func DefaultConfig() Config {
	return Config{
		GlusterdSocket: gluster.DefaultGlusterdSocket,
		QuotadSocket:   gluster.DefaultQuotadSocket,
		Timeout:        DefaultTimeout,
		MaxRecordSize:  rpc.DefaultMaxRecordSize,
	}
}

// DialFunc opens a connection to the socket at path.
type DialFunc func(ctx context.Context, path string) (net.Conn, error)

// Option configures a Client.
type Option func(*Client)

// WithMetrics records per-call metrics on m. A nil m disables collection.
func WithMetrics(m metrics.RPCMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithDialer replaces the Unix socket dialer.
func WithDialer(d DialFunc) Option {
	return func(c *Client) { c.dial = d }
}

// WithXID makes the client number its calls from start, incrementing
// by one per call. Without it every call uses xid 1, like the gluster CLI.
func WithXID(start uint32) Option {
	return func(c *Client) {
		c.xid = new(atomic.Uint32)
		c.xid.Store(start - 1)
	}
}

// Client is a glusterd management client.
type Client struct {
	cfg     Config
	cred    []byte
	verf    []byte
	dial    DialFunc
	metrics metrics.RPCMetrics
	xid     *atomic.Uint32
}

// New creates a client. Zero fields of cfg take their DefaultConfig value.
func New(cfg Config, opts ...Option) (*Client, error) {
	def := DefaultConfig()
	if cfg.GlusterdSocket == "" {
		cfg.GlusterdSocket = def.GlusterdSocket
	}
	if cfg.QuotadSocket == "" {
		cfg.QuotadSocket = def.QuotadSocket
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRecordSize == 0 {
		cfg.MaxRecordSize = def.MaxRecordSize
	}

	cred := rpc.DefaultCredV2()
	cred.Pid, cred.UID, cred.GID = cfg.Pid, cfg.UID, cfg.GID
	if cfg.Pid != 0 {
		cred.LockOwner = rpc.LockOwnerFromPid(cfg.Pid)
	}
	credBytes, err := cred.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode credential: %w", err)
	}
	verfBytes, err := rpc.NullAuth().Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode verifier: %w", err)
	}

	c := &Client{
		cfg:  cfg,
		cred: credBytes,
		verf: verfBytes,
		dial: dialUnix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config { return c.cfg }

func dialUnix(ctx context.Context, path string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "unix", path)
}

func (c *Client) nextXID() uint32 {
	if c.xid == nil {
		return 1
	}
	return c.xid.Add(1)
}

// Call sends one request to socket and decodes the reply into resp.
//
// The connection is closed before Call returns. Cancelling ctx closes it
// early, which unblocks a pending read.
func (c *Client) Call(ctx context.Context, socket string, program rpc.Program, version uint32, proc rpc.Procedure, req xdr.Encoder, resp xdr.Decoder) (err error) {
	if proc == nil {
		return errors.New("client: nil procedure")
	}
	if socket == "" {
		return errors.New("client: empty socket path")
	}

	xid := c.nextXID()
	progName := gluster.ProgramName(program)
	procName := proc.String()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	ctx, span := telemetry.StartCallSpan(ctx, progName, procName,
		telemetry.RPCXID(xid),
		telemetry.RPCProgram(uint32(program)),
		telemetry.RPCVersion(version),
		telemetry.RPCSocket(socket),
	)
	defer span.End()

	lc := logger.NewCallContext(socket).
		WithCall(progName, procName, xid).
		WithTrace(telemetry.TraceID(ctx), telemetry.SpanID(ctx))
	ctx = logger.WithContext(ctx, lc)

	if c.metrics != nil {
		c.metrics.SetInFlight(1)
		defer c.metrics.SetInFlight(-1)
	}

	sent, recv := 0, 0
	opFailed := false
	defer func() {
		outcome := classify(err)
		if opFailed {
			outcome = metrics.OutcomeOpError
		}
		if c.metrics != nil {
			c.metrics.RecordCall(progName, procName, outcome, time.Since(lc.StartTime))
			c.metrics.RecordBytes("sent", sent)
			c.metrics.RecordBytes("received", recv)
		}
		telemetry.RecordError(ctx, err)
		if err != nil {
			logger.DebugCtx(ctx, "call failed",
				logger.BytesSent(sent), logger.BytesRecv(recv),
				logger.DurationMs(lc.DurationMs()), logger.Err(err))
			return
		}
		logger.DebugCtx(ctx, "call complete",
			logger.BytesSent(sent), logger.BytesRecv(recv),
			logger.DurationMs(lc.DurationMs()))
	}()

	hdr, err := rpc.BuildCallHeader(xid, program, version, proc, c.cred, c.verf)
	if err != nil {
		return fmt.Errorf("build call header: %w", err)
	}
	msg := bytes.NewBuffer(hdr)
	if req != nil {
		if err := req.Encode(msg); err != nil {
			return fmt.Errorf("encode %s request: %w", procName, err)
		}
	}

	conn, err := c.dial(ctx, socket)
	if err != nil {
		return fmt.Errorf("dial %s: %w", socket, err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("set deadline: %w", err)
		}
	}

	// Closing the connection is the only way to interrupt a blocked read.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if err := rpc.SendRecord(conn, msg.Bytes()); err != nil {
		return c.ioError(ctx, err)
	}
	sent = msg.Len()

	record, err := rpc.ReceiveRecord(conn, c.cfg.MaxRecordSize)
	if err != nil {
		return c.ioError(ctx, err)
	}
	recv = len(record)
	telemetry.AddEvent(ctx, "reply", telemetry.RPCReplyBytes(recv))

	r := bytes.NewReader(record)
	reply, err := rpc.ParseReplyHeader(r)
	if err != nil {
		return err
	}
	if reply.XID != xid {
		return fmt.Errorf("%w: sent 0x%08x, got 0x%08x", rpc.ErrXIDMismatch, xid, reply.XID)
	}

	if resp != nil {
		if err := resp.Decode(r); err != nil {
			return fmt.Errorf("decode %s reply: %w", procName, err)
		}
		if st, ok := resp.(interface{ Failed() bool }); ok {
			opFailed = st.Failed()
		}
	}
	return nil
}

// ioError prefers the context's error when the connection was torn down
// because ctx ended.
func (c *Client) ioError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", ctxErr, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return err
}

func classify(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, gluster.ErrOpFailed):
		return metrics.OutcomeOpError
	case rpc.IsProtocolError(err):
		return metrics.OutcomeRPCError
	}
	return metrics.OutcomeIOError
}
