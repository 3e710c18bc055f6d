package logger

import (
	"context"
	"time"
)

type contextKey struct{}

var logContextKey = contextKey{}

// LogContext holds the fields of one outbound RPC call.
type LogContext struct {
	TraceID   string
	SpanID    string
	Program   string // glusterd program name, e.g. "cli" or "quota"
	Procedure string // e.g. GLUSTER_CLI_LIST_FRIENDS
	XID       uint32
	Socket    string // Unix socket path the call was sent to
	StartTime time.Time
}

// WithContext returns a new context carrying lc.
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext returns the LogContext stored in ctx, or nil.
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewCallContext starts a LogContext for a call to socket.
func NewCallContext(socket string) *LogContext {
	return &LogContext{
		Socket:    socket,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	c := *lc
	return &c
}

// WithCall returns a copy with program, procedure and xid set.
func (lc *LogContext) WithCall(program, procedure string, xid uint32) *LogContext {
	c := lc.Clone()
	if c != nil {
		c.Program = program
		c.Procedure = procedure
		c.XID = xid
	}
	return c
}

// WithTrace returns a copy with trace info set
func (lc *LogContext) WithTrace(traceID, spanID string) *LogContext {
	c := lc.Clone()
	if c != nil {
		c.TraceID = traceID
		c.SpanID = spanID
	}
	return c
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return Duration(lc.StartTime)
}
