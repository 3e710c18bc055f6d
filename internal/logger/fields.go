package logger

import (
	"fmt"
	"log/slog"
)

// Standard field keys. Use these in every log statement so call logs can
// be filtered by program, procedure or socket.
const (
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"

	// RPC call
	KeyProgram    = "program"
	KeyVersion    = "version"
	KeyProcedure  = "procedure"
	KeyXID        = "xid"
	KeySocket     = "socket"
	KeyBytesSent  = "bytes_sent"
	KeyBytesRecv  = "bytes_recv"
	KeyFragments  = "fragments"
	KeyAuthFlavor = "auth_flavor"

	// Management results
	KeyOpRet    = "op_ret"
	KeyOpErrno  = "op_errno"
	KeyOpErrstr = "op_errstr"
	KeyVolume   = "volume"
	KeyPeer     = "peer"
	KeyPath     = "path"
	KeyCount    = "count"

	KeyDurationMs = "duration_ms"
	KeyError      = "error"
)

func Program(name string) slog.Attr     { return slog.String(KeyProgram, name) }
func Procedure(name string) slog.Attr   { return slog.String(KeyProcedure, name) }
func XID(xid uint32) slog.Attr          { return slog.String(KeyXID, fmt.Sprintf("0x%08x", xid)) }
func Socket(path string) slog.Attr      { return slog.String(KeySocket, path) }
func BytesSent(n int) slog.Attr         { return slog.Int(KeyBytesSent, n) }
func BytesRecv(n int) slog.Attr         { return slog.Int(KeyBytesRecv, n) }
func Volume(name string) slog.Attr      { return slog.String(KeyVolume, name) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr             { return slog.Int(KeyCount, n) }
func DurationMs(ms float64) slog.Attr   { return slog.Float64(KeyDurationMs, ms) }
func AuthFlavor(flavor int32) slog.Attr { return slog.Int64(KeyAuthFlavor, int64(flavor)) }

// OpResult describes the op_ret/op_errno pair of a glusterd response.
func OpResult(ret, errno int32) slog.Attr {
	return slog.Group("op", slog.Int64("ret", int64(ret)), slog.Int64("errno", int64(errno)))
}

// Err returns an error attribute, or an empty attribute for nil.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
