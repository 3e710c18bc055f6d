package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for glusterd calls.
const (
	AttrRPCSystem     = "rpc.system"
	AttrRPCService    = "rpc.service"
	AttrRPCMethod     = "rpc.method"
	AttrRPCXID        = "rpc.xid"
	AttrRPCProgram    = "rpc.program"
	AttrRPCVersion    = "rpc.version"
	AttrRPCSocket     = "rpc.socket"
	AttrRPCReplyBytes = "rpc.reply_bytes"
	AttrGlusterOpRet  = "gluster.op_ret"
	AttrGlusterErrno  = "gluster.op_errno"
	AttrGlusterVolume = "gluster.volume"
)

func RPCXID(xid uint32) attribute.KeyValue         { return attribute.Int64(AttrRPCXID, int64(xid)) }
func RPCProgram(prog uint32) attribute.KeyValue    { return attribute.Int64(AttrRPCProgram, int64(prog)) }
func RPCVersion(vers uint32) attribute.KeyValue    { return attribute.Int64(AttrRPCVersion, int64(vers)) }
func RPCSocket(path string) attribute.KeyValue     { return attribute.String(AttrRPCSocket, path) }
func RPCReplyBytes(n int) attribute.KeyValue       { return attribute.Int(AttrRPCReplyBytes, n) }
func GlusterVolume(name string) attribute.KeyValue { return attribute.String(AttrGlusterVolume, name) }

// GlusterOpResult describes a response's op_ret/op_errno pair.
func GlusterOpResult(ret, errno int32) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrGlusterOpRet, int(ret)),
		attribute.Int(AttrGlusterErrno, int(errno)),
	}
}

// StartCallSpan starts a client span named "<service>/<method>" for one
// glusterd RPC, e.g. "cli/GLUSTER_CLI_LIST_FRIENDS".
func StartCallSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	base := []attribute.KeyValue{
		attribute.String(AttrRPCSystem, "onc_rpc"),
		attribute.String(AttrRPCService, service),
		attribute.String(AttrRPCMethod, method),
	}
	return StartSpan(ctx, service+"/"+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(base, attrs...)...),
	)
}
