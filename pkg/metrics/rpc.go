package metrics

import "time"

// Outcome labels for RecordCall.
const (
	OutcomeSuccess  = "success"
	OutcomeRPCError = "rpc_error" // reply envelope reported failure
	OutcomeOpError  = "op_error"  // glusterd returned op_ret < 0
	OutcomeIOError  = "io_error"  // dial, read, write or decode failure
)

// RPCMetrics observes outbound glusterd calls. A nil RPCMetrics disables
// collection.
type RPCMetrics interface {
	// RecordCall records one completed call.
	//   - program: "cli" or "quota"
	//   - procedure: e.g. "GLUSTER_CLI_LIST_FRIENDS"
	//   - outcome: one of the Outcome* constants
	RecordCall(program, procedure, outcome string, duration time.Duration)

	// RecordBytes records record payload bytes; direction is "sent" or "received".
	RecordBytes(direction string, n int)

	// SetInFlight adjusts the number of calls waiting for a reply.
	SetInFlight(delta int)
}

// ClusterMetrics exposes the state glusterctl watch polls from glusterd.
type ClusterMetrics interface {
	// SetPeers records the number of known and connected peers.
	SetPeers(total, connected int)

	// SetQuotaUsage records the usage of a volume root.
	SetQuotaUsage(volume string, bytes, files, dirs uint64)

	// DeleteQuotaUsage drops the usage series of a volume no longer polled.
	DeleteQuotaUsage(volume string)

	// RecordPollFailure counts a failed poll of target ("peers" or "quota").
	RecordPollFailure(target string)
}
