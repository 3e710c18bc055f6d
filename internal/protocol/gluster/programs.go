// Package gluster holds the glusterd management programs: their numbers,
// command catalogs and the typed request/response messages exchanged
// with glusterd and quotad.
package gluster

import "github.com/marmos91/glusterrpc/internal/protocol/rpc"

const (
	// ProgramCLI is glusterd's CLI program (GLUSTER_CLI_PROGRAM).
	ProgramCLI rpc.Program = 1238463
	CLIVersion uint32      = 2

	// ProgramQuota is quotad's aggregator program.
	ProgramQuota rpc.Program = 29852134
	QuotaVersion uint32      = 1
)

// Default management socket paths.
const (
	DefaultGlusterdSocket = "/var/run/glusterd.socket"
	DefaultQuotadSocket   = "/var/run/gluster/quotad.socket"
)

// ProgramName returns a short label for metrics and logs.
func ProgramName(p rpc.Program) string {
	switch p {
	case ProgramCLI:
		return "cli"
	case ProgramQuota:
		return "quota"
	}
	return "unknown"
}

var (
	_ rpc.Procedure = CliCommand(0)
	_ rpc.Procedure = AggregatorCommand(0)
)
