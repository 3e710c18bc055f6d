package gluster

import "fmt"

// CliCommand is a procedure of the glusterd CLI program. The values are
// glusterd's procedure numbers and must not be renumbered.
type CliCommand uint32

const (
	CliNull CliCommand = iota
	CliProbe
	CliDeprobe
	CliListFriends
	CliCreateVolume
	CliGetVolume
	CliGetNextVolume
	CliDeleteVolume
	CliStartVolume
	CliStopVolume
	CliRenameVolume
	CliDefragVolume
	CliSetVolume
	CliAddBrick
	CliRemoveBrick
	CliReplaceBrick
	CliLogRotate
	CliGetspec
	CliPmapPortByBrick
	CliSyncVolume
	CliResetVolume
	CliFsmLog
	CliGsyncSet
	CliProfileVolume
	CliQuota
	CliTopVolume
	CliGetwd
	CliStatusVolume
	CliStatusAll
	CliMount
	CliUmount
	CliHealVolume
	CliStatedumpVolume
	CliListVolume
	CliClrlocksVolume
	CliUUIDReset
	CliUUIDGet
	CliCopyFile
	CliSysExec
	CliSnap
	CliBarrierVolume
	CliGetVolOpt
	CliGanesha
	CliBitrot
	CliAttachTier
	CliDetachTier
	CliMaxValue
)

var cliCommandNames = [...]string{
	"GLUSTER_CLI_NULL",
	"GLUSTER_CLI_PROBE",
	"GLUSTER_CLI_DEPROBE",
	"GLUSTER_CLI_LIST_FRIENDS",
	"GLUSTER_CLI_CREATE_VOLUME",
	"GLUSTER_CLI_GET_VOLUME",
	"GLUSTER_CLI_GET_NEXT_VOLUME",
	"GLUSTER_CLI_DELETE_VOLUME",
	"GLUSTER_CLI_START_VOLUME",
	"GLUSTER_CLI_STOP_VOLUME",
	"GLUSTER_CLI_RENAME_VOLUME",
	"GLUSTER_CLI_DEFRAG_VOLUME",
	"GLUSTER_CLI_SET_VOLUME",
	"GLUSTER_CLI_ADD_BRICK",
	"GLUSTER_CLI_REMOVE_BRICK",
	"GLUSTER_CLI_REPLACE_BRICK",
	"GLUSTER_CLI_LOG_ROTATE",
	"GLUSTER_CLI_GETSPEC",
	"GLUSTER_CLI_PMAP_PORTBYBRICK",
	"GLUSTER_CLI_SYNC_VOLUME",
	"GLUSTER_CLI_RESET_VOLUME",
	"GLUSTER_CLI_FSM_LOG",
	"GLUSTER_CLI_GSYNC_SET",
	"GLUSTER_CLI_PROFILE_VOLUME",
	"GLUSTER_CLI_QUOTA",
	"GLUSTER_CLI_TOP_VOLUME",
	"GLUSTER_CLI_GETWD",
	"GLUSTER_CLI_STATUS_VOLUME",
	"GLUSTER_CLI_STATUS_ALL",
	"GLUSTER_CLI_MOUNT",
	"GLUSTER_CLI_UMOUNT",
	"GLUSTER_CLI_HEAL_VOLUME",
	"GLUSTER_CLI_STATEDUMP_VOLUME",
	"GLUSTER_CLI_LIST_VOLUME",
	"GLUSTER_CLI_CLRLOCKS_VOLUME",
	"GLUSTER_CLI_UUID_RESET",
	"GLUSTER_CLI_UUID_GET",
	"GLUSTER_CLI_COPY_FILE",
	"GLUSTER_CLI_SYS_EXEC",
	"GLUSTER_CLI_SNAP",
	"GLUSTER_CLI_BARRIER_VOLUME",
	"GLUSTER_CLI_GET_VOL_OPT",
	"GLUSTER_CLI_GANESHA",
	"GLUSTER_CLI_BITROT",
	"GLUSTER_CLI_ATTACH_TIER",
	"GLUSTER_CLI_DETACH_TIER",
	"GLUSTER_CLI_MAXVALUE",
}

// ProcedureNumber implements rpc.Procedure.
func (c CliCommand) ProcedureNumber() uint32 { return uint32(c) }

func (c CliCommand) String() string {
	if int(c) < len(cliCommandNames) {
		return cliCommandNames[c]
	}
	return fmt.Sprintf("GLUSTER_CLI_%d", uint32(c))
}

// AggregatorCommand is a procedure of the quota aggregator program.
type AggregatorCommand uint32

const (
	AggregatorNull AggregatorCommand = iota
	AggregatorLookup
	AggregatorGetlimit
	AggregatorMaxValue
)

var aggregatorCommandNames = [...]string{
	"GF_AGGREGATOR_NULL",
	"GF_AGGREGATOR_LOOKUP",
	"GF_AGGREGATOR_GETLIMIT",
	"GF_AGGREGATOR_MAXVALUE",
}

// ProcedureNumber implements rpc.Procedure.
func (c AggregatorCommand) ProcedureNumber() uint32 { return uint32(c) }

func (c AggregatorCommand) String() string {
	if int(c) < len(aggregatorCommandNames) {
		return aggregatorCommandNames[c]
	}
	return fmt.Sprintf("GF_AGGREGATOR_%d", uint32(c))
}
