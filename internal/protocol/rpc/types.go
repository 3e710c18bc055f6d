// Package rpc implements the ONC-RPC style call/reply envelope and the
// record-marking transport used to talk to glusterd over Unix sockets.
//
// Only the parts glusterd's management programs use are supported: one
// outstanding call per connection, AUTH_NULL verifiers and the Gluster v2
// credential.
package rpc

import "fmt"

// RPCVersion is the ONC RPC protocol version carried in every call.
const RPCVersion = 2

// LastFragmentBit marks the final fragment of a record.
const LastFragmentBit = 0x80000000

// MaxFragmentLength is the largest length a fragment header can express.
const MaxFragmentLength = 0x7FFFFFFF

// Program is an RPC program number.
type Program uint32

// Procedure is a named procedure number within a program. The gluster
// command catalogs implement it; a bare integer does not.
type Procedure interface {
	ProcedureNumber() uint32
	String() string
}

// MsgType is the type of an RPC message.
type MsgType int32

const (
	Call  MsgType = 0
	Reply MsgType = 1
)

// ReplyStat says whether a call was accepted or denied.
type ReplyStat int32

const (
	MsgAccepted ReplyStat = 0
	MsgDenied   ReplyStat = 1
)

func (s ReplyStat) String() string {
	switch s {
	case MsgAccepted:
		return "MSG_ACCEPTED"
	case MsgDenied:
		return "MSG_DENIED"
	}
	return fmt.Sprintf("reply_stat(%d)", int32(s))
}

// AcceptStat is the status of an accepted call.
type AcceptStat int32

const (
	Success      AcceptStat = iota // executed successfully
	ProgUnavail                    // program not exported
	ProgMismatch                   // program version not supported
	ProcUnavail                    // procedure not supported
	GarbageArgs                    // arguments could not be decoded
	SystemErr                      // server-side error
)

func (s AcceptStat) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case ProgUnavail:
		return "PROG_UNAVAIL"
	case ProgMismatch:
		return "PROG_MISMATCH"
	case ProcUnavail:
		return "PROC_UNAVAIL"
	case GarbageArgs:
		return "GARBAGE_ARGS"
	case SystemErr:
		return "SYSTEM_ERR"
	}
	return fmt.Sprintf("accept_stat(%d)", int32(s))
}

// RejectStat is the reason a call was denied.
type RejectStat int32

const (
	RPCMismatch RejectStat = 0
	AuthError   RejectStat = 1
)

func (s RejectStat) String() string {
	switch s {
	case RPCMismatch:
		return "RPC_MISMATCH"
	case AuthError:
		return "AUTH_ERROR"
	}
	return fmt.Sprintf("reject_stat(%d)", int32(s))
}

// AuthStat is the reason authentication failed.
type AuthStat int32

const (
	AuthOk           AuthStat = iota // success
	AuthBadcred                      // bad credential
	AuthRejectedcred                 // client must begin new session
	AuthBadverf                      // bad verifier
	AuthRejectedverf                 // verifier expired or replayed
	AuthTooweak                      // rejected for security reasons
	AuthInvalidresp                  // bogus response verifier
	AuthFailed                       // reason unknown
)

var authStatNames = [...]string{
	"AUTH_OK", "AUTH_BADCRED", "AUTH_REJECTEDCRED", "AUTH_BADVERF",
	"AUTH_REJECTEDVERF", "AUTH_TOOWEAK", "AUTH_INVALIDRESP", "AUTH_FAILED",
}

func (s AuthStat) String() string {
	if s >= 0 && int(s) < len(authStatNames) {
		return authStatNames[s]
	}
	return fmt.Sprintf("auth_stat(%d)", int32(s))
}

// AuthFlavor identifies a credential or verifier format.
type AuthFlavor int32

const (
	AuthNull  AuthFlavor = 0
	AuthUnix  AuthFlavor = 1
	AuthShort AuthFlavor = 2
	AuthDes   AuthFlavor = 3

	// AuthGlusterV2 is glusterfs' own credential flavor (0x5f397).
	AuthGlusterV2 AuthFlavor = 390039
)

func (f AuthFlavor) String() string {
	switch f {
	case AuthNull:
		return "AUTH_NULL"
	case AuthUnix:
		return "AUTH_UNIX"
	case AuthShort:
		return "AUTH_SHORT"
	case AuthDes:
		return "AUTH_DES"
	case AuthGlusterV2:
		return "AUTH_GLUSTERFS_v2"
	}
	return fmt.Sprintf("auth_flavor(%d)", int32(f))
}
