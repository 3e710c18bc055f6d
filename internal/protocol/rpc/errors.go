package rpc

import (
	"errors"
	"fmt"
)

// Reply and transport errors. Callers match them with errors.Is; the
// structured types below carry the detail and unwrap to these sentinels.
var (
	// ErrInvalidReply indicates the message type was not REPLY.
	ErrInvalidReply = errors.New("rpc: invalid reply")

	// ErrDenied indicates the server rejected the call (MSG_DENIED).
	ErrDenied = errors.New("rpc: call denied")

	// ErrRPCMismatch indicates the server does not speak RPC version 2.
	ErrRPCMismatch = errors.New("rpc: RPC version mismatch")

	// ErrAuthError indicates the server rejected the credential.
	ErrAuthError = errors.New("rpc: authentication error")

	// ErrAcceptedButFailed indicates MSG_ACCEPTED with a non-SUCCESS status.
	ErrAcceptedButFailed = errors.New("rpc: call accepted but failed")

	ErrProgUnavail         = errors.New("rpc: program unavailable")
	ErrProgMismatch        = errors.New("rpc: program version mismatch")
	ErrProcUnavail         = errors.New("rpc: procedure unavailable")
	ErrGarbageArgs         = errors.New("rpc: garbage arguments")
	ErrSystemErr           = errors.New("rpc: system error")
	ErrUnknownAcceptStatus = errors.New("rpc: unknown accept status")

	// ErrNeitherAcceptedNorDenied indicates a reply_stat other than 0 or 1.
	ErrNeitherAcceptedNorDenied = errors.New("rpc: reply neither accepted nor denied")

	// ErrXIDMismatch indicates a reply for a different call.
	ErrXIDMismatch = errors.New("rpc: reply xid does not match call")

	// ErrFragmentTooLarge indicates a fragment or record above the configured limit.
	ErrFragmentTooLarge = errors.New("rpc: fragment too large")
)

// InvalidReplyError reports a message whose type was not REPLY.
type InvalidReplyError struct {
	MsgType MsgType
}

func (e *InvalidReplyError) Error() string {
	return fmt.Sprintf("rpc: invalid reply: message type %d", int32(e.MsgType))
}

func (e *InvalidReplyError) Unwrap() error { return ErrInvalidReply }

// DeniedError reports a MSG_DENIED reply.
type DeniedError struct {
	Reason RejectStat
	Low    uint32   // RPC_MISMATCH only
	High   uint32   // RPC_MISMATCH only
	Auth   AuthStat // AUTH_ERROR only
}

func (e *DeniedError) Error() string {
	switch e.Reason {
	case RPCMismatch:
		return fmt.Sprintf("rpc: call denied: RPC version mismatch (supported %d-%d)", e.Low, e.High)
	case AuthError:
		return fmt.Sprintf("rpc: call denied: authentication error %d (%s)", int32(e.Auth), e.Auth)
	}
	return fmt.Sprintf("rpc: call denied: reason %d", int32(e.Reason))
}

func (e *DeniedError) Unwrap() []error {
	switch e.Reason {
	case RPCMismatch:
		return []error{ErrDenied, ErrRPCMismatch}
	case AuthError:
		return []error{ErrDenied, ErrAuthError}
	}
	return []error{ErrDenied}
}

// AcceptError reports a MSG_ACCEPTED reply whose status is not SUCCESS.
type AcceptError struct {
	Stat AcceptStat
	Low  uint32 // PROG_MISMATCH only
	High uint32 // PROG_MISMATCH only
}

func (e *AcceptError) Error() string {
	if e.Stat == ProgMismatch {
		return fmt.Sprintf("rpc: program version mismatch (supported %d-%d)", e.Low, e.High)
	}
	return fmt.Sprintf("rpc: call accepted but failed: %s", e.Stat)
}

func (e *AcceptError) Unwrap() []error {
	errs := []error{ErrAcceptedButFailed, e.sentinel()}
	if e.Stat == SystemErr {
		errs = append(errs, ErrUnknownAcceptStatus)
	}
	return errs
}

func (e *AcceptError) sentinel() error {
	switch e.Stat {
	case ProgUnavail:
		return ErrProgUnavail
	case ProgMismatch:
		return ErrProgMismatch
	case ProcUnavail:
		return ErrProcUnavail
	case GarbageArgs:
		return ErrGarbageArgs
	case SystemErr:
		return ErrSystemErr
	}
	return ErrUnknownAcceptStatus
}

// ReplyStatError reports a reply_stat that is neither accepted nor denied.
type ReplyStatError struct {
	Stat ReplyStat
}

func (e *ReplyStatError) Error() string {
	return fmt.Sprintf("rpc: reply neither accepted nor denied (stat %d)", int32(e.Stat))
}

func (e *ReplyStatError) Unwrap() error { return ErrNeitherAcceptedNorDenied }

// IsProtocolError reports whether err came from the RPC reply envelope, as
// opposed to I/O or message decoding.
func IsProtocolError(err error) bool {
	return errors.Is(err, ErrInvalidReply) ||
		errors.Is(err, ErrDenied) ||
		errors.Is(err, ErrAcceptedButFailed) ||
		errors.Is(err, ErrNeitherAcceptedNorDenied) ||
		errors.Is(err, ErrXIDMismatch)
}
