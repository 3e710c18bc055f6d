package rpc

import (
	"fmt"
	"io"

	"github.com/marmos91/glusterrpc/internal/protocol/xdr"
)

// ReplyHeader is what remains of a successful reply envelope.
type ReplyHeader struct {
	XID  uint32
	Verf OpaqueAuth
}

// ParseReplyHeader consumes a reply envelope from r.
//
// On success r is positioned at the first byte of the procedure results,
// so the same reader can be handed to the response decoder. Every other
// outcome is returned as an error: *InvalidReplyError, *DeniedError,
// *AcceptError or *ReplyStatError, or a wrapped I/O error if the
// envelope is truncated.
func ParseReplyHeader(r io.Reader) (*ReplyHeader, error) {
	xid, err := xdr.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read xid: %w", err)
	}

	msgType, err := xdr.DecodeInt32(r)
	if err != nil {
		return nil, fmt.Errorf("read message type: %w", err)
	}
	if MsgType(msgType) != Reply {
		return nil, &InvalidReplyError{MsgType: MsgType(msgType)}
	}

	stat, err := xdr.DecodeUnionDiscriminant(r)
	if err != nil {
		return nil, fmt.Errorf("read reply stat: %w", err)
	}

	switch ReplyStat(stat) {
	case MsgDenied:
		return nil, parseRejected(r)
	case MsgAccepted:
		verf, err := DecodeOpaqueAuth(r)
		if err != nil {
			return nil, fmt.Errorf("read verifier: %w", err)
		}
		if err := parseAccepted(r); err != nil {
			return nil, err
		}
		return &ReplyHeader{XID: xid, Verf: verf}, nil
	default:
		return nil, &ReplyStatError{Stat: ReplyStat(stat)}
	}
}

func parseRejected(r io.Reader) error {
	reason, err := xdr.DecodeUnionDiscriminant(r)
	if err != nil {
		return fmt.Errorf("read reject stat: %w", err)
	}

	denied := &DeniedError{Reason: RejectStat(reason)}
	switch denied.Reason {
	case RPCMismatch:
		if denied.Low, denied.High, err = readMismatch(r); err != nil {
			return err
		}
	case AuthError:
		code, err := xdr.DecodeInt32(r)
		if err != nil {
			return fmt.Errorf("read auth stat: %w", err)
		}
		denied.Auth = AuthStat(code)
	}
	return denied
}

func parseAccepted(r io.Reader) error {
	stat, err := xdr.DecodeUnionDiscriminant(r)
	if err != nil {
		return fmt.Errorf("read accept stat: %w", err)
	}

	switch AcceptStat(stat) {
	case Success:
		return nil
	case ProgMismatch:
		low, high, err := readMismatch(r)
		if err != nil {
			return err
		}
		return &AcceptError{Stat: ProgMismatch, Low: low, High: high}
	default:
		return &AcceptError{Stat: AcceptStat(stat)}
	}
}

func readMismatch(r io.Reader) (low, high uint32, err error) {
	if low, err = xdr.DecodeUint32(r); err != nil {
		return 0, 0, fmt.Errorf("read mismatch low: %w", err)
	}
	if high, err = xdr.DecodeUint32(r); err != nil {
		return 0, 0, fmt.Errorf("read mismatch high: %w", err)
	}
	return low, high, nil
}
