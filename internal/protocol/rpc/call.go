package rpc

import (
	"bytes"
	"fmt"

	xdr2 "github.com/rasky/go-xdr/xdr2"
)

// callHeader is the fixed 24-byte prefix of a CALL message.
type callHeader struct {
	XID        uint32
	MsgType    MsgType
	RPCVersion uint32
	Program    uint32
	Version    uint32
	Procedure  uint32
}

// BuildCallHeader returns the call envelope for one request:
//
//	xid:u32 msg_type:u32=CALL rpc_version:u32=2 program:u32 version:u32
//	procedure:u32 cred verf
//
// cred and verf are already-encoded OpaqueAuth blobs and are appended
// verbatim. The procedure arguments follow the returned header.
func BuildCallHeader(xid uint32, program Program, version uint32, proc Procedure, cred, verf []byte) ([]byte, error) {
	if proc == nil {
		return nil, fmt.Errorf("build call header: nil procedure")
	}

	hdr := callHeader{
		XID:        xid,
		MsgType:    Call,
		RPCVersion: RPCVersion,
		Program:    uint32(program),
		Version:    version,
		Procedure:  proc.ProcedureNumber(),
	}

	var buf bytes.Buffer
	buf.Grow(24 + len(cred) + len(verf))
	if _, err := xdr2.Marshal(&buf, &hdr); err != nil {
		return nil, fmt.Errorf("marshal call header: %w", err)
	}
	buf.Write(cred)
	buf.Write(verf)
	return buf.Bytes(), nil
}
