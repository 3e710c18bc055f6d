package rpc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	xdr2 "github.com/rasky/go-xdr/xdr2"

	"github.com/marmos91/glusterrpc/internal/protocol/xdr"
)

// MaxAuthBodyLength is the RFC 5531 limit on credential and verifier bodies.
const MaxAuthBodyLength = 400

// OpaqueAuth is a credential or verifier: a flavor plus up to 400 bytes
// that only the flavor's owner interprets.
type OpaqueAuth struct {
	Flavor AuthFlavor
	Body   []byte
}

// NullAuth returns an AUTH_NULL credential with an empty body.
func NullAuth() OpaqueAuth {
	return OpaqueAuth{Flavor: AuthNull}
}

// Encode writes flavor, body length, body and padding.
func (a OpaqueAuth) Encode(w io.Writer) error {
	if len(a.Body) > MaxAuthBodyLength {
		return fmt.Errorf("auth body of %d bytes exceeds %d", len(a.Body), MaxAuthBodyLength)
	}
	if err := xdr.WriteInt32(w, int32(a.Flavor)); err != nil {
		return fmt.Errorf("write auth flavor: %w", err)
	}
	if err := xdr.WriteXDROpaque(w, a.Body); err != nil {
		return fmt.Errorf("write auth body: %w", err)
	}
	return nil
}

// Bytes returns the encoded form of a.
func (a OpaqueAuth) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeOpaqueAuth reads a credential or verifier. Unknown flavors are kept
// as their numeric value.
func DecodeOpaqueAuth(r io.Reader) (OpaqueAuth, error) {
	flavor, err := xdr.DecodeInt32(r)
	if err != nil {
		return OpaqueAuth{}, fmt.Errorf("read auth flavor: %w", err)
	}
	length, err := xdr.DecodeUint32(r)
	if err != nil {
		return OpaqueAuth{}, fmt.Errorf("read auth length: %w", err)
	}
	if length > MaxAuthBodyLength {
		return OpaqueAuth{}, fmt.Errorf("auth body of %d bytes exceeds %d", length, MaxAuthBodyLength)
	}
	body, err := xdr.ReadBytes(r, length)
	if err != nil {
		return OpaqueAuth{}, fmt.Errorf("read auth body: %w", err)
	}
	if err := xdr.SkipPadding(r, length); err != nil {
		return OpaqueAuth{}, fmt.Errorf("read auth body: %w", err)
	}
	return OpaqueAuth{Flavor: AuthFlavor(flavor), Body: body}, nil
}

// GlusterCredV2 is the AUTH_GLUSTERFS_v2 credential glusterd expects from
// management clients.
//
// Body layout:
//
//	pid:u32 uid:u32 gid:u32 groups<u32> lock_owner<opaque>
type GlusterCredV2 struct {
	Pid       uint32
	UID       uint32
	GID       uint32
	Groups    []uint32
	LockOwner []byte
}

// DefaultCredV2 is the credential the gluster CLI sends: all ids zero, no
// groups and a four byte zero lock owner.
func DefaultCredV2() GlusterCredV2 {
	return GlusterCredV2{LockOwner: make([]byte, 4)}
}

// LockOwnerFromPid builds the four byte lock owner glusterfs derives from
// a process id.
func LockOwnerFromPid(pid uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, pid)
	return b
}

type credV2Body struct {
	Pid       uint32
	UID       uint32
	GID       uint32
	Groups    []uint32
	LockOwner []byte
}

// OpaqueAuth marshals the credential body and wraps it with its flavor.
func (c GlusterCredV2) OpaqueAuth() (OpaqueAuth, error) {
	body := credV2Body{
		Pid:       c.Pid,
		UID:       c.UID,
		GID:       c.GID,
		Groups:    c.Groups,
		LockOwner: c.LockOwner,
	}
	if body.Groups == nil {
		body.Groups = []uint32{}
	}
	if body.LockOwner == nil {
		body.LockOwner = []byte{}
	}

	var buf bytes.Buffer
	if _, err := xdr2.Marshal(&buf, &body); err != nil {
		return OpaqueAuth{}, fmt.Errorf("marshal gluster v2 credential: %w", err)
	}
	return OpaqueAuth{Flavor: AuthGlusterV2, Body: buf.Bytes()}, nil
}

// Bytes returns the fully encoded credential, ready for BuildCallHeader.
func (c GlusterCredV2) Bytes() ([]byte, error) {
	a, err := c.OpaqueAuth()
	if err != nil {
		return nil, err
	}
	return a.Bytes()
}

// ParseGlusterCredV2 decodes a credential body produced by OpaqueAuth.
func ParseGlusterCredV2(a OpaqueAuth) (GlusterCredV2, error) {
	if a.Flavor != AuthGlusterV2 {
		return GlusterCredV2{}, fmt.Errorf("unexpected credential flavor %s", a.Flavor)
	}
	var body credV2Body
	if _, err := xdr2.Unmarshal(bytes.NewReader(a.Body), &body); err != nil {
		return GlusterCredV2{}, fmt.Errorf("unmarshal gluster v2 credential: %w", err)
	}
	return GlusterCredV2(body), nil
}
