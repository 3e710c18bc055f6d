package client

import (
	"context"

	"github.com/marmos91/glusterrpc/internal/protocol/dict"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
)

// PeerDict returns glusterd's raw friend dictionary.
func (c *Client) PeerDict(ctx context.Context) (dict.Dict, error) {
	req := &gluster.PeerListRequest{Flags: gluster.FlagsGetAll, Dict: dict.Dict{}}
	var resp gluster.PeerListResponse

	if err := c.callCLI(ctx, gluster.CliListFriends, req, &resp); err != nil {
		return nil, err
	}
	if err := gluster.CheckStatus(gluster.CliListFriends, resp.OpStatus, ""); err != nil {
		return nil, err
	}
	if resp.Friends == nil {
		resp.Friends = dict.Dict{}
	}
	return resp.Friends, nil
}

// ListPeers returns the peers of the trusted storage pool.
func (c *Client) ListPeers(ctx context.Context) ([]gluster.Peer, error) {
	d, err := c.PeerDict(ctx)
	if err != nil {
		return nil, err
	}
	return gluster.ParsePeers(d)
}
