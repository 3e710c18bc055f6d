package client

import (
	"context"

	"github.com/marmos91/glusterrpc/internal/logger"
	"github.com/marmos91/glusterrpc/internal/protocol/dict"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
)

// Mount asks glusterd to mount the resource registered under label and
// returns the mount point.
func (c *Client) Mount(ctx context.Context, label string, opts dict.Dict) (string, error) {
	if opts == nil {
		opts = dict.Dict{}
	}
	var resp gluster.MountResponse
	if err := c.callCLI(ctx, gluster.CliMount, &gluster.MountRequest{Label: label, Dict: opts}, &resp); err != nil {
		return "", err
	}
	if err := gluster.CheckStatus(gluster.CliMount, resp.OpStatus, ""); err != nil {
		return "", err
	}
	logger.InfoCtx(ctx, "mounted", logger.Path(resp.Path))
	return resp.Path, nil
}

// Umount asks glusterd to unmount path. A lazy unmount detaches the mount
// even if it is busy.
func (c *Client) Umount(ctx context.Context, path string, lazy bool) error {
	req := &gluster.UmountRequest{Path: path}
	if lazy {
		req.Lazy = 1
	}
	var resp gluster.UmountResponse
	if err := c.callCLI(ctx, gluster.CliUmount, req, &resp); err != nil {
		return err
	}
	return gluster.CheckStatus(gluster.CliUmount, resp.OpStatus, "")
}
