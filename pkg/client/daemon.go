package client

import (
	"context"

	"github.com/marmos91/glusterrpc/internal/protocol/dict"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/marmos91/glusterrpc/internal/protocol/xdr"
)

func (c *Client) callCLI(ctx context.Context, cmd gluster.CliCommand, req xdr.Encoder, resp xdr.Decoder) error {
	return c.Call(ctx, c.cfg.GlusterdSocket, gluster.ProgramCLI, gluster.CLIVersion, cmd, req, resp)
}

// Getwd returns glusterd's working directory.
func (c *Client) Getwd(ctx context.Context) (string, error) {
	var resp gluster.GetwdResponse
	if err := c.callCLI(ctx, gluster.CliGetwd, &gluster.GetwdRequest{}, &resp); err != nil {
		return "", err
	}
	if err := gluster.CheckStatus(gluster.CliGetwd, resp.OpStatus, ""); err != nil {
		return "", err
	}
	return resp.Wd, nil
}

// FsmLog returns the state machine transitions glusterd recorded for the
// named peer, or for the local daemon when name is empty. The result maps
// keys such as "log0.old-state" to their values.
func (c *Client) FsmLog(ctx context.Context, name string) (dict.Dict, error) {
	var resp gluster.FsmLogResponse
	if err := c.callCLI(ctx, gluster.CliFsmLog, &gluster.FsmLogRequest{Name: name}, &resp); err != nil {
		return nil, err
	}
	if err := gluster.CheckStatus(gluster.CliFsmLog, resp.OpStatus, resp.OpErrstr); err != nil {
		return nil, err
	}
	return resp.Entries()
}
