package client

import (
	"context"

	"github.com/marmos91/glusterrpc/internal/logger"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/marmos91/glusterrpc/internal/telemetry"
)

// QuotaUsage returns the usage of volume's root directory as tracked by
// quotad.
func (c *Client) QuotaUsage(ctx context.Context, volume string) (gluster.QuotaUsage, error) {
	return c.QuotaUsageFor(ctx, volume, gluster.RootGFID)
}

// QuotaUsageFor returns the usage of the directory identified by gfid.
func (c *Client) QuotaUsageFor(ctx context.Context, volume, gfid string) (gluster.QuotaUsage, error) {
	args, err := gluster.QuotaGetLimitRequest(volume, gfid)
	if err != nil {
		return gluster.QuotaUsage{}, err
	}

	ctx, span := telemetry.StartSpan(ctx, "quota.usage")
	defer span.End()
	telemetry.SetAttributes(ctx, telemetry.GlusterVolume(volume))

	var resp gluster.CliResponse
	if err := c.Call(ctx, c.cfg.QuotadSocket, gluster.ProgramQuota, gluster.QuotaVersion,
		gluster.AggregatorGetlimit, &gluster.CliRequest{Dict: args}, &resp); err != nil {
		return gluster.QuotaUsage{}, err
	}
	telemetry.SetAttributes(ctx, telemetry.GlusterOpResult(resp.OpRet, resp.OpErrno)...)
	if err := gluster.CheckStatus(gluster.AggregatorGetlimit, resp.OpStatus, resp.OpErrstr); err != nil {
		logger.DebugCtx(ctx, "quota getlimit rejected", logger.Volume(volume),
			logger.OpResult(resp.OpRet, resp.OpErrno))
		return gluster.QuotaUsage{}, err
	}

	usage, err := gluster.ParseQuotaUsage(resp.Dict)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return gluster.QuotaUsage{}, err
	}
	return usage, nil
}
