package daemon

import (
	"errors"
	"fmt"
	"os"

	"github.com/marmos91/glusterrpc/cmd/glusterctl/cmdutil"
	"github.com/marmos91/glusterrpc/internal/cli/prompt"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/marmos91/glusterrpc/pkg/client"
	"github.com/spf13/cobra"
)

var fsmLogPick bool

var fsmLogCmd = &cobra.Command{
	Use:   "fsm-log [peer]",
	Short: "Dump glusterd's peer state machine log",
	Long: `Dump the state machine transition log glusterd keeps for a peer.
Without a peer argument the local glusterd's own log is returned.

Examples:
  # Local log
  glusterctl daemon fsm-log

  # Log for one peer
  glusterctl daemon fsm-log server2

  # Choose the peer from the pool interactively
  glusterctl daemon fsm-log --pick`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFsmLog,
}

func init() {
	fsmLogCmd.Flags().BoolVar(&fsmLogPick, "pick", false, "Select the peer interactively")
}

func runFsmLog(cmd *cobra.Command, args []string) error {
	c, err := cmdutil.NewClient(nil)
	if err != nil {
		return err
	}

	var name string
	switch {
	case len(args) == 1:
		name = args[0]
	case fsmLogPick:
		name, err = pickPeer(cmd, c)
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	entries, err := c.FsmLog(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("failed to get fsm log: %w", err)
	}

	t := cmdutil.NewDictTable(entries)
	return cmdutil.PrintOutput(os.Stdout, t.Values(), len(entries) == 0, "Log is empty.", t)
}

func pickPeer(cmd *cobra.Command, c *client.Client) (string, error) {
	peers, err := c.ListPeers(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("failed to list peers: %w", err)
	}
	if len(peers) == 0 {
		return "", errors.New("no peers to choose from")
	}
	return prompt.Select("Peer", "State", peerOptions(peers))
}

func peerOptions(peers []gluster.Peer) []prompt.SelectOption {
	opts := make([]prompt.SelectOption, 0, len(peers))
	for _, p := range peers {
		opts = append(opts, prompt.SelectOption{
			Label:       p.Hostname,
			Value:       p.Hostname,
			Description: cmdutil.EmptyOr(p.State, "unknown"),
		})
	}
	return opts
}
