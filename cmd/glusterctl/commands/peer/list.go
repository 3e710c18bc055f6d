package peer

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/marmos91/glusterrpc/cmd/glusterctl/cmdutil"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/spf13/cobra"
)

var listRaw bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all peers",
	Long: `List the peers of the trusted storage pool, as reported by the local
glusterd (GLUSTER_CLI_LIST_FRIENDS).

Examples:
  # List peers as table
  glusterctl peer list

  # List as YAML
  glusterctl peer list -o yaml`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listRaw, "raw", false, "Print every key of the friends dictionary")
}

// peerRow holds one peer for display.
type peerRow struct {
	Hostname  string `json:"hostname" yaml:"hostname"`
	UUID      string `json:"uuid" yaml:"uuid"`
	Connected bool   `json:"connected" yaml:"connected"`
	State     string `json:"state" yaml:"state"`
}

// PeerList is a list of peers for table rendering.
type PeerList []peerRow

// Headers implements TableRenderer.
func (pl PeerList) Headers() []string {
	return []string{"HOSTNAME", "UUID", "CONNECTED", "STATE"}
}

// Rows implements TableRenderer.
func (pl PeerList) Rows() [][]string {
	rows := make([][]string, 0, len(pl))
	for _, p := range pl {
		rows = append(rows, []string{p.Hostname, cmdutil.EmptyOr(p.UUID, "-"), cmdutil.BoolToYesNo(p.Connected), cmdutil.EmptyOr(p.State, "-")})
	}
	return rows
}

func newPeerList(peers []gluster.Peer) PeerList {
	rows := make(PeerList, 0, len(peers))
	for _, p := range peers {
		row := peerRow{Hostname: p.Hostname, Connected: p.Connected, State: p.State}
		if p.UUID != uuid.Nil {
			row.UUID = p.UUID.String()
		}
		rows = append(rows, row)
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := cmdutil.NewClient(nil)
	if err != nil {
		return err
	}

	if listRaw {
		d, err := c.PeerDict(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list peers: %w", err)
		}
		t := cmdutil.NewDictTable(d)
		return cmdutil.PrintOutput(os.Stdout, t.Values(), len(d) == 0, "Empty response.", t)
	}

	peers, err := c.ListPeers(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list peers: %w", err)
	}

	rows := newPeerList(peers)
	return cmdutil.PrintOutput(os.Stdout, rows, len(rows) == 0, "No peers found.", rows)
}
