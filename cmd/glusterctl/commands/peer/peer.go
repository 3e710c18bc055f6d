// Package peer implements peer commands for glusterctl.
package peer

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for peer queries.
var Cmd = &cobra.Command{
	Use:   "peer",
	Short: "Trusted storage pool peers",
	Long: `Query the peers glusterd knows about.

Examples:
  # List peers
  glusterctl peer list

  # Dump the raw friends dictionary
  glusterctl peer list --raw -o json`,
}

func init() {
	Cmd.AddCommand(listCmd)
}
