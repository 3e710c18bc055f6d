// Package daemon implements glusterd introspection commands.
package daemon

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for glusterd introspection.
var Cmd = &cobra.Command{
	Use:   "daemon",
	Short: "Inspect the local glusterd",
	Long: `Inspect the state of the local glusterd.

Examples:
  # Print glusterd's working directory
  glusterctl daemon getwd

  # Dump the state machine log of a peer chosen interactively
  glusterctl daemon fsm-log --pick`,
}

func init() {
	Cmd.AddCommand(getwdCmd)
	Cmd.AddCommand(fsmLogCmd)
}
