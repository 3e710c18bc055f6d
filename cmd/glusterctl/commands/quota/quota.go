// Package quota implements quota commands for glusterctl.
package quota

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for quota queries.
var Cmd = &cobra.Command{
	Use:   "quota",
	Short: "Directory quota usage",
	Long: `Query quotad for directory quota usage.

Examples:
  # Usage of a volume's root directory
  glusterctl quota usage vol0`,
}

func init() {
	Cmd.AddCommand(usageCmd)
}
