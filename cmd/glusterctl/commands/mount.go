package commands

import (
	"fmt"
	"os"

	"github.com/marmos91/glusterrpc/cmd/glusterctl/cmdutil"
	"github.com/spf13/cobra"
)

var mountOpts []string

var mountCmd = &cobra.Command{
	Use:   "mount <label>",
	Short: "Ask glusterd to perform a mount",
	Long: `Ask glusterd to mount the volume or service identified by label and
print the path it mounted at.

Options are passed to glusterd as key=value pairs.

Examples:
  # Mount with glusterd defaults
  glusterctl mount geo-replication

  # Pass mount options
  glusterctl mount geo-replication --opt user-map-root=geoaccount --opt volfile-id=vol0`,
	Args: cobra.ExactArgs(1),
	RunE: runMount,
}

type mountResult struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

func init() {
	mountCmd.Flags().StringArrayVar(&mountOpts, "opt", nil, "Mount option as key=value (repeatable)")
}

func runMount(cmd *cobra.Command, args []string) error {
	opts, err := cmdutil.ParseKeyValues(mountOpts)
	if err != nil {
		return err
	}

	c, err := cmdutil.NewClient(nil)
	if err != nil {
		return err
	}

	path, err := c.Mount(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("failed to mount %s: %w", args[0], err)
	}

	res := mountResult{Label: args[0], Path: path}
	return cmdutil.PrintResource(os.Stdout, res, [][2]string{
		{"Label", res.Label},
		{"Path", res.Path},
	})
}
