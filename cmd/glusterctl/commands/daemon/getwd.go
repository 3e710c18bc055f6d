package daemon

import (
	"fmt"
	"os"

	"github.com/marmos91/glusterrpc/cmd/glusterctl/cmdutil"
	"github.com/spf13/cobra"
)

var getwdCmd = &cobra.Command{
	Use:   "getwd",
	Short: "Print glusterd's working directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cmdutil.NewClient(nil)
		if err != nil {
			return err
		}
		wd, err := c.Getwd(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		return cmdutil.PrintResource(os.Stdout, map[string]string{"workdir": wd}, [][2]string{
			{"Working directory", wd},
		})
	},
}
