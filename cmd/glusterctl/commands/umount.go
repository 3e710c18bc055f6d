package commands

import (
	"fmt"

	"github.com/marmos91/glusterrpc/cmd/glusterctl/cmdutil"
	"github.com/spf13/cobra"
)

var (
	umountLazy  bool
	umountForce bool
)

var umountCmd = &cobra.Command{
	Use:   "umount <path>",
	Short: "Ask glusterd to unmount a path",
	Long: `Ask glusterd to unmount a path it previously mounted.

Examples:
  # Unmount with confirmation
  glusterctl umount /var/mountbroker-root/user1000/mtpt-geo-XXXX

  # Lazy unmount without confirmation
  glusterctl umount /var/mountbroker-root/user1000/mtpt-geo-XXXX --lazy --force`,
	Args: cobra.ExactArgs(1),
	RunE: runUmount,
}

func init() {
	umountCmd.Flags().BoolVar(&umountLazy, "lazy", false, "Detach now, clean up when no longer busy")
	umountCmd.Flags().BoolVarP(&umountForce, "force", "f", false, "Skip confirmation prompt")
}

func runUmount(cmd *cobra.Command, args []string) error {
	path := args[0]

	return cmdutil.RunWithConfirmation(fmt.Sprintf("Unmount %s", path), umountForce, func() error {
		c, err := cmdutil.NewClient(nil)
		if err != nil {
			return err
		}
		if err := c.Umount(cmd.Context(), path, umountLazy); err != nil {
			return fmt.Errorf("failed to unmount %s: %w", path, err)
		}
		cmdutil.PrintSuccess(fmt.Sprintf("Unmounted %s", path))
		return nil
	})
}
