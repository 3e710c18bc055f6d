// Package commands implements the glusterctl command tree.
package commands

import (
	"context"
	"time"

	"github.com/marmos91/glusterrpc/cmd/glusterctl/cmdutil"
	daemoncmd "github.com/marmos91/glusterrpc/cmd/glusterctl/commands/daemon"
	peercmd "github.com/marmos91/glusterrpc/cmd/glusterctl/commands/peer"
	quotacmd "github.com/marmos91/glusterrpc/cmd/glusterctl/commands/quota"
	"github.com/marmos91/glusterrpc/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// skipSetup marks commands that run without configuration.
const skipSetup = "skip-setup"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "glusterctl",
	Short: "Talk to glusterd and quotad over their local sockets",
	Long: `glusterctl speaks the GlusterFS management RPC protocol directly to
the glusterd and quotad Unix sockets on this host.

Configuration is read from $XDG_CONFIG_HOME/glusterrpc/config.yaml and
GLUSTERRPC_* environment variables; flags override both.

Use "glusterctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Sync flags to cmdutil.Flags for subcommands
		cmdutil.Flags.ConfigFile, _ = cmd.Flags().GetString("config")
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.NoColor, _ = cmd.Flags().GetBool("no-color")
		cmdutil.Flags.Verbose, _ = cmd.Flags().GetBool("verbose")
		cmdutil.Flags.GlusterdSocket, _ = cmd.Flags().GetString("glusterd-socket")
		cmdutil.Flags.QuotadSocket, _ = cmd.Flags().GetString("quotad-socket")
		cmdutil.Flags.Timeout, _ = cmd.Flags().GetDuration("timeout")

		if cmd.Annotations[skipSetup] != "" {
			return nil
		}
		return cmdutil.Setup(cmd.Context(), Version)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		cmdutil.Teardown(context.WithoutCancel(cmd.Context()))
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/glusterrpc/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("glusterd-socket", "", "glusterd socket path (overrides config)")
	rootCmd.PersistentFlags().String("quotad-socket", "", "quotad socket path (overrides config)")
	rootCmd.PersistentFlags().Duration("timeout", time.Duration(0), "Per-call timeout (overrides config)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return output.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(umountCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(peercmd.Cmd)
	rootCmd.AddCommand(quotacmd.Cmd)
	rootCmd.AddCommand(daemoncmd.Cmd)

	// Hide the default completion command (we provide our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
