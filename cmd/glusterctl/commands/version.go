package commands

import (
	"fmt"
	"runtime"

	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show version information",
	Long:        `Display the glusterctl version, the RPC programs it speaks, and build details.`,
	Annotations: map[string]string{skipSetup: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			fmt.Println(Version)
			return
		}

		fmt.Printf("glusterctl %s\n", Version)
		fmt.Printf("  Commit:     %s\n", Commit)
		fmt.Printf("  Built:      %s\n", Date)
		fmt.Printf("  CLI:        program %d version %d\n", gluster.ProgramCLI, gluster.CLIVersion)
		fmt.Printf("  Quota:      program %d version %d\n", gluster.ProgramQuota, gluster.QuotaVersion)
		fmt.Printf("  Go version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show only version number")
}
