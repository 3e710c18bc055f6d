package quota

import (
	"fmt"
	"os"
	"strconv"

	"github.com/marmos91/glusterrpc/cmd/glusterctl/cmdutil"
	"github.com/marmos91/glusterrpc/internal/bytesize"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/spf13/cobra"
)

var usageGFID string

var usageCmd = &cobra.Command{
	Use:   "usage <volume>...",
	Short: "Show quota usage of volumes",
	Long: `Show the space, file and directory counts quotad reports for a
directory of each volume. The volume root is used unless --gfid is given.

Examples:
  # Root usage of two volumes
  glusterctl quota usage vol0 vol1

  # Usage of one directory, as JSON
  glusterctl quota usage vol0 --gfid 3c2b6b8e-5a4f-4b43-9a0e-4c1f1d3f2a11 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUsage,
}

func init() {
	usageCmd.Flags().StringVar(&usageGFID, "gfid", gluster.RootGFID, "Directory gfid")
}

// usageRow holds one volume's usage for display.
type usageRow struct {
	Volume string `json:"volume" yaml:"volume"`
	GFID   string `json:"gfid" yaml:"gfid"`
	Used   uint64 `json:"used_bytes" yaml:"used_bytes"`
	Files  uint64 `json:"files" yaml:"files"`
	Dirs   uint64 `json:"dirs" yaml:"dirs"`
}

// UsageList is a list of quota usages for table rendering.
type UsageList []usageRow

// Headers implements TableRenderer.
func (ul UsageList) Headers() []string {
	return []string{"VOLUME", "USED", "FILES", "DIRS"}
}

// Rows implements TableRenderer.
func (ul UsageList) Rows() [][]string {
	rows := make([][]string, 0, len(ul))
	for _, u := range ul {
		rows = append(rows, []string{
			u.Volume,
			bytesize.ByteSize(u.Used).String(),
			strconv.FormatUint(u.Files, 10),
			strconv.FormatUint(u.Dirs, 10),
		})
	}
	return rows
}

func runUsage(cmd *cobra.Command, args []string) error {
	c, err := cmdutil.NewClient(nil)
	if err != nil {
		return err
	}

	rows := make(UsageList, 0, len(args))
	for _, volume := range args {
		u, err := c.QuotaUsageFor(cmd.Context(), volume, usageGFID)
		if err != nil {
			return fmt.Errorf("failed to get quota usage of %s: %w", volume, err)
		}
		rows = append(rows, usageRow{
			Volume: volume,
			GFID:   usageGFID,
			Used:   u.Size,
			Files:  u.FileCount,
			Dirs:   u.DirCount,
		})
	}

	return cmdutil.PrintOutput(os.Stdout, rows, len(rows) == 0, "No usage reported.", rows)
}
