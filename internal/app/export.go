package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export a full snapshot of the history",
	Long: `Write the complete tracking state to a single document: every record,
the pattern table, the statistics report, and freshly computed insights.
A .yaml/.yml path selects YAML; anything else gets JSON. Without a path a
timestamped filename is used in the working directory.

Examples:
  cmdtrack export
  cmdtrack export history_snapshot.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	tr, _, err := openTracker()
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	written, err := tr.Export(path)
	if err != nil {
		return err
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"path": written})
	}
	fmt.Println("Exported to", written)
	return nil
}
