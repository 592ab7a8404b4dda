package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/cmdtrack/internal/output"
)

var similarLimit int

var similarCmd = &cobra.Command{
	Use:   "similar <request> [command]",
	Short: "Find similar past suggestions for a request",
	Long: `Search the history for accepted suggestions similar to the given
request. When the new candidate command is supplied too, its features
sharpen the match.

Examples:
  cmdtrack similar "show files"
  cmdtrack similar "show files" "ls -la" --limit 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSimilar,
}

func init() {
	similarCmd.Flags().IntVar(&similarLimit, "limit", 0, "Maximum results (default from config)")
	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	tr, cfg, err := openTracker()
	if err != nil {
		return err
	}

	command := ""
	if len(args) > 1 {
		command = args[1]
	}
	limit := similarLimit
	if limit <= 0 {
		limit = cfg.SimilarLimit
	}

	similar := tr.Similar(args[0], command, limit)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(similar)
	}

	if len(similar) == 0 {
		fmt.Println("No similar accepted suggestions found.")
		return nil
	}

	table := output.NewTable("COMMAND", "REQUEST", "RAN OK")
	for _, s := range similar {
		ranOK := "-"
		if s.SuccessIndicator > 0 {
			ranOK = "yes"
		}
		table.AddRow(s.Command, s.Request, ranOK)
	}
	table.Print()
	return nil
}
