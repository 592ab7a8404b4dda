package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/cmdtrack/internal/output"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show insights derived from the history",
	Long: `Show observations mined from the accumulated history: the overall
acceptance tier, the best and worst command types, and whether recent
suggestions are trending better or worse than the all-time rate. Needs at
least 10 tracked suggestions before detailed insights appear.`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	tr, _, err := openTracker()
	if err != nil {
		return err
	}

	insights := tr.Insights()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(insights)
	}

	fmt.Println(output.Section("Insights"))
	for _, insight := range insights {
		fmt.Printf(" • %s\n", insight)
	}
	return nil
}
