package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/cmdtrack/internal/output"
)

var assessCmd = &cobra.Command{
	Use:   "assess <request> <command>",
	Short: "Estimate confidence for a candidate suggestion",
	Long: `Evaluate a candidate suggestion against the accumulated history
before it is shown to the user: a confidence score for its command type,
similar accepted commands, and pattern notes.

Example:
  cmdtrack assess "list files" "ls -la"`,
	Args: cobra.ExactArgs(2),
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	tr, _, err := openTracker()
	if err != nil {
		return err
	}

	assessment := tr.Assess(args[0], args[1])

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assessment)
	}

	fmt.Println(output.Section("Assessment"))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Confidence"), output.Confidence(assessment.ConfidenceScore))

	for _, rec := range assessment.Recommendations {
		fmt.Printf(" %s\n", output.StyleWarning.Render(rec))
	}
	for _, insight := range assessment.PatternInsights {
		fmt.Printf(" %s\n", output.StyleMuted.Render(insight))
	}

	if len(assessment.SimilarAccepted) > 0 {
		fmt.Println(output.Section("Similar accepted commands"))
		table := output.NewTable("COMMAND", "REQUEST", "RAN OK")
		for _, s := range assessment.SimilarAccepted {
			ranOK := "-"
			if s.SuccessIndicator > 0 {
				ranOK = "yes"
			}
			table.AddRow(s.Command, s.Request, ranOK)
		}
		table.Print()
	}
	return nil
}
