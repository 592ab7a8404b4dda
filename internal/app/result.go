package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	resultOK     bool
	resultFailed bool
	resultOutput string
	resultStdin  bool
)

var resultCmd = &cobra.Command{
	Use:   "result <tracking-id>",
	Short: "Record the execution outcome of a command",
	Long: `Record whether a tracked command succeeded or failed when it was
actually run, optionally with its output (stored truncated to 1000
characters). Execution is tracked independently of the decision.

Examples:
  cmdtrack result 4f9d...c2 --ok --output "a.txt"
  ls -la | cmdtrack result 4f9d...c2 --ok --stdin
  cmdtrack result 4f9d...c2 --failed`,
	Args: cobra.ExactArgs(1),
	RunE: runResult,
}

func init() {
	resultCmd.Flags().BoolVar(&resultOK, "ok", false, "The command executed successfully")
	resultCmd.Flags().BoolVar(&resultFailed, "failed", false, "The command failed")
	resultCmd.Flags().StringVar(&resultOutput, "output", "", "Captured command output")
	resultCmd.Flags().BoolVar(&resultStdin, "stdin", false, "Read the command output from stdin")
	resultCmd.MarkFlagsOneRequired("ok", "failed")
	resultCmd.MarkFlagsMutuallyExclusive("ok", "failed")
	resultCmd.MarkFlagsMutuallyExclusive("output", "stdin")
	rootCmd.AddCommand(resultCmd)
}

func runResult(cmd *cobra.Command, args []string) error {
	tr, _, err := openTracker()
	if err != nil {
		return err
	}

	capturedOutput := resultOutput
	if resultStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading output from stdin: %w", err)
		}
		capturedOutput = string(data)
	}

	tr.TrackExecution(args[0], resultOK, capturedOutput)

	outcome := "failed"
	if resultOK {
		outcome = "succeeded"
	}
	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{
			"tracking_id": args[0],
			"outcome":     outcome,
		})
	}
	fmt.Println("recorded:", outcome)
	return nil
}
