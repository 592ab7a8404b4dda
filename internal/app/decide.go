package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	decideAccept   bool
	decideReject   bool
	decideFeedback string
)

var decideCmd = &cobra.Command{
	Use:   "decide <tracking-id>",
	Short: "Record the user's accept/reject decision",
	Long: `Record whether the user accepted or rejected a tracked suggestion.
A decision is recorded once; repeating the command for an already-decided
suggestion has no effect.

Examples:
  cmdtrack decide 4f9d...c2 --accept
  cmdtrack decide 4f9d...c2 --reject --feedback "wrong directory"`,
	Args: cobra.ExactArgs(1),
	RunE: runDecide,
}

func init() {
	decideCmd.Flags().BoolVar(&decideAccept, "accept", false, "The user accepted the suggestion")
	decideCmd.Flags().BoolVar(&decideReject, "reject", false, "The user rejected the suggestion")
	decideCmd.Flags().StringVar(&decideFeedback, "feedback", "", "Optional user feedback")
	decideCmd.MarkFlagsOneRequired("accept", "reject")
	decideCmd.MarkFlagsMutuallyExclusive("accept", "reject")
	rootCmd.AddCommand(decideCmd)
}

func runDecide(cmd *cobra.Command, args []string) error {
	tr, _, err := openTracker()
	if err != nil {
		return err
	}

	tr.TrackDecision(args[0], decideAccept, decideFeedback)

	decision := "rejected"
	if decideAccept {
		decision = "accepted"
	}
	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{
			"tracking_id": args[0],
			"decision":    decision,
		})
	}
	fmt.Println("recorded:", decision)
	return nil
}
