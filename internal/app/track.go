package app

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

var (
	trackModel string
	trackOS    string
	trackShell string
)

var trackCmd = &cobra.Command{
	Use:   "track <request> <command>",
	Short: "Record a presented command suggestion",
	Long: `Record that an AI-generated command suggestion was presented to the
user, before the user has answered. Prints the tracking ID used by the
decide and result commands.

Examples:
  cmdtrack track "list files" "ls -la" --model claude
  cmdtrack track "find big logs" "find /var/log -size +100M" --shell zsh`,
	Args: cobra.ExactArgs(2),
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackModel, "model", "", "Model that generated the suggestion")
	trackCmd.Flags().StringVar(&trackOS, "os", runtime.GOOS, "OS name to record")
	trackCmd.Flags().StringVar(&trackShell, "shell", os.Getenv("SHELL"), "Shell to record")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	tr, _, err := openTracker()
	if err != nil {
		return err
	}

	id := tr.TrackSuggestion(args[0], args[1], trackModel, store.SystemInfo{
		Name:  trackOS,
		Shell: trackShell,
	})

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"tracking_id": id})
	}
	fmt.Println(id)
	return nil
}
