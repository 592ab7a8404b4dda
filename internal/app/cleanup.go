package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cleanupDays int

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Prune records past the retention window",
	Long: `Remove suggestion records older than the retention window. When
archiving is enabled in the config, pruned records are copied into the
SQLite archive before removal.

Examples:
  cmdtrack cleanup
  cmdtrack cleanup --days 7`,
	Args: cobra.NoArgs,
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().IntVar(&cleanupDays, "days", 0, "Days of history to keep (default from config)")
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	tr, cfg, err := openTracker()
	if err != nil {
		return err
	}

	days := cleanupDays
	if days <= 0 {
		days = cfg.RetentionDays
	}

	removed := tr.Cleanup(days)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]int{"removed": removed})
	}
	if removed == 0 {
		fmt.Printf("Nothing to prune: all records are within %d days.\n", days)
	} else {
		fmt.Printf("Pruned %d record(s) older than %d days.\n", removed, days)
	}
	return nil
}
