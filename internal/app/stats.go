package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/cmdtrack/internal/output"
	"github.com/blackwell-systems/cmdtrack/internal/tracker"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show acceptance statistics",
	Long: `Show the aggregate acceptance statistics: totals, overall acceptance
rate, recent 7-day activity, the most common command types, and per-type
acceptance rates.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	tr, _, err := openTracker()
	if err != nil {
		return err
	}

	report := tr.Statistics()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println(output.Section("Suggestions"))
	fmt.Printf(" %s %d\n", output.StyleLabel.Render("Total"), report.TotalSuggestions)
	fmt.Printf(" %s %d\n", output.StyleLabel.Render("Accepted"), report.TotalAccepted)
	fmt.Printf(" %s %d\n", output.StyleLabel.Render("Rejected"), report.TotalRejected)
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Acceptance rate"), output.RateBar(report.AcceptanceRate, 20))

	recent := report.RecentActivity
	fmt.Println(output.Section("Last 7 days"))
	fmt.Printf(" %s %d\n", output.StyleLabel.Render("Suggestions"), recent.TotalSuggestions)
	fmt.Printf(" %s %d\n", output.StyleLabel.Render("Accepted"), recent.Accepted)
	fmt.Printf(" %s %d\n", output.StyleLabel.Render("Rejected"), recent.Rejected)

	if len(report.TopCommandTypes) > 0 {
		fmt.Println(output.Section("Command types"))
		table := output.NewTable("TYPE", "COUNT", "ACCEPTANCE")
		for _, tc := range report.TopCommandTypes {
			acceptance := "-"
			if rate, ok := report.AcceptanceByType[tc.Type]; ok {
				acceptance = output.Percent(rate)
			}
			table.AddRow(tc.Type, fmt.Sprintf("%d", tc.Count), acceptance)
		}

		// Types outside the top list but with resolved decisions.
		var rest []string
		for cmdType := range report.AcceptanceByType {
			if !containsType(report.TopCommandTypes, cmdType) {
				rest = append(rest, cmdType)
			}
		}
		sort.Strings(rest)
		for _, cmdType := range rest {
			table.AddRow(cmdType, "-", output.Percent(report.AcceptanceByType[cmdType]))
		}
		table.Print()
	}
	return nil
}

func containsType(types []tracker.TypeCount, name string) bool {
	for _, tc := range types {
		if tc.Type == name {
			return true
		}
	}
	return false
}
