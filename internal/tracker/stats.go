package tracker

import (
	"sort"
	"time"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

// recentWindow is the trailing window used for recent-activity figures.
const recentWindow = 7 * 24 * time.Hour

// topTypeLimit caps the most-common command types list.
const topTypeLimit = 5

// RecentActivity summarizes the trailing 7-day window.
type RecentActivity struct {
	TotalSuggestions int `json:"total_suggestions"`
	Accepted         int `json:"accepted"`
	Rejected         int `json:"rejected"`
}

// TypeCount is a command type with its occurrence count.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Report is the full statistics view: the global summary plus the
// recent-activity window, the most common command types, and per-type
// acceptance percentages over resolved records.
type Report struct {
	store.Statistics
	RecentActivity   RecentActivity     `json:"recent_activity"`
	TopCommandTypes  []TypeCount        `json:"top_command_types"`
	AcceptanceByType map[string]float64 `json:"acceptance_by_type"`
}

// BuildReport derives a Report from the record list and the aggregate
// summary. now anchors the recent-activity window.
func BuildReport(records []store.SuggestionRecord, stats store.Statistics, now time.Time) Report {
	report := Report{
		Statistics:       stats,
		AcceptanceByType: map[string]float64{},
	}
	if len(records) == 0 {
		return report
	}

	cutoff := now.Add(-recentWindow)
	typeCounts := map[string]int{}

	for _, rec := range records {
		if rec.Timestamp.After(cutoff) {
			report.RecentActivity.TotalSuggestions++
			switch rec.Decision {
			case store.DecisionAccepted:
				report.RecentActivity.Accepted++
			case store.DecisionRejected:
				report.RecentActivity.Rejected++
			}
		}

		if cmdType := rec.Features.CommandType; cmdType != "" {
			typeCounts[cmdType]++
		}
	}

	report.TopCommandTypes = topTypes(typeCounts, topTypeLimit)
	report.AcceptanceByType = AcceptanceByType(records)

	return report
}

// AcceptanceByType computes per-command-type acceptance percentages over
// records with resolved decisions.
func AcceptanceByType(records []store.SuggestionRecord) map[string]float64 {
	resolved := map[string]int{}
	accepted := map[string]int{}
	for _, rec := range records {
		cmdType := rec.Features.CommandType
		if cmdType == "" || !rec.Decision.Resolved() {
			continue
		}
		resolved[cmdType]++
		if rec.Decision == store.DecisionAccepted {
			accepted[cmdType]++
		}
	}

	rates := map[string]float64{}
	for cmdType, n := range resolved {
		rates[cmdType] = float64(accepted[cmdType]) / float64(n) * 100
	}
	return rates
}

// topTypes returns the most frequent command types, count descending,
// name ascending on ties.
func topTypes(counts map[string]int, limit int) []TypeCount {
	types := make([]TypeCount, 0, len(counts))
	for name, count := range counts {
		types = append(types, TypeCount{Type: name, Count: count})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count == types[j].Count {
			return types[i].Type < types[j].Type
		}
		return types[i].Count > types[j].Count
	})
	if limit > 0 && len(types) > limit {
		types = types[:limit]
	}
	return types
}
