package tracker

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

// minInsightRecords is the history size below which only the collecting-data
// message is produced.
const minInsightRecords = 10

// trendMargin is the percentage-point gap between the recent and all-time
// acceptance rates that counts as a trend.
const trendMargin = 10.0

// Insights produces human-readable observations from the accumulated
// history: an overall acceptance-rate tier, the best and worst command
// types, and a recent-trend note when the trailing 7-day rate diverges
// from the all-time rate.
func Insights(records []store.SuggestionRecord, stats store.Statistics, now time.Time) []string {
	if len(records) < minInsightRecords {
		return []string{"Collecting data: more interactions are needed for detailed insights"}
	}

	var insights []string

	rate := stats.AcceptanceRate
	switch {
	case rate > 80:
		insights = append(insights, fmt.Sprintf("Excellent %.1f%% command acceptance rate", rate))
	case rate > 60:
		insights = append(insights, fmt.Sprintf("Good %.1f%% command acceptance rate", rate))
	case rate > 40:
		insights = append(insights, fmt.Sprintf("Moderate %.1f%% acceptance rate, room for improvement", rate))
	default:
		insights = append(insights, fmt.Sprintf("Low %.1f%% acceptance rate, suggestions need improvement", rate))
	}

	insights = append(insights, typeInsights(records)...)

	if trend := trendInsight(records, rate, now); trend != "" {
		insights = append(insights, trend)
	}

	return insights
}

// typeInsights flags the best and worst command types among those with
// resolved decisions: a positive note when the best exceeds 80% acceptance,
// a warning when the worst is below 40%.
func typeInsights(records []store.SuggestionRecord) []string {
	rates := AcceptanceByType(records)
	if len(rates) == 0 {
		return nil
	}

	bestType, worstType := "", ""
	bestRate, worstRate := -1.0, 101.0
	for cmdType, rate := range rates {
		if rate > bestRate || (rate == bestRate && cmdType < bestType) {
			bestType, bestRate = cmdType, rate
		}
		if rate < worstRate || (rate == worstRate && cmdType < worstType) {
			worstType, worstRate = cmdType, rate
		}
	}

	var insights []string
	if bestRate > 80 {
		insights = append(insights, fmt.Sprintf("%q commands work well (%.1f%% accepted)", bestType, bestRate))
	}
	if worstRate < 40 {
		insights = append(insights, fmt.Sprintf("%q commands need improvement (%.1f%% accepted)", worstType, worstRate))
	}
	return insights
}

// trendInsight compares the trailing 7-day acceptance rate to the all-time
// rate and reports a trend when they differ by more than 10 points.
func trendInsight(records []store.SuggestionRecord, overallRate float64, now time.Time) string {
	cutoff := now.Add(-recentWindow)
	recentTotal, recentAccepted := 0, 0
	for _, rec := range records {
		if !rec.Timestamp.After(cutoff) {
			continue
		}
		recentTotal++
		if rec.Decision == store.DecisionAccepted {
			recentAccepted++
		}
	}
	if recentTotal == 0 {
		return ""
	}

	recentRate := float64(recentAccepted) / float64(recentTotal) * 100
	switch {
	case recentRate > overallRate+trendMargin:
		return fmt.Sprintf("Recent suggestions are improving: %.1f%% accepted over the last 7 days", recentRate)
	case recentRate < overallRate-trendMargin:
		return fmt.Sprintf("Recent suggestions are declining: %.1f%% accepted over the last 7 days", recentRate)
	default:
		return ""
	}
}
