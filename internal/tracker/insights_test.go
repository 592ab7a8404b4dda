package tracker

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

func manyRecords(now time.Time, n int, commandType string, decision store.Decision, age time.Duration) []store.SuggestionRecord {
	var records []store.SuggestionRecord
	for i := 0; i < n; i++ {
		records = append(records, agedRecord(age, now, commandType, decision))
	}
	return records
}

func TestInsights_CollectingData(t *testing.T) {
	now := time.Now()
	records := manyRecords(now, 9, "ls", store.DecisionAccepted, time.Hour)

	insights := Insights(records, store.Statistics{}, now)
	if len(insights) != 1 {
		t.Fatalf("expected single collecting-data message, got %d", len(insights))
	}
	if !strings.Contains(insights[0], "Collecting data") {
		t.Errorf("unexpected message %q", insights[0])
	}
}

func TestInsights_AcceptanceTiers(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{90, "Excellent"},
		{70, "Good"},
		{50, "Moderate"},
		{20, "Low"},
	}

	now := time.Now()
	// Old records keep the trend note quiet.
	records := manyRecords(now, 10, "ls", store.DecisionAccepted, 30*24*time.Hour)

	for _, tc := range tests {
		stats := store.Statistics{TotalSuggestions: 10, AcceptanceRate: tc.rate}
		insights := Insights(records, stats, now)
		if len(insights) == 0 || !strings.Contains(insights[0], tc.want) {
			t.Errorf("rate %.0f: expected %q tier, got %v", tc.rate, tc.want, insights)
		}
	}
}

func TestInsights_BestAndWorstTypes(t *testing.T) {
	now := time.Now()
	age := 30 * 24 * time.Hour
	var records []store.SuggestionRecord
	records = append(records, manyRecords(now, 9, "ls", store.DecisionAccepted, age)...)
	records = append(records, manyRecords(now, 1, "ls", store.DecisionRejected, age)...)
	records = append(records, manyRecords(now, 1, "rm", store.DecisionAccepted, age)...)
	records = append(records, manyRecords(now, 9, "rm", store.DecisionRejected, age)...)

	stats := store.Statistics{TotalSuggestions: 20, AcceptanceRate: 50}
	insights := Insights(records, stats, now)

	joined := strings.Join(insights, "\n")
	if !strings.Contains(joined, `"ls" commands work well`) {
		t.Errorf("expected best-type note, got %v", insights)
	}
	if !strings.Contains(joined, `"rm" commands need improvement`) {
		t.Errorf("expected worst-type note, got %v", insights)
	}
}

func TestInsights_MiddlingTypesSilent(t *testing.T) {
	now := time.Now()
	age := 30 * 24 * time.Hour
	var records []store.SuggestionRecord
	records = append(records, manyRecords(now, 6, "ls", store.DecisionAccepted, age)...)
	records = append(records, manyRecords(now, 4, "ls", store.DecisionRejected, age)...)

	stats := store.Statistics{TotalSuggestions: 10, AcceptanceRate: 60}
	insights := Insights(records, stats, now)
	joined := strings.Join(insights, "\n")
	if strings.Contains(joined, "work well") || strings.Contains(joined, "need improvement") {
		t.Errorf("60%% type should trigger neither note, got %v", insights)
	}
}

func TestInsights_ImprovingTrend(t *testing.T) {
	now := time.Now()
	var records []store.SuggestionRecord
	// Old history: rejected. Recent week: all accepted.
	records = append(records, manyRecords(now, 10, "ls", store.DecisionRejected, 30*24*time.Hour)...)
	records = append(records, manyRecords(now, 5, "ls", store.DecisionAccepted, 24*time.Hour)...)

	stats := store.Statistics{TotalSuggestions: 15, AcceptanceRate: 33.3}
	insights := Insights(records, stats, now)
	if !strings.Contains(strings.Join(insights, "\n"), "improving") {
		t.Errorf("expected improving trend, got %v", insights)
	}
}

func TestInsights_DecliningTrend(t *testing.T) {
	now := time.Now()
	var records []store.SuggestionRecord
	records = append(records, manyRecords(now, 10, "ls", store.DecisionAccepted, 30*24*time.Hour)...)
	records = append(records, manyRecords(now, 5, "ls", store.DecisionRejected, 24*time.Hour)...)

	stats := store.Statistics{TotalSuggestions: 15, AcceptanceRate: 66.7}
	insights := Insights(records, stats, now)
	if !strings.Contains(strings.Join(insights, "\n"), "declining") {
		t.Errorf("expected declining trend, got %v", insights)
	}
}

func TestInsights_NoTrendWithinMargin(t *testing.T) {
	now := time.Now()
	var records []store.SuggestionRecord
	records = append(records, manyRecords(now, 5, "ls", store.DecisionAccepted, 24*time.Hour)...)
	records = append(records, manyRecords(now, 5, "ls", store.DecisionRejected, 24*time.Hour)...)

	stats := store.Statistics{TotalSuggestions: 10, AcceptanceRate: 50}
	insights := Insights(records, stats, now)
	joined := strings.Join(insights, "\n")
	if strings.Contains(joined, "improving") || strings.Contains(joined, "declining") {
		t.Errorf("expected no trend note within margin, got %v", insights)
	}
}
