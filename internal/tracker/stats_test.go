package tracker

import (
	"testing"
	"time"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

func agedRecord(age time.Duration, now time.Time, commandType string, decision store.Decision) store.SuggestionRecord {
	rec := resolvedRecord("some request", commandType+" arg", decision)
	rec.Timestamp = now.Add(-age)
	return rec
}

func TestBuildReport_Empty(t *testing.T) {
	report := BuildReport(nil, store.Statistics{}, time.Now())
	if report.RecentActivity.TotalSuggestions != 0 {
		t.Error("expected empty recent activity")
	}
	if len(report.TopCommandTypes) != 0 {
		t.Error("expected no top types")
	}
}

func TestBuildReport_RecentActivityWindow(t *testing.T) {
	now := time.Now()
	records := []store.SuggestionRecord{
		agedRecord(24*time.Hour, now, "ls", store.DecisionAccepted),
		agedRecord(3*24*time.Hour, now, "ls", store.DecisionRejected),
		agedRecord(6*24*time.Hour, now, "df", store.DecisionPending),
		agedRecord(8*24*time.Hour, now, "ls", store.DecisionAccepted), // outside window
	}

	report := BuildReport(records, store.Statistics{}, now)
	recent := report.RecentActivity
	if recent.TotalSuggestions != 3 {
		t.Errorf("recent total = %d, want 3", recent.TotalSuggestions)
	}
	if recent.Accepted != 1 || recent.Rejected != 1 {
		t.Errorf("recent accepted/rejected = %d/%d, want 1/1", recent.Accepted, recent.Rejected)
	}
}

func TestBuildReport_TopTypesAndRates(t *testing.T) {
	now := time.Now()
	records := []store.SuggestionRecord{
		agedRecord(time.Hour, now, "ls", store.DecisionAccepted),
		agedRecord(time.Hour, now, "ls", store.DecisionAccepted),
		agedRecord(time.Hour, now, "ls", store.DecisionRejected),
		agedRecord(time.Hour, now, "df", store.DecisionAccepted),
		agedRecord(time.Hour, now, "rm", store.DecisionPending),
	}

	report := BuildReport(records, store.Statistics{}, now)

	if len(report.TopCommandTypes) != 3 {
		t.Fatalf("expected 3 types, got %d", len(report.TopCommandTypes))
	}
	if report.TopCommandTypes[0].Type != "ls" || report.TopCommandTypes[0].Count != 3 {
		t.Errorf("expected ls x3 first, got %+v", report.TopCommandTypes[0])
	}

	wantRate := 2.0 / 3.0 * 100
	if got := report.AcceptanceByType["ls"]; got != wantRate {
		t.Errorf("ls acceptance = %v, want %v", got, wantRate)
	}
	if got := report.AcceptanceByType["df"]; got != 100 {
		t.Errorf("df acceptance = %v, want 100", got)
	}
	// Pending-only types have no resolved decisions, so no rate.
	if _, ok := report.AcceptanceByType["rm"]; ok {
		t.Error("expected no acceptance rate for pending-only type")
	}
}

func TestTopTypes_TieBreakAndLimit(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1, "e": 1, "f": 1, "g": 1}
	types := topTypes(counts, 5)
	if len(types) != 5 {
		t.Fatalf("expected 5 types, got %d", len(types))
	}
	if types[0].Type != "c" {
		t.Errorf("expected c first, got %q", types[0].Type)
	}
	// a before b on equal counts.
	if types[1].Type != "a" || types[2].Type != "b" {
		t.Errorf("expected a,b order on tie, got %q,%q", types[1].Type, types[2].Type)
	}
}
