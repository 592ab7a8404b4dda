// Package store provides the persisted suggestion history for cmdtrack:
// a single JSON document holding every tracked suggestion, the derived
// pattern table, and the aggregate statistics, plus the SQLite archive
// that receives pruned records.
package store

import "time"

// Decision is the user's verdict on a suggested command.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

// Resolved reports whether the user has answered for this suggestion.
func (d Decision) Resolved() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

// ExecutionOutcome is the result of actually running a suggested command.
type ExecutionOutcome string

const (
	ExecutionNotRun    ExecutionOutcome = "not_run"
	ExecutionSucceeded ExecutionOutcome = "succeeded"
	ExecutionFailed    ExecutionOutcome = "failed"
)

// SystemInfo captures the environment a suggestion was generated for.
type SystemInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Shell   string `json:"shell,omitempty"`
}

// FeatureVector is the fixed-shape set of attributes derived from a
// command/request pair. It is computed once at record creation and again,
// identically, at similarity-query time.
type FeatureVector struct {
	CommandLength    int    `json:"command_length"`
	WordCount        int    `json:"word_count"`
	HasPipes         bool   `json:"has_pipes"`
	HasRedirects     bool   `json:"has_redirects"`
	HasSudo          bool   `json:"has_sudo"`
	HasFlags         bool   `json:"has_flags"`
	CommandType      string `json:"command_type"`
	RequestLength    int    `json:"request_length"`
	RequestWordCount int    `json:"request_words"`
	FileOps          bool   `json:"contains_file_ops"`
	SystemOps        bool   `json:"contains_system_ops"`
	NetworkOps       bool   `json:"contains_network_ops"`
	PackageOps       bool   `json:"contains_package_ops"`
}

// SuggestionRecord is one tracked suggestion event. The inputs captured at
// creation (request, command, model, system info, hash, features) are never
// modified afterwards; only the decision and execution fields change.
type SuggestionRecord struct {
	TrackingID       string        `json:"tracking_id"`
	Timestamp        time.Time     `json:"timestamp"`
	UserRequest      string        `json:"user_request"`
	SuggestedCommand string        `json:"suggested_command"`
	CommandHash      string        `json:"command_hash"`
	ModelUsed        string        `json:"model_used"`
	SystemInfo       SystemInfo    `json:"system_info"`
	Features         FeatureVector `json:"features"`

	Decision          Decision   `json:"decision"`
	UserFeedback      string     `json:"user_feedback,omitempty"`
	DecisionTimestamp *time.Time `json:"decision_timestamp,omitempty"`

	ExecutionOutcome   ExecutionOutcome `json:"execution_outcome"`
	ExecutionOutput    string           `json:"execution_output,omitempty"`
	ExecutionTimestamp *time.Time       `json:"execution_timestamp,omitempty"`
}

// PatternBucket holds accept/reject counters for one bucket key
// (a command type or a request-length class).
type PatternBucket struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// AcceptanceRate returns the bucket's acceptance fraction in [0,1],
// or the fallback when the bucket is empty.
func (b PatternBucket) AcceptanceRate(fallback float64) float64 {
	if b.Total == 0 {
		return fallback
	}
	return float64(b.Accepted) / float64(b.Total)
}

// Statistics is the global aggregate summary. AcceptanceRate is always
// recomputed from the counters, never adjusted incrementally.
type Statistics struct {
	TotalSuggestions int     `json:"total_suggestions"`
	TotalAccepted    int     `json:"total_accepted"`
	TotalRejected    int     `json:"total_rejected"`
	AcceptanceRate   float64 `json:"acceptance_rate"`
}

// History is the complete persisted document.
type History struct {
	Commands   []SuggestionRecord       `json:"commands"`
	Patterns   map[string]PatternBucket `json:"patterns"`
	Statistics Statistics               `json:"statistics"`
}

// defaultHistory returns the fresh document schema used when no prior
// state exists or when a corrupt file is reinitialized.
func defaultHistory() History {
	return History{
		Commands: []SuggestionRecord{},
		Patterns: map[string]PatternBucket{},
	}
}
