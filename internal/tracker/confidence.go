package tracker

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

const (
	// defaultConfidence is used when no history exists for a command type.
	defaultConfidence = 0.5

	lowConfidence  = 0.3
	highConfidence = 0.8
)

// Confidence estimates the probability, in [0,1], that a suggestion of the
// given command type will be accepted: the command-type bucket's acceptance
// rate when it has decisions, otherwise the 0.5 default.
func Confidence(patterns map[string]store.PatternBucket, commandType string) float64 {
	bucket, ok := patterns[commandType]
	if !ok || bucket.Total == 0 {
		return defaultConfidence
	}
	return bucket.AcceptanceRate(defaultConfidence)
}

// SimilarSuggestion is one similar past suggestion surfaced to the caller.
// SuccessIndicator is 1.0 when the command was executed successfully and
// 0.0 otherwise.
type SimilarSuggestion struct {
	Command          string  `json:"command"`
	Request          string  `json:"request"`
	SuccessIndicator float64 `json:"success_indicator"`
}

// Assessment is the pre-display evaluation of a candidate suggestion:
// a confidence score, similar accepted commands from the history, and
// qualitative notes derived from the pattern buckets.
type Assessment struct {
	ConfidenceScore float64             `json:"confidence_score"`
	SimilarAccepted []SimilarSuggestion `json:"similar_accepted_commands"`
	PatternInsights []string            `json:"pattern_insights"`
	Recommendations []string            `json:"recommendations"`
}

// recommendationFor translates a confidence score into advice text, or ""
// for mid-range scores.
func recommendationFor(score float64, commandType string) string {
	switch {
	case score < lowConfidence:
		return fmt.Sprintf("Low acceptance rate for %q commands", commandType)
	case score > highConfidence:
		return fmt.Sprintf("High confidence: %q commands are usually accepted", commandType)
	default:
		return ""
	}
}

// lengthClassInsight describes the acceptance rate of the request's
// length-class bucket, or "" when that bucket has no decisions yet.
func lengthClassInsight(patterns map[string]store.PatternBucket, requestWords int) string {
	class := store.LengthClass(requestWords)
	bucket, ok := patterns[class]
	if !ok || bucket.Total == 0 {
		return ""
	}
	return fmt.Sprintf("%s requests have a %.1f%% acceptance rate",
		capitalize(class), bucket.AcceptanceRate(0)*100)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
