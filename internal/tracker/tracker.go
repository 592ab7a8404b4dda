package tracker

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

// DefaultRetentionDays is the retention window used when a caller passes
// no explicit value to Cleanup.
const DefaultRetentionDays = 30

// minAssessHistory is the record count below which Assess reports that
// there is not enough history for pattern analysis.
const minAssessHistory = 5

// similarAcceptedLimit caps the similar-accepted list in an Assessment.
const similarAcceptedLimit = 3

// Tracker is the facade over the store and the analysis functions. It is
// called once per suggestion, once per user decision, and optionally once
// per execution outcome; the query methods are read-only.
type Tracker struct {
	store       *store.Store
	log         *zap.Logger
	now         func() time.Time
	archivePath string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger routes engine diagnostics to the given logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithArchive enables archiving of pruned records into the SQLite database
// at the given path.
func WithArchive(path string) Option {
	return func(t *Tracker) { t.archivePath = path }
}

// New creates a Tracker over an opened store.
func New(st *store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: st,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TrackSuggestion records a presented suggestion and returns its tracking
// ID. The command hash and feature vector are computed here, once, and
// stored immutably with the record.
func (t *Tracker) TrackSuggestion(request, command, model string, sys store.SystemInfo) string {
	rec := store.SuggestionRecord{
		TrackingID:       uuid.New().String(),
		Timestamp:        t.now(),
		UserRequest:      request,
		SuggestedCommand: command,
		CommandHash:      HashCommand(command),
		ModelUsed:        model,
		SystemInfo:       sys,
		Features:         ExtractFeatures(command, request),
		Decision:         store.DecisionPending,
		ExecutionOutcome: store.ExecutionNotRun,
	}
	t.store.Append(rec)

	t.log.Debug("tracked suggestion",
		zap.String("tracking_id", rec.TrackingID),
		zap.String("command_type", rec.Features.CommandType),
		zap.String("command_hash", rec.CommandHash))
	return rec.TrackingID
}

// TrackDecision records the user's accept/reject verdict. Unknown IDs and
// already-resolved records are silently ignored.
func (t *Tracker) TrackDecision(trackingID string, accepted bool, feedback string) {
	t.store.UpdateDecision(trackingID, accepted, feedback)
	t.log.Debug("tracked decision",
		zap.String("tracking_id", trackingID), zap.Bool("accepted", accepted))
}

// TrackExecution records the outcome of running a suggested command.
// Unknown IDs are silently ignored.
func (t *Tracker) TrackExecution(trackingID string, success bool, output string) {
	t.store.UpdateExecution(trackingID, success, output)
	t.log.Debug("tracked execution",
		zap.String("tracking_id", trackingID), zap.Bool("success", success))
}

// Similar returns accepted past suggestions similar to the given request
// and candidate command, best match first. command may be empty when no
// candidate exists yet.
func (t *Tracker) Similar(request, command string, limit int) []SimilarSuggestion {
	features := ExtractFeatures(command, request)
	matches := FindSimilar(request, features, t.store.Records(), limit)

	var similar []SimilarSuggestion
	for _, m := range matches {
		if m.Record.Decision != store.DecisionAccepted {
			continue
		}
		indicator := 0.0
		if m.Record.ExecutionOutcome == store.ExecutionSucceeded {
			indicator = 1.0
		}
		similar = append(similar, SimilarSuggestion{
			Command:          m.Record.SuggestedCommand,
			Request:          m.Record.UserRequest,
			SuccessIndicator: indicator,
		})
	}
	return similar
}

// Assess evaluates a candidate suggestion before display: confidence score
// for its command type, similar accepted commands, and qualitative notes.
func (t *Tracker) Assess(request, command string) Assessment {
	assessment := Assessment{ConfidenceScore: defaultConfidence}

	if len(t.store.Records()) < minAssessHistory {
		assessment.Recommendations = append(assessment.Recommendations,
			"Not enough history for pattern analysis")
		return assessment
	}

	similar := t.Similar(request, command, DefaultSimilarLimit)
	if len(similar) > similarAcceptedLimit {
		similar = similar[:similarAcceptedLimit]
	}
	assessment.SimilarAccepted = similar

	features := ExtractFeatures(command, request)
	patterns := t.store.Patterns()

	assessment.ConfidenceScore = Confidence(patterns, features.CommandType)
	if rec := recommendationFor(assessment.ConfidenceScore, features.CommandType); rec != "" {
		assessment.Recommendations = append(assessment.Recommendations, rec)
	}
	if insight := lengthClassInsight(patterns, features.RequestWordCount); insight != "" {
		assessment.PatternInsights = append(assessment.PatternInsights, insight)
	}

	return assessment
}

// Statistics returns the full statistics report.
func (t *Tracker) Statistics() Report {
	return BuildReport(t.store.Records(), t.store.Statistics(), t.now())
}

// Insights returns human-readable observations about the history.
func (t *Tracker) Insights() []string {
	return Insights(t.store.Records(), t.store.Statistics(), t.now())
}

// Cleanup removes records older than daysToKeep days (default 30) and
// returns the number removed. When an archive path is configured, removed
// records are copied into the SQLite archive first; archive failures are
// logged but do not undo the prune.
func (t *Tracker) Cleanup(daysToKeep int) int {
	if daysToKeep <= 0 {
		daysToKeep = DefaultRetentionDays
	}
	cutoff := t.now().AddDate(0, 0, -daysToKeep)

	removed := t.store.Prune(cutoff)
	if len(removed) == 0 {
		return 0
	}

	if t.archivePath != "" {
		t.archive(removed)
	}

	t.log.Info("pruned old suggestion records",
		zap.Int("removed", len(removed)), zap.Time("cutoff", cutoff))
	return len(removed)
}

func (t *Tracker) archive(records []store.SuggestionRecord) {
	arch, err := store.OpenArchive(t.archivePath)
	if err != nil {
		t.log.Warn("could not open archive", zap.String("path", t.archivePath), zap.Error(err))
		return
	}
	defer func() { _ = arch.Close() }()

	if err := arch.ArchiveRecords(records); err != nil {
		t.log.Warn("could not archive pruned records", zap.Error(err))
	}
}

// Export writes a full snapshot to path (or a timestamp-derived filename
// when path is empty) and returns the path written.
func (t *Tracker) Export(path string) (string, error) {
	now := t.now()
	if path == "" {
		path = defaultExportPath(now)
	}

	records := t.store.Records()
	snap := Snapshot{
		ExportedAt:    now,
		Statistics:    BuildReport(records, t.store.Statistics(), now),
		Insights:      Insights(records, t.store.Statistics(), now),
		Commands:      records,
		Patterns:      t.store.Patterns(),
		TotalCommands: len(records),
	}

	if err := WriteSnapshot(snap, path); err != nil {
		return "", err
	}
	return path, nil
}
