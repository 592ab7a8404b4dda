package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// ErrCorruptState indicates the persisted history file existed but could not
// be parsed, and the one-shot reinitialization also failed.
var ErrCorruptState = errors.New("corrupt history state")

// maxExecutionOutput is the stored length cap for execution output, in runes.
const maxExecutionOutput = 1000

// Store owns the suggestion history document and is its sole writer. Every
// mutating call rewrites the whole document; a failed write is logged as a
// warning and the in-memory state carries on. The design assumes a single
// writer process; there is no cross-process locking.
type Store struct {
	path string
	doc  History
	log  *zap.Logger
	now  func() time.Time
}

// Open loads the history document at path, or initializes the default schema
// when no file exists yet. A file that exists but cannot be parsed is
// reinitialized to the default schema exactly once; if that rewrite fails too,
// Open returns an error wrapping ErrCorruptState.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{path: path, log: log, now: time.Now}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.doc = defaultHistory()
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		log.Warn("history file unreadable, reinitializing",
			zap.String("path", path), zap.Error(err))
		s.doc = defaultHistory()
		if saveErr := s.save(); saveErr != nil {
			return nil, fmt.Errorf("%w: %v (reinitialize failed: %v)", ErrCorruptState, err, saveErr)
		}
		return s, nil
	}

	if s.doc.Patterns == nil {
		s.doc.Patterns = map[string]PatternBucket{}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Records returns a copy of the chronological record list. The store is
// the sole writer; callers may not reach its state through the accessors.
func (s *Store) Records() []SuggestionRecord {
	records := make([]SuggestionRecord, len(s.doc.Commands))
	copy(records, s.doc.Commands)
	return records
}

// Patterns returns a copy of the bucket table.
func (s *Store) Patterns() map[string]PatternBucket {
	patterns := make(map[string]PatternBucket, len(s.doc.Patterns))
	for key, bucket := range s.doc.Patterns {
		patterns[key] = bucket
	}
	return patterns
}

// Statistics returns the aggregate summary.
func (s *Store) Statistics() Statistics {
	return s.doc.Statistics
}

// Get returns the record with the given tracking ID, or nil.
func (s *Store) Get(trackingID string) *SuggestionRecord {
	return s.find(trackingID)
}

// Append adds a new record and bumps the suggestion total.
func (s *Store) Append(rec SuggestionRecord) {
	s.doc.Commands = append(s.doc.Commands, rec)
	s.doc.Statistics.TotalSuggestions++
	s.persist()
}

// UpdateDecision records the user's verdict for a tracked suggestion.
// Unknown IDs are ignored, and a record that is already resolved is left
// untouched, so repeated calls can never double-count. On the first
// resolution the global counters, the acceptance rate, and both pattern
// bucket families are updated.
func (s *Store) UpdateDecision(trackingID string, accepted bool, feedback string) {
	rec := s.find(trackingID)
	if rec == nil || rec.Decision.Resolved() {
		return
	}

	now := s.now()
	rec.UserFeedback = feedback
	rec.DecisionTimestamp = &now
	if accepted {
		rec.Decision = DecisionAccepted
		s.doc.Statistics.TotalAccepted++
	} else {
		rec.Decision = DecisionRejected
		s.doc.Statistics.TotalRejected++
	}

	stats := &s.doc.Statistics
	if stats.TotalSuggestions > 0 {
		stats.AcceptanceRate = float64(stats.TotalAccepted) / float64(stats.TotalSuggestions) * 100
	} else {
		stats.AcceptanceRate = 0
	}

	s.applyPatterns(*rec, accepted)
	s.persist()
}

// UpdateExecution records the outcome of actually running a suggested
// command. It is independent of the decision state: the engine does not
// require that execution follows acceptance. Output is clipped to 1000
// characters. Unknown IDs are ignored.
func (s *Store) UpdateExecution(trackingID string, success bool, output string) {
	rec := s.find(trackingID)
	if rec == nil {
		return
	}

	now := s.now()
	if success {
		rec.ExecutionOutcome = ExecutionSucceeded
	} else {
		rec.ExecutionOutcome = ExecutionFailed
	}
	rec.ExecutionOutput = clipRunes(output, maxExecutionOutput)
	rec.ExecutionTimestamp = &now
	s.persist()
}

// Prune removes every record whose timestamp is strictly older than cutoff
// and returns the removed records. The pruned document is persisted only
// when something was removed.
func (s *Store) Prune(cutoff time.Time) []SuggestionRecord {
	kept := s.doc.Commands[:0]
	var removed []SuggestionRecord
	for _, rec := range s.doc.Commands {
		if rec.Timestamp.Before(cutoff) {
			removed = append(removed, rec)
			continue
		}
		kept = append(kept, rec)
	}
	if len(removed) == 0 {
		return nil
	}
	s.doc.Commands = kept
	s.persist()
	return removed
}

func (s *Store) find(trackingID string) *SuggestionRecord {
	for i := range s.doc.Commands {
		if s.doc.Commands[i].TrackingID == trackingID {
			return &s.doc.Commands[i]
		}
	}
	return nil
}

// persist rewrites the whole document. Failures are warnings: the in-memory
// state stays authoritative for the rest of the process.
func (s *Store) persist() {
	if err := s.save(); err != nil {
		s.log.Warn("could not save history", zap.String("path", s.path), zap.Error(err))
	}
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// clipRunes truncates s to at most n characters.
func clipRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
