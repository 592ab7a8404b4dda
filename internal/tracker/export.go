package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/cmdtrack/internal/store"
)

// ErrExport indicates a snapshot export could not be written. It is fatal
// to the export call only; nothing else in the engine depends on it.
var ErrExport = errors.New("export failed")

// Snapshot is the full export document: every record, the pattern table,
// the statistics report, and freshly computed insights.
type Snapshot struct {
	ExportedAt    time.Time                      `json:"export_timestamp"`
	Statistics    Report                         `json:"statistics"`
	Insights      []string                       `json:"insights"`
	Commands      []store.SuggestionRecord       `json:"command_history"`
	Patterns      map[string]store.PatternBucket `json:"patterns"`
	TotalCommands int                            `json:"total_commands"`
}

// WriteSnapshot serializes the snapshot to path. A .yaml or .yml extension
// selects YAML, anything else gets indented JSON. The encoded field names
// are the JSON ones in both formats.
func WriteSnapshot(snap Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %v", ErrExport, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// Round-trip through the JSON encoding so the YAML document keeps
		// the same snake_case keys.
		var doc map[string]interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: encoding snapshot: %v", ErrExport, err)
		}
		if data, err = yaml.Marshal(doc); err != nil {
			return fmt.Errorf("%w: encoding snapshot: %v", ErrExport, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

// defaultExportPath builds the timestamp-derived filename used when the
// caller does not supply one.
func defaultExportPath(now time.Time) string {
	return fmt.Sprintf("cmdtrack_export_%s.json", now.Format("20060102_150405"))
}
