package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// currentArchiveVersion is the latest archive schema version.
const currentArchiveVersion = 1

// Archive is the SQLite database that keeps records pruned from the live
// JSON document. It is written only by cleanup; nothing in the engine reads
// it back, it exists so retention does not mean data loss.
type Archive struct {
	conn *sql.DB
}

// OpenArchive opens or creates the archive database at the given path,
// creating the parent directory if needed.
func OpenArchive(dbPath string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	a := &Archive{conn: conn}
	if err := a.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return a, nil
}

// OpenArchiveInMemory opens an in-memory archive, useful for testing.
func OpenArchiveInMemory() (*Archive, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	a := &Archive{conn: conn}
	if err := a.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.conn.Close()
}

func (a *Archive) migrate() error {
	if _, err := a.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := a.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := a.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

func (a *Archive) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pruned_commands (
			tracking_id       TEXT PRIMARY KEY,
			timestamp         TEXT NOT NULL,
			user_request      TEXT NOT NULL,
			suggested_command TEXT NOT NULL,
			command_hash      TEXT NOT NULL,
			model_used        TEXT,
			decision          TEXT NOT NULL,
			execution_outcome TEXT NOT NULL,
			archived_at       TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pruned_commands_hash ON pruned_commands(command_hash)`,
		`CREATE INDEX IF NOT EXISTS idx_pruned_commands_timestamp ON pruned_commands(timestamp)`,
	}

	tx, err := a.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentArchiveVersion); err != nil {
		return err
	}

	return tx.Commit()
}

// ArchiveRecords inserts pruned records. Records already archived under the
// same tracking ID are skipped.
func (a *Archive) ArchiveRecords(records []SuggestionRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := a.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	archivedAt := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO pruned_commands
			(tracking_id, timestamp, user_request, suggested_command, command_hash,
			 model_used, decision, execution_outcome, archived_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.TrackingID, rec.Timestamp.UTC().Format(time.RFC3339), rec.UserRequest,
			rec.SuggestedCommand, rec.CommandHash, rec.ModelUsed,
			string(rec.Decision), string(rec.ExecutionOutcome), archivedAt,
		); err != nil {
			return fmt.Errorf("archiving %s: %w", rec.TrackingID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of archived records.
func (a *Archive) Count() (int, error) {
	var n int
	err := a.conn.QueryRow("SELECT COUNT(*) FROM pruned_commands").Scan(&n)
	return n, err
}
