// storage.go implements SQLite-based persistent event storage.
//
// Separated from telemetry.go to isolate database concerns. The main
// telemetry.go provides the fluent API for building events, while this file
// handles persistence. Using SQLite enables cross-project queries and
// structured filtering that plain text logs cannot provide. The project field
// uses a hash of the directory path to enable aggregation while preserving
// privacy.
//
// Design: Errors during recording are reported to stderr but otherwise
// ignored. This prevents telemetry failures from breaking the main operation -
// a format or launch should succeed even if we can't record it.

package telemetry

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Recorder writes events to a SQLite database.
type Recorder struct {
	db      *sql.DB
	project string
}

func (r *Recorder) record(e Entry) {
	var props *string
	if len(e.Props) > 0 {
		if b, err := json.Marshal(e.Props); err == nil {
			s := string(b)
			props = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO events (start, end, project, name, success, error, props)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, r.project, e.Name, success, nilIfEmpty(e.Error), props,
	)
	if err != nil {
		// Best-effort: don't break the main operation, but report failure
		_, _ = fmt.Fprintf(os.Stderr, "sqlmate: telemetry write failed: %v\n", err)
	}
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		// This allows recording to work in unusual environments (containers,
		// etc.) rather than silently failing.
		return filepath.Join(".sqlmate", "telemetry", "events.db")
	}
	return filepath.Join(home, ".sqlmate", "telemetry", "events.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the telemetry database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path, enabling
// cross-project queries while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the events table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			project TEXT NOT NULL,
			name    TEXT NOT NULL,
			success INTEGER NOT NULL,
			error   TEXT,
			props   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_events_start ON events(start);
		CREATE INDEX IF NOT EXISTS idx_events_project ON events(project);
		CREATE INDEX IF NOT EXISTS idx_events_name ON events(name);
	`)
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
