// Package telemetry provides centralised event recording for sqlmate
// operations. Events are stored in ~/.sqlmate/telemetry/events.db and track
// command outcomes across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write events:
//
//	telemetry.Event("formatterpick").
//		Prop("mode", "document").
//		Prop("pick", picked).
//		Write(err)
//
//	telemetry.Event("LaunchSsmsDialogResult").
//		Prop("action", action).
//		Prop("returnCode", code).
//		Write(nil)
//
// Recording is best-effort: a failure to write an event never breaks the
// operation being recorded.
package telemetry

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Recorder
	mu     sync.Mutex
)

// Entry represents a single recorded event.
type Entry struct {
	Name  string         // event name, e.g. "formatterpick", "LaunchSsmsDialog"
	Props map[string]any // event-specific key-value payload

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool   // whether the recorded operation succeeded
	Error   string // error message if failed
}

// Builder constructs an event using a fluent API.
// Create with [Event], chain [Builder.Prop] to attach payload fields, then
// call [Builder.Write] to record the event.
type Builder struct {
	entry Entry
}

// Event creates a new event builder.
//
// Well-known event names: "formatterpick", "startup/ExtensionStarted",
// "startup/ExtensionInitializationFailed", "LaunchSsmsDialog",
// "LaunchSsmsDialogResult".
func Event(name string) *Builder {
	return &Builder{
		entry: Entry{
			Name:  name,
			Start: time.Now().Unix(),
		},
	}
}

// Prop adds a key-value pair to the event payload.
// Can be called multiple times to add multiple properties.
func (b *Builder) Prop(key string, value any) *Builder {
	if b.entry.Props == nil {
		b.entry.Props = make(map[string]any)
	}
	b.entry.Props[key] = value
	return b
}

// Write records the event, deriving success/failure from err.
//
// If err is nil, the event is recorded as successful.
// If err is non-nil, the event is recorded as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Record(b.entry)
}

// Open initialises the global recorder. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Recorder{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent events.
// The dir should be the absolute path to the active config directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Record writes an entry. Safe to call if the recorder is not initialised (no-op).
func Record(e Entry) {
	mu.Lock()
	r := global
	mu.Unlock()

	if r == nil {
		return
	}
	r.record(e)
}

// Close closes the global recorder.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
