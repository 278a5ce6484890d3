// Package formatter defines the provider contract and registry for SQL
// formatting. Providers encapsulate a single formatting strategy (built-in
// text transforms or user-configured external commands) and register at init
// time, so the picker can offer every provider without core code knowing
// about specific implementations.
package formatter

import "context"

// Provider identifies a formatting capability.
type Provider interface {
	// Name returns the display name shown in the picker. May be empty;
	// callers fall back to the source identifier.
	Name() string

	// Source returns the identifier of the package contributing this
	// provider. Empty is reported as "unknown" in telemetry.
	Source() string
}

// DocumentFormatter rewrites an entire document.
type DocumentFormatter interface {
	Provider

	// FormatDocument returns the formatted form of the full document text.
	FormatDocument(ctx context.Context, content string) (string, error)
}

// RangeFormatter rewrites a selected span of a document.
type RangeFormatter interface {
	Provider

	// FormatRange returns the formatted form of the extracted range text.
	// The caller splices the result back into the document.
	FormatRange(ctx context.Context, text string) (string, error)
}
