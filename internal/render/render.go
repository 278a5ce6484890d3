// Package render provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment.
package render

import (
	"fmt"
	"io"

	"github.com/jpl-au/sqlmate/internal/connection"
)

// Connections prints profiles in long format with an active marker.
// Passwords are never shown.
func Connections(w io.Writer, profiles []connection.Profile, active string) error {
	if len(profiles) == 0 {
		_, err := fmt.Fprintln(w, "no connections - run: sqlmate connection add")
		return err
	}

	// Find max widths for alignment
	nameW, serverW := len("NAME"), len("SERVER")
	for _, p := range profiles {
		nameW = max(nameW, len(p.Name))
		serverW = max(serverW, len(p.Server))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %-10s  %s\n", nameW, "NAME", serverW, "SERVER", "AUTH", "DATABASE")
	for _, p := range profiles {
		marker := " "
		if p.Name == active {
			marker = "*"
		}
		db := p.Database
		if db == "" {
			db = "-"
		}
		fmt.Fprintf(w, "%s %-*s  %-*s  %-10s  %s\n", marker, nameW, p.Name, serverW, p.Server, p.AuthMode(), db)
	}
	return nil
}

// Providers prints picker entries outside the interactive prompt, for
// the --list flag on format commands.
func Providers(w io.Writer, labels, sources []string) {
	for i, label := range labels {
		src := "unknown"
		if i < len(sources) && sources[i] != "" {
			src = sources[i]
		}
		fmt.Fprintf(w, "%2d) %-30s %s\n", i+1, label, src)
	}
}

// KeyValues prints an aligned key: value listing, sorted order is the
// caller's concern.
func KeyValues(w io.Writer, pairs [][2]string) {
	keyW := 0
	for _, kv := range pairs {
		keyW = max(keyW, len(kv[0]))
	}
	for _, kv := range pairs {
		fmt.Fprintf(w, "%-*s  %s\n", keyW, kv[0]+":", kv[1])
	}
}
