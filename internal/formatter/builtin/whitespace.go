// whitespace.go implements the trailing-whitespace formatter.
//
// Separated from keywords.go so each provider file carries one transform.

package builtin

import (
	"context"
	"strings"

	"github.com/jpl-au/sqlmate/internal/formatter"
)

func init() {
	formatter.Register(&Whitespace{}, "sql", "tsql")
}

// Whitespace strips trailing spaces and tabs from every line and collapses
// runs of blank lines to a single one.
type Whitespace struct{}

// Name returns the picker display name.
func (w *Whitespace) Name() string { return "Trim whitespace" }

// Source identifies the contributing package.
func (w *Whitespace) Source() string { return "sqlmate.builtin.whitespace" }

// FormatDocument normalises whitespace across the whole document.
func (w *Whitespace) FormatDocument(_ context.Context, content string) (string, error) {
	return trim(content), nil
}

// FormatRange normalises whitespace in the extracted range text.
func (w *Whitespace) FormatRange(_ context.Context, text string) (string, error) {
	return trim(text), nil
}

func trim(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
