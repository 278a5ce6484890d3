// exec.go implements the configured external-command formatter.
//
// Separated from registry.go because these providers are synthesized from
// user configuration at startup rather than registered at init time. They
// pipe the document through a command (sqlformat, pg_format, prettier...)
// and read the result from stdout, the same contract treefmt-style tools use.

package formatter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Exec formats documents by piping them through an external command.
// Exec providers are document-only: external tools cannot be trusted to
// preserve surrounding context for partial input.
type Exec struct {
	name     string
	command  string
	args     []string
	dialects map[string]bool // nil means all dialects
}

// NewExec creates an external-command formatter scoped to the given dialects.
// No dialects means the formatter applies everywhere.
func NewExec(name, command string, args, dialects []string) *Exec {
	e := &Exec{name: name, command: command, args: args}
	if len(dialects) > 0 {
		e.dialects = make(map[string]bool, len(dialects))
		for _, d := range dialects {
			e.dialects[d] = true
		}
	}
	return e
}

// Applies reports whether this formatter is offered for a dialect.
func (e *Exec) Applies(dialect string) bool {
	return e.dialects == nil || e.dialects[dialect]
}

// Name returns the configured display name.
func (e *Exec) Name() string { return e.name }

// Source returns "" - configured commands have no contributing package, and
// telemetry reports them as "unknown".
func (e *Exec) Source() string { return "" }

// FormatDocument pipes content through the command and returns its stdout.
// A non-zero exit fails with the command's stderr in the error.
func (e *Exec) FormatDocument(ctx context.Context, content string) (string, error) {
	cmd := exec.CommandContext(ctx, e.command, e.args...)
	cmd.Stdin = strings.NewReader(content)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("formatter %q: %w: %s", e.name, err, msg)
		}
		return "", fmt.Errorf("formatter %q: %w", e.name, err)
	}
	return stdout.String(), nil
}
