// Package document provides loading, range selection, and write-back for the
// SQL files sqlmate formats. A document is plain text addressed by 1-based
// line/column positions, matching how editors report cursor locations.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrRangeOutOfBounds is returned when a range refers to lines or columns
// beyond the document.
var ErrRangeOutOfBounds = errors.New("range out of bounds")

// Document is a text file split into lines for range addressing.
type Document struct {
	Path    string
	Content string

	lines []string
	eol   string // "\r\n" if the file is CRLF, else "\n"
}

// Load reads a file into a Document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return New(path, string(data)), nil
}

// New creates a Document from in-memory content.
func New(path, content string) *Document {
	eol := "\n"
	if strings.Contains(content, "\r\n") {
		eol = "\r\n"
	}
	normalised := strings.ReplaceAll(content, "\r\n", "\n")
	return &Document{
		Path:    path,
		Content: content,
		lines:   strings.Split(normalised, "\n"),
		eol:     eol,
	}
}

// Dialect derives the SQL dialect from the file extension.
// ".sql" maps to "sql"; unknown extensions map to their bare name so
// user-configured providers can target them.
func (d *Document) Dialect() string {
	ext := strings.TrimPrefix(filepath.Ext(d.Path), ".")
	if ext == "" {
		return "sql"
	}
	return strings.ToLower(ext)
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the content of a 1-based line number (no terminator).
func (d *Document) Line(n int) (string, error) {
	if n < 1 || n > len(d.lines) {
		return "", fmt.Errorf("%w: line %d of %d", ErrRangeOutOfBounds, n, len(d.lines))
	}
	return d.lines[n-1], nil
}

// Text returns the normalised (LF) document text.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// Extract returns the text covered by a range.
func (d *Document) Extract(r Range) (string, error) {
	if err := d.check(r); err != nil {
		return "", err
	}
	if r.StartLine == r.EndLine {
		line := d.lines[r.StartLine-1]
		return line[r.StartCol-1 : r.EndCol-1], nil
	}

	var b strings.Builder
	b.WriteString(d.lines[r.StartLine-1][r.StartCol-1:])
	for n := r.StartLine + 1; n < r.EndLine; n++ {
		b.WriteString("\n")
		b.WriteString(d.lines[n-1])
	}
	b.WriteString("\n")
	b.WriteString(d.lines[r.EndLine-1][:r.EndCol-1])
	return b.String(), nil
}

// Splice replaces the text covered by a range and returns the full document
// text with the replacement applied. The document itself is not modified.
func (d *Document) Splice(r Range, replacement string) (string, error) {
	if err := d.check(r); err != nil {
		return "", err
	}
	before := strings.Join(d.lines[:r.StartLine-1], "\n")
	if r.StartLine > 1 {
		before += "\n"
	}
	before += d.lines[r.StartLine-1][:r.StartCol-1]

	after := d.lines[r.EndLine-1][r.EndCol-1:]
	if r.EndLine < len(d.lines) {
		after += "\n" + strings.Join(d.lines[r.EndLine:], "\n")
	}

	return before + replacement + after, nil
}

// Write saves content back to the document's file, restoring the original
// line-ending style.
func (d *Document) Write(content string) error {
	if d.eol == "\r\n" {
		content = strings.ReplaceAll(content, "\n", "\r\n")
	}
	if err := os.WriteFile(d.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", d.Path, err)
	}
	return nil
}

// check validates a range against the document bounds.
func (d *Document) check(r Range) error {
	if r.StartLine < 1 || r.EndLine > len(d.lines) || r.StartLine > r.EndLine {
		return fmt.Errorf("%w: lines %d:%d of %d", ErrRangeOutOfBounds, r.StartLine, r.EndLine, len(d.lines))
	}
	if r.StartCol < 1 || r.StartCol > len(d.lines[r.StartLine-1])+1 {
		return fmt.Errorf("%w: column %d on line %d", ErrRangeOutOfBounds, r.StartCol, r.StartLine)
	}
	if r.EndCol < 1 || r.EndCol > len(d.lines[r.EndLine-1])+1 {
		return fmt.Errorf("%w: column %d on line %d", ErrRangeOutOfBounds, r.EndCol, r.EndLine)
	}
	if r.StartLine == r.EndLine && r.EndCol < r.StartCol {
		return fmt.Errorf("%w: end column %d before start column %d", ErrRangeOutOfBounds, r.EndCol, r.StartCol)
	}
	return nil
}
