// selection.go implements "sqlmate format selection".
//
// The selection is given as a line span (--lines) or a cursor position
// (--at). A cursor position is a collapsed selection and is widened to the
// full line containing it before formatting, so "format the line under the
// cursor" works without marking the line first.

package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/sqlmate/cmd"
	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/document"
	"github.com/jpl-au/sqlmate/internal/formatter"
	"github.com/spf13/cobra"
)

func (e *Extension) newSelectionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "selection <file>",
		Short: "Format part of a file with a picked provider",
		Long: `Format part of a file with a provider picked from the applicable list.

  sqlmate format selection query.sql --lines 3:10
  sqlmate format selection query.sql --at 7        # the line holding the cursor
  sqlmate format selection query.sql --at 7:12

Only genuinely registered providers format selections; configured external
commands are offered for whole documents only.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runSelection,
	}
	c.Flags().String(extension.FlagLines, "", "Line span start:end (1-based, inclusive)")
	c.Flags().String(extension.FlagAt, "", "Cursor position line[:col], widened to the full line")
	c.Flags().String(extension.FlagUse, "", "Skip the picker: provider by position, source, or name")
	c.Flags().Bool(extension.FlagList, false, "List applicable providers and exit")
	c.Flags().Bool(extension.FlagDiff, false, "Show the change instead of writing the file")
	c.MarkFlagsMutuallyExclusive(extension.FlagLines, extension.FlagAt)
	return c
}

func (e *Extension) runSelection(c *cobra.Command, args []string) error {
	lines, _ := c.Flags().GetString(extension.FlagLines)
	at, _ := c.Flags().GetString(extension.FlagAt)
	use, _ := c.Flags().GetString(extension.FlagUse)
	listOnly, _ := c.Flags().GetBool(extension.FlagList)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	doc, err := document.Load(args[0])
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	rangeFormatters := formatter.RangeFormatters(doc.Dialect())
	providers := make([]formatter.Provider, len(rangeFormatters))
	for i, f := range rangeFormatters {
		providers[i] = f
	}
	inv := newInvocation("range", providers)

	if listOnly {
		inv.list()
		return nil
	}
	if lines == "" && at == "" {
		return cmd.PrintJSONError(fmt.Errorf("one of --%s or --%s is required", extension.FlagLines, extension.FlagAt))
	}
	if len(rangeFormatters) < 2 {
		return cmd.PrintJSONError(fmt.Errorf("%w: %d apply to %q selections", ErrTooFewProviders, len(rangeFormatters), doc.Dialect()))
	}

	r, err := parseRange(doc, lines, at)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	chosen, err := inv.choose(c.Context(), e.picker, use)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if chosen == nil {
		return nil // cancelled
	}

	text, err := doc.Extract(r)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	formatted, err := chosen.(formatter.RangeFormatter).FormatRange(c.Context(), text)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	spliced, err := doc.Splice(r, formatted)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return apply(doc, spliced, showDiff)
}

// parseRange turns the --lines or --at flag into a document range. A
// collapsed --at position is widened to its full line.
func parseRange(doc *document.Document, lines, at string) (document.Range, error) {
	if lines != "" {
		start, end, err := splitPair(lines, "lines")
		if err != nil {
			return document.Range{}, err
		}
		return doc.Lines(start, end)
	}

	line, col := 0, 1
	if strings.Contains(at, ":") {
		var err error
		line, col, err = splitPair(at, "at")
		if err != nil {
			return document.Range{}, err
		}
	} else {
		n, err := strconv.Atoi(at)
		if err != nil {
			return document.Range{}, fmt.Errorf("invalid --at %q: want line or line:col", at)
		}
		line = n
	}

	r := document.At(line, col)
	return doc.Widen(r)
}

func splitPair(s, flag string) (int, int, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --%s %q: want two numbers separated by :", flag, s)
	}
	first, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --%s %q: %w", flag, s, err)
	}
	second, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --%s %q: %w", flag, s, err)
	}
	return first, second, nil
}
