// document.go implements "sqlmate format document".

package format

import (
	"fmt"

	"github.com/jpl-au/sqlmate/cmd"
	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/document"
	"github.com/jpl-au/sqlmate/internal/formatter"
	"github.com/spf13/cobra"
)

func (e *Extension) newDocumentCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "document <file>",
		Short: "Format a whole file with a picked provider",
		Long: `Format a whole file with a provider picked from the applicable list.

  sqlmate format document query.sql
  sqlmate format document query.sql --use sqlmate.builtin.keywords
  sqlmate format document query.sql --diff`,
		Args: cobra.ExactArgs(1),
		RunE: e.runDocument,
	}
	c.Flags().String(extension.FlagUse, "", "Skip the picker: provider by position, source, or name")
	c.Flags().Bool(extension.FlagList, false, "List applicable providers and exit")
	c.Flags().Bool(extension.FlagDiff, false, "Show the change instead of writing the file")
	return c
}

func (e *Extension) runDocument(c *cobra.Command, args []string) error {
	use, _ := c.Flags().GetString(extension.FlagUse)
	listOnly, _ := c.Flags().GetBool(extension.FlagList)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	doc, err := document.Load(args[0])
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	formatters := formatter.DocumentFormatters(doc.Dialect())
	providers := make([]formatter.Provider, len(formatters))
	for i, f := range formatters {
		providers[i] = f
	}
	inv := newInvocation("document", providers)

	if listOnly {
		inv.list()
		return nil
	}
	if len(formatters) < 2 {
		return cmd.PrintJSONError(fmt.Errorf("%w: %d apply to %q documents", ErrTooFewProviders, len(formatters), doc.Dialect()))
	}

	chosen, err := inv.choose(c.Context(), e.picker, use)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if chosen == nil {
		return nil // cancelled
	}

	formatted, err := chosen.(formatter.DocumentFormatter).FormatDocument(c.Context(), doc.Text())
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return apply(doc, formatted, showDiff)
}
