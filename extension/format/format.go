// Package format provides the format extension for sqlmate.
// It registers commands: format (with subcommands document, selection).
//
// Both subcommands resolve the providers applicable to the file's dialect,
// present them in a picker, and run the chosen provider. The provider list
// order comes straight from the registry; the index captured when listing
// is the index used for dispatch within the same invocation.
package format

import (
	// Built-in providers self-register during init
	_ "github.com/jpl-au/sqlmate/internal/formatter/builtin"

	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/config"
	"github.com/jpl-au/sqlmate/internal/formatter"
	"github.com/jpl-au/sqlmate/internal/pick"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the format extension.
type Extension struct {
	picker pick.Picker
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "format" - this extension provides SQL formatting commands.
func (e *Extension) Name() string { return "format" }

// Init installs the user-configured formatters as document fallbacks and
// keeps the shared picker for the interactive prompt.
func (e *Extension) Init(ctx extension.Context) error {
	e.picker = ctx.Picker()
	formatter.SetFallbacks(execFallbacks(ctx.Config()))
	return nil
}

// execFallbacks synthesizes document formatters from config. They run after
// registered providers in picker order and never format ranges.
func execFallbacks(cfg *config.Config) []formatter.DocumentFormatter {
	var out []formatter.DocumentFormatter
	for _, f := range cfg.Formatters {
		out = append(out, formatter.NewExec(f.Name, f.Command, f.Args, f.Dialects))
	}
	return out
}

// Commands returns the format command with its subcommands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newFormatCmd(),
	}
}

func (e *Extension) newFormatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "format",
		Short: "Format SQL files with a chosen provider",
		Long: `Format a SQL file, or part of one, with a provider picked from a list.

Providers come from the built-in formatters plus any external commands
configured under the formatters: key in config.yaml. The picker is only
offered when more than one provider applies.`,
	}
	c.AddCommand(e.newDocumentCmd())
	c.AddCommand(e.newSelectionCmd())
	return c
}
