// Package core provides the core extension for sqlmate.
// It registers commands: config, version, guide, serve.
package core

import (
	"github.com/jpl-au/sqlmate/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.Standalone = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental sqlmate commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - core commands have no MCP tool equivalents.
// MCP tools are provided by the feature extensions (format, ssms, connection).
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// StandaloneCommands returns commands that work without the shared context.
// config: must work on a fresh machine before any config file exists.
// serve: long-running MCP server manages its own service lifecycle.
// guide: documentation lookup, needs nothing.
// version: displays build info, needs nothing.
func (e *Extension) StandaloneCommands() []string {
	return []string{"config", "serve", "guide", "version"}
}
