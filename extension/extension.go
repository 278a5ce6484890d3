// Package extension provides the plugin architecture for sqlmate. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for sqlmate extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions can perform setup once shared services exist.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// don't require the shared context. Commands returned by
// StandaloneCommands() will not trigger context initialisation in
// PersistentPreRunE.
//
// Use cases:
//  1. Bootstrap commands (config, version, guide) that must work on a
//     fresh machine before any configuration exists
//  2. Commands that manage their own service lifecycle (serve)
type Standalone interface {
	StandaloneCommands() []string
}
