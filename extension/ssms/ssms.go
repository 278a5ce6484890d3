// Package ssms provides the ssms extension for sqlmate.
// It registers commands: ssms (with subcommands properties, args).
//
// The extension manages the SsmsMin helper tool: locating or downloading
// the executable on first use, building its command-line flag string from a
// connection profile, and spawning it for the server properties dialog.
package ssms

import (
	"context"
	"fmt"
	"sync"

	"github.com/jpl-au/sqlmate/cmd"
	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/config"
	"github.com/jpl-au/sqlmate/internal/connection"
	"github.com/jpl-au/sqlmate/internal/download"
	"github.com/jpl-au/sqlmate/internal/launch"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the ssms extension.
type Extension struct {
	cfg   *config.Config
	store *connection.Store

	// resolved holds the tool resolution outcome, assigned once under
	// resolveOnce for the life of the process.
	resolveOnce sync.Once
	resolved    download.Result
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "ssms" - this extension launches SSMS dialogs.
func (e *Extension) Name() string { return "ssms" }

// Init keeps the shared config and connection store. Tool resolution is
// deferred to the first command that needs the executable.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	e.store = ctx.Connections()
	return nil
}

// Commands returns the ssms command with its subcommands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newSsmsCmd(),
	}
}

// MCPTools exposes the flag-string builder so clients can preview exactly
// what would be passed to the tool. Nothing is spawned.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("sqlmate_ssms_args",
				mcp.WithDescription("Preview the SsmsMin command-line flags for a connection profile. Does not launch anything; passwords never appear in flags."),
				mcp.WithString("connection", mcp.Description("Profile name (default: active profile)")),
				mcp.WithString("urn", mcp.Description("Object URN to target")),
			),
			Handler: e.mcpArgs,
		},
	}
}

func (e *Extension) newSsmsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ssms",
		Short: "Launch SSMS dialogs via the SsmsMin tool",
		Long: `Launch SQL Server Management Studio dialogs through the SsmsMin helper.

The helper executable is downloaded on first use into the tools directory
under the config directory (override with ssms.url and ssms.dir). Commands
use the active connection profile unless -c/--connection names another.`,
	}
	c.AddCommand(e.newPropertiesCmd())
	c.AddCommand(e.newArgsCmd())
	return c
}

// params builds the launch parameters for a profile. The action is always
// the server-properties dialog; SsmsMin ignores anything else we would ask
// for, so nothing else is offered.
func params(p connection.Profile, urn string) launch.Params {
	return launch.Params{
		Action:   launch.ServerPropertiesAction,
		Server:   p.Server,
		Database: p.Database,
		User:     p.User,
		Password: p.Password,
		UseAAD:   p.UseAAD(),
		URN:      urn,
	}
}

// resolveProfile returns the profile named by -c/--connection, or the
// active one.
func (e *Extension) resolveProfile() (connection.Profile, error) {
	return e.store.Resolve(cmd.Connection())
}

// --- MCP handlers ---

func (e *Extension) mcpArgs(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := getString(req, "connection", "")
	urn := getString(req, "urn", "")

	p, err := extCtx.Connections().Resolve(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// The password goes to the tool's stdin, never into the flag string,
	// so the preview is safe to echo.
	return mcp.NewToolResultText(fmt.Sprintf("SsmsMin%s", params(p, urn).CommandArgs())), nil
}

// getString extracts an optional string parameter, defaulting when missing.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil && v != "" {
		return v
	}
	return def
}
