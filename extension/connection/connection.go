// Package connection provides the connection extension for sqlmate.
// It registers commands: connection (with subcommands add, ls, rm, use).
package connection

import (
	"context"
	"fmt"
	"os"

	"github.com/jpl-au/sqlmate/cmd"
	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/connection"
	"github.com/jpl-au/sqlmate/internal/render"
	"github.com/jpl-au/sqlmate/internal/telemetry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the connection extension.
type Extension struct {
	store *connection.Store
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "connection" - this extension manages saved server profiles.
func (e *Extension) Name() string { return "connection" }

// Init receives the shared connection store from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.store = ctx.Connections()
	return nil
}

// Commands returns the connection command with its subcommands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newConnectionCmd(),
	}
}

// MCPTools exposes the profile list to MCP clients. Passwords are never
// included in tool output.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("sqlmate_connections",
				mcp.WithDescription("List saved SQL Server connection profiles. Passwords are omitted."),
			),
			Handler: e.mcpList,
		},
	}
}

// --- connection command with subcommands ---

func (e *Extension) newConnectionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "connection",
		Short: "Manage connection profiles",
		Long: `Add, list, remove, and select SQL Server connection profiles.

Profiles are stored in connections.yaml next to the active config file.
The active profile is used by ssms commands when -c/--connection is not
given.`,
	}
	c.AddCommand(e.newAddCmd())
	c.AddCommand(e.newLsCmd())
	c.AddCommand(e.newRmCmd())
	c.AddCommand(e.newUseCmd())
	return c
}

func (e *Extension) newAddCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a connection profile",
		Long: `Add a connection profile.

  sqlmate connection add prod --server db.example.com --user sa
  sqlmate connection add corp --server db.corp.local --auth aad

With sql auth the password is prompted for unless --password is given.
The first profile added becomes the active profile.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runAdd,
	}
	c.Flags().StringP(extension.FlagServer, "S", "", "Server host or host,port (required)")
	c.Flags().StringP(extension.FlagDatabase, "D", "", "Default database")
	c.Flags().StringP(extension.FlagUser, "U", "", "Login user (sql auth)")
	c.Flags().String(extension.FlagPassword, "", "Login password (prompted if omitted)")
	c.Flags().String(extension.FlagAuth, connection.AuthSQL, "Authentication mode: sql, aad, integrated")
	_ = c.MarkFlagRequired(extension.FlagServer)
	return c
}

func (e *Extension) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List connection profiles",
		Args:  cobra.NoArgs,
		RunE:  e.runLs,
	}
}

func (e *Extension) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a connection profile",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runRm,
	}
}

func (e *Extension) newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Set the active connection profile",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runUse,
	}
}

func (e *Extension) runAdd(c *cobra.Command, args []string) error {
	p := connection.Profile{Name: args[0]}
	p.Server, _ = c.Flags().GetString(extension.FlagServer)
	p.Database, _ = c.Flags().GetString(extension.FlagDatabase)
	p.User, _ = c.Flags().GetString(extension.FlagUser)
	p.Password, _ = c.Flags().GetString(extension.FlagPassword)
	p.Auth, _ = c.Flags().GetString(extension.FlagAuth)

	switch p.Auth {
	case connection.AuthSQL, connection.AuthAAD, connection.AuthIntegrated:
	default:
		return cmd.PrintJSONError(fmt.Errorf("unknown auth mode %q (sql, aad, integrated)", p.Auth))
	}

	// Prompt for the password on sql auth when not supplied. Skipped when
	// stdin is not a terminal so scripted use with --password keeps working.
	if p.Auth == connection.AuthSQL && p.Password == "" && !c.Flags().Changed(extension.FlagPassword) {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintf(cmd.Out(), "Password for %s@%s: ", p.User, p.Server)
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(cmd.Out())
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("read password: %w", err))
			}
			p.Password = string(raw)
		}
	}

	t := telemetry.Event("connection/Add").Prop("auth", p.AuthMode())
	if err := e.store.Add(p); err != nil {
		t.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("connection add %q: %w", p.Name, err))
	}
	if err := e.store.Save(); err != nil {
		t.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("connection save: %w", err))
	}
	t.Write(nil)

	fmt.Fprintf(cmd.Out(), "added %s (%s)\n", p.Name, p.Server)
	return nil
}

func (e *Extension) runLs(_ *cobra.Command, _ []string) error {
	profiles := e.store.List()

	if cmd.JSON() {
		// Strip passwords before serialising
		out := make([]connection.Profile, len(profiles))
		copy(out, profiles)
		for i := range out {
			out[i].Password = ""
		}
		return cmd.PrintJSON(map[string]any{
			"active":      e.store.ActiveName(),
			"connections": out,
		})
	}

	return render.Connections(cmd.Out(), profiles, e.store.ActiveName())
}

func (e *Extension) runRm(_ *cobra.Command, args []string) error {
	name := args[0]

	t := telemetry.Event("connection/Remove")
	if err := e.store.Remove(name); err != nil {
		t.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("connection rm %q: %w", name, err))
	}
	if err := e.store.Save(); err != nil {
		t.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("connection save: %w", err))
	}
	t.Write(nil)

	fmt.Fprintf(cmd.Out(), "removed %s\n", name)
	return nil
}

func (e *Extension) runUse(_ *cobra.Command, args []string) error {
	name := args[0]

	t := telemetry.Event("connection/Use")
	if err := e.store.SetActive(name); err != nil {
		t.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("connection use %q: %w", name, err))
	}
	if err := e.store.Save(); err != nil {
		t.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("connection save: %w", err))
	}
	t.Write(nil)

	fmt.Fprintf(cmd.Out(), "active connection: %s\n", name)
	return nil
}

// --- MCP handlers ---

func (e *Extension) mcpList(_ context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := extCtx.Connections()
	out := "active: " + store.ActiveName() + "\n"
	for _, p := range store.List() {
		out += fmt.Sprintf("%s server=%s auth=%s database=%s\n", p.Name, p.Server, p.AuthMode(), p.Database)
	}
	return mcp.NewToolResultText(out), nil
}
