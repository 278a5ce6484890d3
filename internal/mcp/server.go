// Package mcp implements the Model Context Protocol server, exposing sqlmate
// operations to LLMs. This enables AI assistants to format SQL, inspect
// connection profiles, and preview tool launches through a standardised
// protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/config"
	"github.com/jpl-au/sqlmate/internal/connection"
	"github.com/jpl-au/sqlmate/internal/pick"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients.
//
// The server builds its own extension context: serve bypasses the CLI's
// shared initialisation, and tools run without an interactive terminal, so
// the injected picker always reports cancellation. Tools that would pick
// take an explicit provider parameter instead.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}
	conns, err := connection.Open(cfg.Dir())
	if err != nil {
		slog.Error("failed to open connections", "error", err)
		return err
	}

	extCtx := extension.NewContext(cfg, conns, pick.Scripted{Choice: -1})
	for _, ext := range extension.All() {
		if init, ok := ext.(extension.Initializable); ok {
			if err := init.Init(extCtx); err != nil {
				slog.Error("failed to init extension", "extension", ext.Name(), "error", err)
				return err
			}
		}
	}

	s := server.NewMCPServer(
		"sqlmate",
		Version,
		server.WithToolCapabilities(true),
	)

	count := 0
	for _, ext := range extension.All() {
		for _, tool := range ext.MCPTools() {
			handler := tool.Handler
			s.AddTool(tool.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, extCtx, req)
			})
			count++
		}
	}

	slog.Info("sqlmate MCP server ready", "version", Version, "tools", count, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}
