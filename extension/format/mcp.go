// mcp.go exposes document formatting as an MCP tool.
//
// The tool is non-interactive: the caller names the provider instead of
// going through the picker. Content goes in and formatted content comes
// out; the tool never touches the filesystem.

package format

import (
	"context"
	"strings"

	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/formatter"
	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTools returns the formatting tool for MCP clients.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("sqlmate_format",
				mcp.WithDescription("Format SQL text with a named provider. Returns the formatted text."),
				mcp.WithString("content", mcp.Required(), mcp.Description("SQL text to format")),
				mcp.WithString("dialect", mcp.Description("SQL dialect (default: sql)")),
				mcp.WithString("provider", mcp.Description("Provider source or name; omit to list applicable providers")),
			),
			Handler: e.mcpFormat,
		},
	}
}

func (e *Extension) mcpFormat(ctx context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dialect := getString(req, "dialect", "sql")
	use := getString(req, "provider", "")

	formatters := formatter.DocumentFormatters(dialect)
	if use == "" {
		var names []string
		for _, f := range formatters {
			names = append(names, formatter.DisplayName(f)+" ("+formatter.SourceOf(f)+")")
		}
		return mcp.NewToolResultText("applicable providers:\n" + strings.Join(names, "\n")), nil
	}

	for _, f := range formatters {
		if f.Source() == use || formatter.DisplayName(f) == use {
			out, err := f.FormatDocument(ctx, content)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(out), nil
		}
	}
	return mcp.NewToolResultError("no provider matching " + use), nil
}

// getString extracts an optional string parameter, defaulting when missing.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil && v != "" {
		return v
	}
	return def
}
