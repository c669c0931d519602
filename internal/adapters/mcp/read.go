package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mosreport/internal/adapters/render"
	"mosreport/internal/application/commands"
	"mosreport/internal/ports"
)

// RegisterReadTools adds all read-only research tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.ResearchRepository) {
	s.AddTool(reportTool(), reportHandler(repo))
	s.AddTool(listEntitiesTool(), listEntitiesHandler(repo))
	s.AddTool(showEntityTool(), showEntityHandler(repo))
}

// --- report ---

func reportTool() mcp.Tool {
	return mcp.NewTool("report",
		mcp.WithDescription("Summarize the latest snapshot of every entity: price, screen rating, management and moat scores, total score and both margin-of-safety buy prices."),
		mcp.WithString("format",
			mcp.Description("Output layout: csv (default) or table."),
			mcp.Enum(string(render.FormatCSV), string(render.FormatTable)),
		),
	)
}

func reportHandler(repo ports.ResearchRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format, err := render.ParseFormat(req.GetString("format", string(render.FormatCSV)))
		if err != nil {
			return toolError(err)
		}

		report, err := commands.NewBuildReportCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		out, err := render.String(report, format)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- list_entities ---

func listEntitiesTool() mcp.Tool {
	return mcp.NewTool("list_entities",
		mcp.WithDescription("List the entities under Evaluation that have all five category folders."),
	)
}

func listEntitiesHandler(repo ports.ResearchRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entities, err := commands.NewListEntitiesCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(entities) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}

		var sb strings.Builder
		for _, e := range entities {
			fmt.Fprintf(&sb, "%s  %s\n", e.Name, e.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show_entity ---

func showEntityTool() mcp.Tool {
	return mcp.NewTool("show_entity",
		mcp.WithDescription("Show which snapshot file feeds each category of one entity and the values taken from it."),
		mcp.WithString("name",
			mcp.Description("Entity folder name (e.g. ACME)"),
			mcp.Required(),
		),
	)
}

func showEntityHandler(repo ports.ResearchRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}

		detail, err := commands.NewShowEntityCommand(repo, name).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := render.Detail(&sb, detail); err != nil {
			return toolError(err)
		}
		fmt.Fprintf(&sb, "\n%s\n", detail.Row.String())
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
