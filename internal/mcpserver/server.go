// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the schema lifter as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemalift"
)

const serverInstructions = `schemalift MCP server — lifts inline schemas in OpenAPI 3.x documents into named components.

The lift tool walks every operation's JSON request and response bodies, hoists inline object and enum schemas into components/schemas under deterministic context-derived names, deduplicates structurally equal schemas behind a single name, and shortens the name of any schema reused at multiple sites. All occurrences are replaced with $ref pointers.

Provide the document via file or content. Use dry_run=true to inspect the registered names and renames without receiving the rewritten document.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schemalift", Version: schemalift.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lift",
		Description: "Lift inline request/response schemas in an OpenAPI 3.x document into components/schemas, replacing each occurrence with a $ref. Reports every registered name with its usage contexts and any shortening renames. Use output to write the rewritten document to a file, or include_document=true to return it inline.",
	}, handleLift)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
