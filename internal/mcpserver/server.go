// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes YAML/JSON conversion as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/yamlbridge"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `yamlbridge MCP server: converts documents between YAML and JSON and checks that they are well formed.

Every tool takes a document as exactly one of file, url or content. Mapping key order is preserved and numbers keep their original digits.

Configuration: defaults are set through YAMLBRIDGE_MCP_* environment variables in your MCP client config.

Key settings:
- YAMLBRIDGE_MCP_MAX_INLINE_SIZE (default: 10485760) maximum inline content size in bytes
- YAMLBRIDGE_MCP_MAX_FETCH_SIZE (default: 10485760) maximum file or url document size in bytes
- YAMLBRIDGE_MCP_ALLOW_PRIVATE_IPS (default: false) allow url inputs on private networks
- YAMLBRIDGE_MCP_JSON_INDENT (default: 0) default indent for yaml_to_json output
- YAMLBRIDGE_MCP_CACHE_ENABLED (default: true) cache results per session
- YAMLBRIDGE_MCP_CACHE_TTL (default: 15m) lifetime of cached results`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		resultCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: yamlbridge.Name, Version: yamlbridge.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "yaml_to_json",
		Description: "Convert a YAML document to JSON. Key order is preserved. Use output to write to a file instead of returning inline. Output is compact unless indent is set (the default indent is configurable via YAMLBRIDGE_MCP_JSON_INDENT). Anchors and aliases are expanded. Fails on malformed YAML, duplicate keys, multiple documents, or values JSON cannot represent such as .nan.",
	}, handleYAMLToJSON)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "json_to_yaml",
		Description: "Convert a JSON document to YAML. Key order is preserved. Use output to write to a file instead of returning inline. Block style (multi-line, indented) is the default; set flow=true for a single-line bracketed rendering. Strings that would read back as another type are quoted.",
	}, handleJSONToYAML)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check whether a document is well-formed YAML or JSON without converting it. Format auto (default) uses the file extension, then the first non-blank character ({ or [ means JSON). Returns valid=false with the parser message for malformed input.",
	}, handleValidate)
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
