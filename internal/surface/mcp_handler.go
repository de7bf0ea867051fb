package surface

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreateSurfaceMapToolHandler returns an MCP tool handler that builds the
// surface map for one Swift file or directory. Relative paths resolve
// against rootDir. The handler shares the reporter across invocations; the
// reporter holds no mutable state, so this is safe for concurrent calls.
func CreateSurfaceMapToolHandler(reporter *Reporter, rootDir string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format: expected object"), nil
		}

		path, ok := argsMap["path"].(string)
		if !ok || path == "" {
			return mcp.NewToolResultError("path field is required and must be a string"), nil
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}

		text, stats := reporter.Build([]string{path})
		if stats.SwiftFiles == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("no Swift files found at %s", path)), nil
		}

		return mcp.NewToolResultText(text), nil
	}
}

// CreateSurfaceFilesToolHandler returns an MCP tool handler that lists the
// Swift files discovery would scan under a root, after ignore patterns. The
// optional root argument defaults to rootDir.
func CreateSurfaceFilesToolHandler(rootDir string, sourcePatterns, ignorePatterns []string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := rootDir
		if argsMap, ok := request.Params.Arguments.(map[string]interface{}); ok {
			if r, ok := argsMap["root"].(string); ok && r != "" {
				if filepath.IsAbs(r) {
					root = r
				} else {
					root = filepath.Join(rootDir, r)
				}
			}
		}

		discovery, err := NewFileDiscovery(root, sourcePatterns, ignorePatterns)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		files, err := discovery.DiscoverFiles()
		if err != nil {
			return nil, fmt.Errorf("discovery failed: %w", err)
		}

		jsonData, err := json.Marshal(map[string]interface{}{
			"root":  root,
			"count": len(files),
			"files": files,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
