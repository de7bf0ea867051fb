package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meridianapp/swiftmap/internal/config"
	"github.com/meridianapp/swiftmap/internal/surface"
)

// AddSurfaceMapTool registers the swift_surface_map tool with an MCP server.
// The tool generates the same report as the CLI for a single path, so
// assistants can pull a condensed view of a module's public API without
// reading whole source files.
func AddSurfaceMapTool(s *server.MCPServer, rootDir string, cfg *config.Config) {
	tool := mcp.NewTool(
		"swift_surface_map",
		mcp.WithDescription(`Generate a condensed API surface map for a Swift file or directory.

The map lists imports, protocols, types with their visible members, global functions, and extensions, with implementation bodies and private members stripped. Directory paths are walked recursively and each file gets its own section.`),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Swift file or directory to scan, absolute or relative to the project root")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	reporter := surface.NewReporter(nil, cfg.Paths.Source, cfg.Paths.Ignore, nil)
	s.AddTool(tool, surface.CreateSurfaceMapToolHandler(reporter, rootDir))
}

// AddSurfaceFilesTool registers the swift_surface_files tool with an MCP
// server. The tool lists which Swift files discovery would scan, which is
// useful for checking ignore patterns before generating a large map.
func AddSurfaceFilesTool(s *server.MCPServer, rootDir string, cfg *config.Config) {
	tool := mcp.NewTool(
		"swift_surface_files",
		mcp.WithDescription("List the Swift files the surface scanner would process under a directory, after ignore patterns are applied. Returns JSON with the resolved root, file count, and sorted file paths."),
		mcp.WithString("root",
			mcp.Description("Directory to list, absolute or relative to the project root. Defaults to the project root.")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, surface.CreateSurfaceFilesToolHandler(rootDir, cfg.Paths.Source, cfg.Paths.Ignore))
}
