package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meridianapp/swiftmap/internal/config"
	"github.com/meridianapp/swiftmap/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server exposing surface map tools",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered coding
assistants request Swift API surface maps on demand.

The MCP server:
- Provides the swift_surface_map tool for file and directory maps
- Provides the swift_surface_files tool for listing matching Swift files
- Communicates via stdio (standard MCP transport)

Example:
  swiftmap mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rootDir := configDir
	if rootDir == "" {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Startup information goes to stderr; stdout carries the MCP transport.
	fmt.Fprintf(os.Stderr, "swiftmap MCP Server\n")
	fmt.Fprintf(os.Stderr, "Project Root: %s\n", rootDir)
	fmt.Fprintf(os.Stderr, "\n")

	server := mcp.NewServer(rootDir, cfg)
	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}
