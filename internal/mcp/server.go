// Package mcp exposes the surface map tools over the Model Context
// Protocol so coding assistants can request API surface listings directly.
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/meridianapp/swiftmap/internal/config"
)

// Server manages the MCP server lifecycle.
type Server struct {
	cfg     *config.Config
	rootDir string
	mcp     *server.MCPServer
}

// NewServer creates an MCP server rooted at rootDir with the surface map
// tools registered. A nil cfg uses the defaults.
func NewServer(rootDir string, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	mcpServer := server.NewMCPServer(
		"swiftmap-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	AddSurfaceMapTool(mcpServer, rootDir, cfg)
	AddSurfaceFilesTool(mcpServer, rootDir, cfg)

	return &Server{
		cfg:     cfg,
		rootDir: rootDir,
		mcp:     mcpServer,
	}
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
