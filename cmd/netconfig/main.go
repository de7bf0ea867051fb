package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/meridianapp/swiftmap/internal/config"
	"github.com/meridianapp/swiftmap/internal/netconfig"
)

// rootCmd is the whole CLI; netconfig has no subcommands.
var rootCmd = &cobra.Command{
	Use:   "netconfig <mode> [endpoint]",
	Short: "Point the app's network configuration at an environment",
	Long: `Netconfig rewrites the Swift network configuration file so the app talks
to the chosen environment.

Modes:
  local    point the development host at this machine's LAN address
  staging  use the staging backend
  aws      use the production backend
  tunnel   point the tunnel host at the given endpoint

Examples:
  netconfig staging
  netconfig local
  netconfig tunnel abc123.ngrok.io`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUpdate,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runUpdate(cmd *cobra.Command, args []string) error {
	mode, err := netconfig.ParseMode(args[0])
	if err != nil {
		return err
	}

	endpoint := ""
	if len(args) == 2 {
		endpoint = args[1]
	}

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	file := cfg.Netconfig.File
	if !filepath.IsAbs(file) {
		file = filepath.Join(rootDir, file)
	}

	p := netconfig.NewPatcher(file)
	p.Lookup = netconfig.NewAddrLookup(cfg.Netconfig.Interfaces...)
	return p.Update(mode, endpoint)
}
