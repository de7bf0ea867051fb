package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meridianapp/swiftmap/internal/config"
	"github.com/meridianapp/swiftmap/internal/surface"
)

var (
	configDir  string
	outputFile string
	quietFlag  bool
	watchFlag  bool
)

// rootCmd represents the base command. Generating the surface map is the
// tool's whole job, so it runs on the root command rather than a subcommand.
var rootCmd = &cobra.Command{
	Use:   "swiftmap <path> [path...]",
	Short: "Generate a Swift API surface map",
	Long: `Swiftmap scans Swift sources and produces a condensed code map of their
public API surface: imports, protocols, classes/structs/enums, global
functions, and extensions, without implementation details.

Examples:
  # Map a single file to stdout
  swiftmap Sources/Session/SessionStore.swift

  # Map a whole source tree into a file
  swiftmap Sources --output CodeMap.txt

  # Keep the map current while editing
  swiftmap Sources --output CodeMap.txt --watch
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSurface,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "project root containing .swiftmap/config.yml (default is the working directory)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the surface map to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and regenerate the map")
}

func runSurface(cmd *cobra.Command, args []string) error {
	if watchFlag && outputFile == "" {
		return errors.New("--watch requires --output")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The progress bar shares stdout with the report, so it only runs when
	// the report goes to a file.
	progress := NewCLIProgressReporter(quietFlag || outputFile == "")
	reporter := surface.NewReporter(nil, cfg.Paths.Source, cfg.Paths.Ignore, progress)

	if err := buildReport(reporter, args); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}
	return watchAndRebuild(reporter, args, cfg)
}

// buildReport generates the report once and delivers it to the output file
// or stdout.
func buildReport(reporter *surface.Reporter, paths []string) error {
	text, stats := reporter.Build(paths)

	if outputFile == "" {
		fmt.Println(text)
		return nil
	}

	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	fmt.Printf("Swift API surface map written to: %s\n", outputFile)
	fmt.Printf("Generated %d lines of API surface documentation\n", stats.Lines)
	return nil
}

// watchAndRebuild blocks, regenerating the output file whenever matching
// Swift files change. Ctrl+C stops the watch.
func watchAndRebuild(reporter *surface.Reporter, paths []string, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Stopping watch...")
		cancel()
	}()

	rebuild := func() error {
		text, _ := reporter.Build(paths)
		return os.WriteFile(outputFile, []byte(text), 0644)
	}

	watcher, err := surface.NewReportWatcher(paths, cfg.Paths.Source, cfg.Paths.Ignore, rebuild)
	if err != nil {
		return fmt.Errorf("failed to start watch mode: %w", err)
	}
	watcher.Start(ctx)
	defer watcher.Stop()

	if !quietFlag {
		log.Println("Watching for changes (Ctrl+C to stop)...")
	}
	<-ctx.Done()
	return nil
}

// loadConfig loads the tool configuration from the project root given by
// --config, or from the working directory.
func loadConfig() (*config.Config, error) {
	if configDir != "" {
		return config.LoadConfigFromDir(configDir)
	}
	return config.LoadConfig()
}
