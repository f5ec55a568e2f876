// Package main provides the CLI entrypoint for locklight.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"locklight/internal/config"
	"locklight/internal/daemon"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	daemonOpts struct {
		hideTime    int
		pollingRate int
		backend     string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "locklight",
	Short: "On-screen indicator for keyboard lock keys",
	Long: `locklight watches the Caps Lock, Num Lock and Scroll Lock toggle
states and briefly shows an on-screen indicator whenever one of them
changes. The indicator hides itself after a configurable delay.

Running locklight without a subcommand starts the indicator daemon.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.Load(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: runDaemon,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/locklight/config.toml)")

	rootCmd.Flags().IntVar(&daemonOpts.hideTime, "hide-time", 0,
		"How long the indicator stays visible, in milliseconds")
	rootCmd.Flags().IntVar(&daemonOpts.pollingRate, "polling-rate", 0,
		"Lock-key sampling interval, in milliseconds")
	rootCmd.Flags().StringVar(&daemonOpts.backend, "backend", "",
		"Display backend (overlay, notify)")
}

// runDaemon starts the indicator daemon and blocks until a shutdown signal.
func runDaemon(cmd *cobra.Command, args []string) error {
	applyDaemonFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d := daemon.New(cfg, globalOpts.configPath, logger)
	return d.Run(ctx)
}

// applyDaemonFlags overrides config values with explicitly set flags.
// Flags beat the config file, matching the precedence users expect.
func applyDaemonFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("hide-time") {
		cfg.Display.HideTime = config.Duration(time.Duration(daemonOpts.hideTime) * time.Millisecond)
	}
	if cmd.Flags().Changed("polling-rate") {
		cfg.Display.PollingRate = config.Duration(time.Duration(daemonOpts.pollingRate) * time.Millisecond)
	}
	if cmd.Flags().Changed("backend") {
		cfg.Display.Backend = daemonOpts.backend
	}
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
