// Package main provides the CLI entrypoint for msgwidget.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/msgwidget/internal/config"
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
		envFile    string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "msgwidget",
	Short: "Latest-message widget for the desktop and terminal",
	Long: `msgwidget fetches the most recent message from a Supabase/PostgREST
backend and renders it as a small widget.

Colors follow the time of day (dark from 21:00 to 06:00). Font size,
padding, and alignment follow the widget size family.

Running msgwidget without a subcommand renders the widget once.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if err := config.LoadEnvFile(globalOpts.envFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.Backend.URL == "" {
			logger.Debug("no backend URL configured; the placeholder will be shown",
				"env", config.EnvURL)
		}
		return nil
	},
	// Default to a single render when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args)
	},
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
		"Path to config file (default: ~/.config/msgwidget/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.envFile, "env-file", "",
		"Path to a .env file with MSGWIDGET_URL / MSGWIDGET_API_KEY (default: ./.env if present)")

	addRenderFlags(rootCmd)
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

// getConfig returns the global config instance.
func getConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// configPath returns the config file in use.
func configPath() string {
	if globalOpts.configPath != "" {
		return globalOpts.configPath
	}
	return config.ConfigPath()
}
