// Package cli defines the protograph command tree: global flag
// registration, configuration loading, and logger initialization.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/protograph/internal/config"
	"github.com/turtacn/protograph/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/protograph/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config  *config.Config
	Logger  logging.Logger
	Verbose bool
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "protograph",
		Short:   "protograph — batch molecular structure to proximity-graph converter",
		Long:    "protograph converts molecular structure files (PDB) into annotated\nproximity graphs: one JSON artifact per input, with per-atom chemical\nannotations and distance-weighted edges between nearby atoms.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./protograph.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(NewBuildCmd())

	return cmd
}

// persistentPreRun initializes config and logger, then stores CLIContext on
// the command context.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger, err := initLogger(cfg, opts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logging.SetDefault(logger)

	cliCtx := &CLIContext{
		Config:  cfg,
		Logger:  logger,
		Verbose: opts.Verbose,
	}

	ctx := context.WithValue(cmd.Context(), cliContextKey{}, cliCtx)
	cmd.SetContext(ctx)
	return nil
}

// initConfig loads configuration with priority: flags > env > file > defaults.
func initConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}

	searchPaths := []string{"./protograph.yaml"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(homeDir, ".protograph", "config.yaml"))
	}
	searchPaths = append(searchPaths, "/etc/protograph/config.yaml")

	for _, p := range searchPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return config.Load(p)
		}
	}

	// No config file found; environment variables and defaults apply.
	return config.LoadFromEnv()
}

// initLogger creates a logger configured for CLI usage (output to stderr so
// stdout stays clean for results).
func initLogger(cfg *config.Config, opts *RootOptions) (logging.Logger, error) {
	logCfg := cfg.Log
	if opts.LogLevel != "" {
		logCfg.Level = strings.ToLower(opts.LogLevel)
	}
	if opts.Verbose {
		logCfg.Level = "debug"
	}
	logCfg.OutputPaths = []string{"stderr"}
	logCfg.ErrorOutputPaths = []string{"stderr"}

	return logging.NewLogger(logCfg)
}

// GetCLIContext extracts the CLIContext stored by persistentPreRun.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	cliCtx, ok := cmd.Context().Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.Internal("command context is not initialized")
	}
	return cliCtx, nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
