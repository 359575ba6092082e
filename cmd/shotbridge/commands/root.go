// Package commands implements the shotbridge CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/config"
	"github.com/shotbridge/shotbridge/internal/logging"
)

var (
	cfgFile  string
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "shotbridge",
		Short: "Desktop screenshot capture for Windows, scriptable and MCP-servable",
		Long: `shotbridge captures the full virtual screen, a single monitor, or a
single application window to an image file.

Windows are selected by handle, list number, title substring or process
name. Occluded and GPU-composited windows are captured in the background
via off-screen compositing, with an optional foreground fallback, and
minimized windows can be restored for the capture and re-minimized after.

The same engine is reachable from the command line (list, shot) and as an
MCP server over stdio (serve).`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shotbridge/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// loadConfig loads the effective configuration and initializes logging.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromPath(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	logging.Init(level, cfg.Logging.Pretty)
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
