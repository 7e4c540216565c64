package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceIES/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ies",
	Short: "IES photometric file parser and light shape generator",
	Long: `A tool for reading IES (IESNA LM-63) photometric files, rescaling them,
and generating polyline outlines of their light distribution.

Examples:
  ies parse downlight.ies                        # Show the photometric data
  ies scale --factor 0.3048 downlight.ies        # Convert opening from feet to meters
  ies shape --format json downlight.ies          # Light shape polylines as JSON
  ies info lights/                               # Summarize every .ies file in a directory`,
	Version:           "0.3.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.config/opentraceies/config.yaml)")
}

// setup loads the config file and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	} else {
		logger = zap.NewNop()
	}

	path := configPath
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		path, err = config.DefaultPath()
		if err != nil {
			logger.Debug("no default config location", zap.Error(err))
			cfg = config.Default()
			return nil
		}
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", zap.String("path", path))
	return nil
}
