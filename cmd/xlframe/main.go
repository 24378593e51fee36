// Package main provides the CLI entry point for xlframe-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlframe-go/pkg/xlframe/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool

	profile *config.Profile
	logger  *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlframe",
		Short: "Convert between data frames and Excel workbooks",
		Long: `xlframe-go reads worksheets into typed data frames and writes frames
to XLSX workbooks with headers, styled tables and fitted columns.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML profile with read/write defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newReadCmd(), newWriteCmd(), newMergeCmd(), newInspectCmd())
	return rootCmd
}

// setup loads the profile and installs the global logger used by the library.
func setup(cmd *cobra.Command, args []string) error {
	profile = config.Default()
	if configPath != "" {
		p, err := config.Load(configPath)
		if err != nil {
			return err
		}
		profile = p
	}

	level, err := profile.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	if profile.Logging.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}

	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
