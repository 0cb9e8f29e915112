// Command xcore drives a leveled sink from the command line: it writes test
// lines, runs the output self-check and exposes the numeric cast table.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xcore"
	"github.com/trickstertwo/xcore/internal/config"
)

// app carries the state shared by subcommands.
type app struct {
	// Global flags
	configPath string
	level      string
	verbose    bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "xcore",
		Short: "Leveled output sink and numeric cast tool",
		Long: `xcore routes messages through four channels (debug, info, warn, error)
that share one severity threshold. Devices for each channel come from a YAML
file (--config); without one, debug/info go to stdout and warn/error to stderr.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
			if a.verbose {
				cfg = zap.NewDevelopmentConfig()
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML sink configuration")
	root.PersistentFlags().StringVar(&a.level, "level", "", "threshold override: debug, info, warn, error or disable")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug diagnostics on stderr")

	root.AddCommand(
		newLogCmd(a),
		newLogMTCmd(a),
		newSelfCheckCmd(a),
		newCastCmd(),
	)
	return root
}

// sink loads the configuration, applies --level and opens the devices.
func (a *app) sink(ctx context.Context) (*xcore.Sink, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.level != "" {
		cfg.Level = a.level
	}
	s, err := cfg.Build(ctx, a.logger)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("sink ready", zap.Stringer("level", s.Level()), zap.String("config", a.configPath))
	return s, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
