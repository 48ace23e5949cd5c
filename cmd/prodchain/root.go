package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by all subcommands.
type app struct {
	verbose bool
	runID   string
	logger  *zap.Logger

	// newLogger builds the process logger; replaced in tests.
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{newLogger: productionLogger}
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "prodchain",
		Short: "Minimal-cost production chains from Factorio recipes",
		Long: `prodchain translates a recipe set into a linear program, solves it and
prints the technologies to run, the machines they need and the resulting
item flows.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.runID = uuid.NewString()
			a.logger = logger.With(zap.String("run_id", a.runID))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newOptimizeCmd(a), newResourcesCmd(a))
	return root
}
