package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/prodchain/config"
	"github.com/katalvlaran/prodchain/factorio"
	"github.com/katalvlaran/prodchain/lp"
	"github.com/katalvlaran/prodchain/production"
	"github.com/katalvlaran/prodchain/recipe"
	"github.com/katalvlaran/prodchain/report"
)

type optimizeFlags struct {
	config      string
	either      bool
	json        bool
	parallelism int
}

// jsonPlan is the --json output.
type jsonPlan struct {
	RunID     string   `json:"run_id"`
	Resources []string `json:"resources"`
	production.Plan
}

func newOptimizeCmd(a *app) *cobra.Command {
	var f optimizeFlags
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Solve the run described by a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("either") {
				cfg.Either = f.either
			}
			if cmd.Flags().Changed("parallelism") {
				cfg.Parallelism = f.parallelism
				if err = cfg.Validate(); err != nil {
					return err
				}
			}
			return a.optimize(cmd, cfg, f.json)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "run configuration (YAML)")
	cmd.Flags().BoolVar(&f.either, "either", false, "size the plan for any single demand")
	cmd.Flags().BoolVar(&f.json, "json", false, "print the plan as JSON")
	cmd.Flags().IntVar(&f.parallelism, "parallelism", production.DefaultParallelism, "concurrent solves with --either")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func (a *app) optimize(cmd *cobra.Command, cfg config.Config, asJSON bool) error {
	mode, err := factorio.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	techs, err := factorio.Load(cfg.Recipes, factorio.WithMode(mode), factorio.WithLogger(a.logger))
	if err != nil {
		return err
	}
	method, err := lp.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	techs = recipe.Adjust(techs, cfg.Speed, cfg.Productivity, nil)

	resources := cfg.Resources
	if len(resources) == 0 {
		resources = production.Resources(techs)
	}
	weights := production.WeightTable(cfg.Weights, production.DefaultWeights(resources, cfg.ResourceWeight))
	opts := []production.Option{
		production.WithWeights(weights),
		production.WithLogger(a.logger),
		production.WithParallelism(cfg.Parallelism),
		production.WithSolverOptions(lp.WithMethod(method)),
	}

	a.logger.Info("optimizing",
		zap.String("recipes", cfg.Recipes),
		zap.Int("technologies", len(techs)),
		zap.Int("resources", len(resources)),
		zap.Bool("either", cfg.Either),
	)

	solve := production.Optimize
	if cfg.Either {
		solve = production.OptimizeEither
	}
	plan, err := solve(cmd.Context(), techs, resources, cfg.Demand, opts...)
	if err != nil {
		a.logger.Error("optimization failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonPlan{RunID: a.runID, Resources: resources, Plan: plan})
	}
	return printPlan(out, plan, report.WithSpeed(cfg.MachineSpeed))
}

func printPlan(w io.Writer, plan production.Plan, opts ...report.Option) error {
	techTable, err := report.Technologies(plan.Technologies, opts...)
	if err != nil {
		return err
	}
	plain := make([]recipe.Technology, len(plan.Technologies))
	for i, t := range plan.Technologies {
		plain[i] = t.Technology
	}
	ioTable, err := report.IO(plain, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Technologies\n%s\n\nMachine IO\n%s\n\nFlows\n%s\n",
		techTable, ioTable, report.Flows(plan.Flows, opts...))
	return err
}
