package production

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/prodchain/graph"
	"github.com/katalvlaran/prodchain/lp"
	"github.com/katalvlaran/prodchain/recipe"
)

// Plan is the result of an optimization: the technologies to run and the
// flows they generate.
type Plan struct {
	Technologies []recipe.Resolved `json:"technologies" yaml:"technologies"`
	Flows        Flows             `json:"flows" yaml:"flows"`
}

// Resources returns the default resource set of techs: items consumed by some
// technology and produced by none, sorted.
func Resources(techs []recipe.Technology) []string {
	return graph.New(techs).Resources()
}

// Optimize finds the cheapest plan whose net output of every demanded item is
// at least its demand. Resources are unlimited; every other item must be
// produced by the plan before it is consumed.
//
// Steps:
//  1. Validate technologies and demand.
//  2. Enumerate columns; build equality, inequality and objective.
//  3. Solve with lp.Solve.
//  4. Collect cycles and aggregate flows.
//
// Implementation:
//   - One column per item occurrence; equality rows tie each technology's
//     columns to its first output, inequality rows balance every
//     non-resource item against its demand.
//   - The LP is solved by lp.Solve with Options.Solver forwarded.
//
// Behavior highlights:
//   - ctx reaches every simplex pivot; cancellation returns the context error.
//   - On infeasibility the recipe graph names the demanded items that no
//     chain of technologies can reach from resources.
//   - Technologies left at zero cycles are omitted from the plan.
//
// Errors: ErrInvalidTechnology, ErrInvalidDemand, ErrUnknownDemand,
// ErrInfeasible (wrapping lp.ErrInfeasible), other lp errors wrapped.
func Optimize(ctx context.Context, techs []recipe.Technology, resources []string, demand map[string]float64, opts ...Option) (Plan, error) {
	o := gatherOptions(opts)
	log := o.Logger

	// Stage 1 (Validate)
	if err := validateTechnologies(techs); err != nil {
		return Plan{}, err
	}

	// Stage 2 (Build)
	e := Enumerate(techs)
	aeq, beq, err := EqualityConstraints(e)
	if err != nil {
		return Plan{}, err
	}
	aub, bub, err := InequalityConstraints(e, resources, demand)
	if err != nil {
		return Plan{}, err
	}
	w := o.Weights
	if w == nil {
		w = DefaultWeights(resources, o.ResourceWeight)
	}
	c := ObjectiveVector(e, w)

	log.Debug("production: system built",
		zap.Int("technologies", e.Technologies()),
		zap.Int("columns", e.Len()),
		zap.Int("equalities", aeq.Rows()),
		zap.Int("inequalities", aub.Rows()),
	)

	// Stage 3 (Solve)
	res, err := lp.Solve(ctx, lp.Problem{C: c, Aub: aub, Bub: bub, Aeq: aeq, Beq: beq}, o.Solver...)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			g := graph.New(techs)
			missing := g.Unreachable(resources, demandNames(demand))
			log.Warn("production: infeasible",
				zap.Strings("unreachable", missing),
				zap.Strings("cyclic", g.Cyclic()),
			)
			if len(missing) > 0 {
				return Plan{}, fmt.Errorf("%w: unreachable from resources: %v: %w", ErrInfeasible, missing, err)
			}
			return Plan{}, fmt.Errorf("%w: %w", ErrInfeasible, err)
		}
		return Plan{}, fmt.Errorf("production: solve: %w", err)
	}

	// Stage 4 (Interpret)
	chosen, err := Collect(e, res.X, o.Tolerance)
	if err != nil {
		return Plan{}, err
	}
	plan := Plan{Technologies: chosen, Flows: Aggregate(chosen, o.Tolerance)}

	log.Debug("production: solved",
		zap.Float64("objective", res.Objective),
		zap.Int("chosen", len(chosen)),
	)

	return plan, nil
}

func validateTechnologies(techs []recipe.Technology) error {
	for i, t := range techs {
		if len(t.Outputs) == 0 {
			return fmt.Errorf("%w: %q (#%d) has no outputs", ErrInvalidTechnology, t.Name, i)
		}
		if !(t.Outputs[0].Amount > 0) {
			return fmt.Errorf("%w: %q (#%d) first output amount %g", ErrInvalidTechnology, t.Name, i, t.Outputs[0].Amount)
		}
		for _, items := range [][]recipe.Item{t.Inputs, t.Outputs} {
			for _, it := range items {
				if !(it.Amount >= 0) || math.IsInf(it.Amount, 0) {
					return fmt.Errorf("%w: %q (#%d) item %q amount %g", ErrInvalidTechnology, t.Name, i, it.Name, it.Amount)
				}
			}
		}
	}
	return nil
}

func demandNames(demand map[string]float64) []string {
	names := make([]string, 0, len(demand))
	for name := range demand {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
