package production

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/prodchain/recipe"
)

// OptimizeEither returns a plan able to satisfy any one of the demanded items.
//
// Each (item, amount) pair is optimized on its own with the full technology
// and resource set. The plans are merged by name: a technology keeps the
// largest cycles it received, and each flow category keeps the largest amount
// per item. Technologies and flows come back sorted by name, so the result
// does not depend on map iteration order.
//
// At most Options.Parallelism solves run at once. The first failing
// objective cancels the shared context; in-flight solves stop at their next
// pivot and queued ones never start. The first error is returned.
func OptimizeEither(ctx context.Context, techs []recipe.Technology, resources []string, demand map[string]float64, opts ...Option) (Plan, error) {
	o := gatherOptions(opts)
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateDemand(demand); err != nil {
		return Plan{}, err
	}

	names := demandNames(demand)
	plans := make([]Plan, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
	for i, name := range names {
		g.Go(func() error {
			p, err := Optimize(gctx, techs, resources, map[string]float64{name: demand[name]}, opts...)
			if err != nil {
				return fmt.Errorf("production: objective %q: %w", name, err)
			}
			plans[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Plan{}, err
	}

	merged := mergePlans(plans)
	o.Logger.Debug("production: objectives merged",
		zap.Strings("objectives", names),
		zap.Int("technologies", len(merged.Technologies)),
	)

	return merged, nil
}

// mergePlans merges by name with max. The first record seen for a name
// supplies everything but the merged quantity.
func mergePlans(plans []Plan) Plan {
	techs := make(map[string]recipe.Resolved)
	var inputs, intermediate, outputs []recipe.Item
	for _, p := range plans {
		for _, t := range p.Technologies {
			if cur, ok := techs[t.Name]; !ok || t.Cycles > cur.Cycles {
				if ok {
					t = cur.WithCycles(t.Cycles)
				}
				techs[t.Name] = t
			}
		}
		inputs = append(inputs, p.Flows.Inputs...)
		intermediate = append(intermediate, p.Flows.Intermediate...)
		outputs = append(outputs, p.Flows.Outputs...)
	}

	out := Plan{
		Technologies: make([]recipe.Resolved, 0, len(techs)),
		Flows: Flows{
			Inputs:       mergeItems(inputs),
			Intermediate: mergeItems(intermediate),
			Outputs:      mergeItems(outputs),
		},
	}
	for _, t := range techs {
		out.Technologies = append(out.Technologies, t)
	}
	sort.Slice(out.Technologies, func(i, j int) bool {
		return out.Technologies[i].Name < out.Technologies[j].Name
	})

	return out
}

func mergeItems(items []recipe.Item) []recipe.Item {
	if len(items) == 0 {
		return nil
	}
	best := make(map[string]recipe.Item, len(items))
	for _, it := range items {
		if cur, ok := best[it.Name]; !ok {
			best[it.Name] = it
		} else if it.Amount > cur.Amount {
			best[it.Name] = cur.WithAmount(it.Amount)
		}
	}
	out := make([]recipe.Item, 0, len(best))
	for _, it := range best {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
