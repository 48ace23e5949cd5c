package production_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodchain/production"
	"github.com/katalvlaran/prodchain/recipe"
)

// TestEitherTakesMaxNotSum: plate alone needs 0.5 smelting cycles, gears need
// 1; the merge keeps 1.
func TestEitherTakesMaxNotSum(t *testing.T) {
	demand := map[string]float64{"iron-gear-wheel": 2, "iron-plate": 1}
	plan, err := production.OptimizeEither(context.Background(), plateGear(), []string{"iron-ore"}, demand)
	require.NoError(t, err)

	require.Len(t, plan.Technologies, 2)
	require.Equal(t, "iron-gear-wheel", plan.Technologies[0].Name)
	require.InDelta(t, 2, plan.Technologies[0].Cycles, 1e-9)
	require.Equal(t, "iron-plate", plan.Technologies[1].Name)
	require.InDelta(t, 1, plan.Technologies[1].Cycles, 1e-9)

	want := production.Flows{
		Inputs:       []recipe.Item{item("iron-ore", 1)},
		Intermediate: []recipe.Item{item("iron-plate", 2)},
		Outputs:      []recipe.Item{item("iron-gear-wheel", 2), item("iron-plate", 1)},
	}
	require.Empty(t, cmp.Diff(want, plan.Flows, approx))
}

// TestEitherOrderIndependent: parallel and sequential fan-out agree, and so do
// differently built demand maps.
func TestEitherOrderIndependent(t *testing.T) {
	ctx := context.Background()
	res := []string{"iron-ore"}

	a := map[string]float64{}
	a["iron-plate"] = 1
	a["iron-gear-wheel"] = 2
	b := map[string]float64{}
	b["iron-gear-wheel"] = 2
	b["iron-plate"] = 1

	seq, err := production.OptimizeEither(ctx, plateGear(), res, a)
	require.NoError(t, err)
	par, err := production.OptimizeEither(ctx, plateGear(), res, b, production.WithParallelism(4))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(seq, par, approx))
}

// TestEitherSingleObjective equals the single-objective plan up to ordering.
func TestEitherSingleObjective(t *testing.T) {
	ctx := context.Background()
	demand := map[string]float64{"iron-gear-wheel": 2}
	one, err := production.Optimize(ctx, plateGear(), []string{"iron-ore"}, demand)
	require.NoError(t, err)
	either, err := production.OptimizeEither(ctx, plateGear(), []string{"iron-ore"}, demand)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(one.Flows, either.Flows, approx))
	require.Len(t, either.Technologies, len(one.Technologies))
}

// TestEitherPropagatesFailure: one infeasible objective fails the call.
func TestEitherPropagatesFailure(t *testing.T) {
	demand := map[string]float64{"iron-gear-wheel": 2, "steel-plate": 1}
	_, err := production.OptimizeEither(context.Background(), plateGear(), []string{"iron-ore"}, demand)
	require.ErrorIs(t, err, production.ErrInfeasible)
	require.Contains(t, err.Error(), "steel-plate")

	_, err = production.OptimizeEither(context.Background(), plateGear(), []string{"iron-ore"}, map[string]float64{"iron-plate": -2})
	require.ErrorIs(t, err, production.ErrInvalidDemand)
}

// TestEitherEmpty: no objectives, empty plan.
func TestEitherEmpty(t *testing.T) {
	plan, err := production.OptimizeEither(context.Background(), plateGear(), []string{"iron-ore"}, nil)
	require.NoError(t, err)
	require.Empty(t, plan.Technologies)
}
