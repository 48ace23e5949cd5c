package production_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodchain/production"
	"github.com/katalvlaran/prodchain/recipe"
)

// TestEnumerateIDs checks the forward scan: inputs before outputs, no reuse.
func TestEnumerateIDs(t *testing.T) {
	techs := append(plateGear(),
		tech("pump", nil, []recipe.Item{fluid("water", 1200)}),
		tech("mix", []recipe.Item{item("a", 1), item("b", 2)}, []recipe.Item{item("c", 1), item("d", 1)}),
	)
	e := production.Enumerate(techs)

	require.Equal(t, 4, e.Technologies())
	require.Equal(t, 2+2+1+4, e.Len())
	require.Equal(t, production.Span{In: 0, Out: 1, End: 2}, e.Span(0))
	require.Equal(t, production.Span{In: 2, Out: 3, End: 4}, e.Span(1))
	require.Equal(t, production.Span{In: 4, Out: 4, End: 5}, e.Span(2))
	require.Equal(t, production.Span{In: 5, Out: 7, End: 9}, e.Span(3))

	for id := 0; id < e.Len(); id++ {
		require.Equal(t, id, e.Occurrence(id).ID)
	}
	require.Empty(t, e.Inputs(2))
	require.Equal(t, "water", e.Outputs(2)[0].Name)
	require.Equal(t, []string{"a", "b"}, []string{e.Inputs(3)[0].Name, e.Inputs(3)[1].Name})
	require.Equal(t, 8, e.Outputs(3)[1].ID)
}

// TestEnumerateDoesNotAlias checks that the arena owns its copies.
func TestEnumerateDoesNotAlias(t *testing.T) {
	techs := plateGear()
	e := production.Enumerate(techs)
	techs[0].Outputs[0].Amount = 99

	require.Equal(t, 2.0, e.Outputs(0)[0].Amount)
	got := e.Technology(0)
	got.Inputs[0].Name = "copper-ore"
	require.Equal(t, "iron-ore", e.Technology(0).Inputs[0].Name)
}

// TestProducts lists every non-resource item in sorted order.
func TestProducts(t *testing.T) {
	e := production.Enumerate(plateGear())
	require.Equal(t, []string{"iron-gear-wheel", "iron-ore", "iron-plate"}, e.Items())
	require.Equal(t, []string{"iron-gear-wheel", "iron-plate"}, e.Products([]string{"iron-ore"}))
	require.Equal(t, e.Items(), e.Products(nil))
}
