package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodchain/graph"
	"github.com/katalvlaran/prodchain/recipe"
)

func it(name string, amount float64) recipe.Item {
	return recipe.Item{Name: name, Type: recipe.TypeItem, Amount: amount}
}

// chain: ore → plate → gear, plus a self-seeding enrichment loop and a pump.
func fixture() []recipe.Technology {
	return []recipe.Technology{
		{Name: "plate", Inputs: []recipe.Item{it("ore", 1)}, Outputs: []recipe.Item{it("plate", 2)}, Time: 1},
		{Name: "gear", Inputs: []recipe.Item{it("plate", 1)}, Outputs: []recipe.Item{it("gear", 1)}, Time: 1},
		{Name: "enrich", Inputs: []recipe.Item{it("u235", 40), it("u238", 5)}, Outputs: []recipe.Item{it("u235", 41), it("u238", 2)}, Time: 60},
		{Name: "pump", Outputs: []recipe.Item{it("water", 1200)}, Time: 1},
		{Name: "double-in", Inputs: []recipe.Item{it("plate", 1), it("plate", 1)}, Outputs: []recipe.Item{it("rod", 1)}, Time: 1},
	}
}

// TestStructure checks item listing, resources, products and adjacency.
func TestStructure(t *testing.T) {
	g := graph.New(fixture())

	require.Equal(t, 5, g.Technologies())
	require.Equal(t, "gear", g.Technology(1).Name)
	require.Equal(t, []string{"gear", "ore", "plate", "rod", "u235", "u238", "water"}, g.Items())
	require.Equal(t, []string{"ore"}, g.Resources())
	require.Equal(t, []string{"gear", "plate", "rod", "u235", "u238", "water"}, g.Products())
	require.Equal(t, []int{0}, g.Producers("plate"))
	require.Equal(t, []int{1, 4}, g.Consumers("plate"))
	require.True(t, g.HasItem("water"))
	require.False(t, g.HasItem("steel"))
	require.Empty(t, g.Producers("ore"))
}

// TestReachable covers AND semantics on inputs and input-less technologies.
func TestReachable(t *testing.T) {
	g := graph.New(fixture())

	reached := g.Reachable([]string{"ore"})
	require.True(t, reached["ore"])
	require.True(t, reached["plate"])
	require.True(t, reached["gear"])
	require.True(t, reached["rod"]) // duplicate input names count once
	require.True(t, reached["water"])
	// enrichment needs u235 to start
	require.False(t, reached["u235"])

	require.False(t, g.Reachable(nil)["plate"])
	require.True(t, g.Reachable([]string{"u238", "u235"})["u235"])
}

// TestUnreachable reports sorted, de-duplicated misses.
func TestUnreachable(t *testing.T) {
	g := graph.New(fixture())
	miss := g.Unreachable([]string{"ore"}, []string{"u238", "gear", "steel", "u238"})
	require.Equal(t, []string{"steel", "u238"}, miss)
}

// TestCyclic finds the enrichment loop and nothing on the plate chain.
func TestCyclic(t *testing.T) {
	g := graph.New(fixture())
	require.Equal(t, []string{"u235", "u238"}, g.Cyclic())

	loop := append(fixture(),
		recipe.Technology{Name: "crack", Inputs: []recipe.Item{it("heavy", 4)}, Outputs: []recipe.Item{it("light", 3)}},
		recipe.Technology{Name: "liquefy", Inputs: []recipe.Item{it("light", 1), it("coal", 1)}, Outputs: []recipe.Item{it("heavy", 1)}},
	)
	require.Equal(t, []string{"heavy", "light", "u235", "u238"}, graph.New(loop).Cyclic())
	require.Empty(t, graph.New(nil).Cyclic())
}
