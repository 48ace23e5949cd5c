package graph

import (
	"sort"

	"github.com/katalvlaran/prodchain/recipe"
)

// Graph is the immutable bipartite recipe graph.
//
// Technologies are identified by their position in the list passed to New
// (names may repeat); items are identified by name.
type Graph struct {
	techs []recipe.Technology

	// ins[t] / outs[t] are the distinct input/output item names of technology t.
	ins  [][]string
	outs [][]string

	// producers[item] / consumers[item] list technology indices in list order.
	producers map[string][]int
	consumers map[string][]int

	items []string // sorted, distinct
}

// New builds the recipe graph of techs.
// Complexity: O(V log V + E) where E is the total number of item occurrences.
func New(techs []recipe.Technology) *Graph {
	g := &Graph{
		techs:     techs,
		ins:       make([][]string, len(techs)),
		outs:      make([][]string, len(techs)),
		producers: make(map[string][]int),
		consumers: make(map[string][]int),
	}

	seen := make(map[string]struct{})
	for t, tech := range techs {
		g.ins[t] = distinctNames(tech.Inputs)
		g.outs[t] = distinctNames(tech.Outputs)
		for _, name := range g.ins[t] {
			g.consumers[name] = append(g.consumers[name], t)
			seen[name] = struct{}{}
		}
		for _, name := range g.outs[t] {
			g.producers[name] = append(g.producers[name], t)
			seen[name] = struct{}{}
		}
	}

	g.items = make([]string, 0, len(seen))
	for name := range seen {
		g.items = append(g.items, name)
	}
	sort.Strings(g.items)

	return g
}

// Technologies returns the number of technology vertices.
func (g *Graph) Technologies() int { return len(g.techs) }

// Technology returns technology t.
func (g *Graph) Technology(t int) recipe.Technology { return g.techs[t] }

// Items returns every item name in sorted order.
func (g *Graph) Items() []string {
	return append([]string(nil), g.items...)
}

// HasItem reports whether name occurs in any technology.
func (g *Graph) HasItem(name string) bool {
	_, p := g.producers[name]
	_, c := g.consumers[name]
	return p || c
}

// Producers returns the indices of technologies that output item.
func (g *Graph) Producers(item string) []int {
	return append([]int(nil), g.producers[item]...)
}

// Consumers returns the indices of technologies that input item.
func (g *Graph) Consumers(item string) []int {
	return append([]int(nil), g.consumers[item]...)
}

// Resources returns the items that are consumed but never produced, sorted.
func (g *Graph) Resources() []string {
	var out []string
	for _, name := range g.items {
		if len(g.producers[name]) == 0 {
			out = append(out, name)
		}
	}
	return out
}

// Products returns the items produced by at least one technology, sorted.
func (g *Graph) Products() []string {
	var out []string
	for _, name := range g.items {
		if len(g.producers[name]) > 0 {
			out = append(out, name)
		}
	}
	return out
}

func distinctNames(items []recipe.Item) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.Name]; ok {
			continue
		}
		seen[it.Name] = struct{}{}
		out = append(out, it.Name)
	}
	return out
}
