package graph

import "sort"

// Visitation states of the depth-first walk.
const (
	white = iota // unvisited
	gray         // on the stack
	black        // assigned to a component
)

// cycleWalker holds Tarjan's bookkeeping over item vertices, where item a
// leads to item b when some technology consumes a and produces b.
type cycleWalker struct {
	g      *Graph
	state  map[string]int
	index  map[string]int
	low    map[string]int
	stack  []string
	next   int
	cyclic map[string]bool
}

// Cyclic returns the items that lie on a production cycle: an item that can
// be turned, through one or more technologies, back into itself. Self-seeding
// loops and byproduct recycling show up here. The result is sorted.
//
// Complexity: O(V + E).
func (g *Graph) Cyclic() []string {
	w := &cycleWalker{
		g:      g,
		state:  make(map[string]int, len(g.items)),
		index:  make(map[string]int, len(g.items)),
		low:    make(map[string]int, len(g.items)),
		cyclic: make(map[string]bool),
	}
	for _, item := range g.items {
		if w.state[item] == white {
			w.visit(item)
		}
	}

	out := make([]string, 0, len(w.cyclic))
	for item := range w.cyclic {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// successors lists the distinct items one technology step away from item.
func (w *cycleWalker) successors(item string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range w.g.consumers[item] {
		for _, o := range w.g.outs[t] {
			if _, ok := seen[o]; ok {
				continue
			}
			seen[o] = struct{}{}
			out = append(out, o)
		}
	}
	return out
}

func (w *cycleWalker) visit(item string) {
	w.state[item] = gray
	w.index[item] = w.next
	w.low[item] = w.next
	w.next++
	w.stack = append(w.stack, item)

	selfLoop := false
	for _, nbr := range w.successors(item) {
		switch w.state[nbr] {
		case white:
			w.visit(nbr)
			w.low[item] = min(w.low[item], w.low[nbr])
		case gray:
			w.low[item] = min(w.low[item], w.index[nbr])
		}
		if nbr == item {
			selfLoop = true
		}
	}

	if w.low[item] != w.index[item] {
		return
	}

	// item roots a strongly connected component; pop it.
	var comp []string
	for {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.state[top] = black
		comp = append(comp, top)
		if top == item {
			break
		}
	}
	if len(comp) > 1 || selfLoop {
		for _, c := range comp {
			w.cyclic[c] = true
		}
	}
}
