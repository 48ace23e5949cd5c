package graph

import "sort"

// walker encapsulates mutable reachability state.
type walker struct {
	g *Graph

	// queue holds discovered items awaiting expansion.
	queue   []string
	reached map[string]bool

	// missing[t] counts the inputs of technology t not yet reached.
	missing []int
	fired   []bool
}

// Reachable returns the set of items that can be made from resources.
//
// Steps:
//  1. Seed the queue with every resource name.
//  2. Technologies without inputs fire immediately.
//  3. Pop an item; for each consumer decrement its missing-input counter; a
//     consumer reaching zero fires and enqueues its unreached outputs.
//
// Complexity: O(V + E).
func (g *Graph) Reachable(resources []string) map[string]bool {
	w := &walker{
		g:       g,
		queue:   make([]string, 0, len(g.items)),
		reached: make(map[string]bool, len(g.items)),
		missing: make([]int, len(g.techs)),
		fired:   make([]bool, len(g.techs)),
	}
	for t := range g.techs {
		w.missing[t] = len(g.ins[t])
	}

	for _, r := range resources {
		w.discover(r)
	}
	for t := range g.techs {
		if w.missing[t] == 0 {
			w.fire(t)
		}
	}

	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		for _, t := range g.consumers[item] {
			w.missing[t]--
			if w.missing[t] == 0 {
				w.fire(t)
			}
		}
	}

	return w.reached
}

func (w *walker) discover(item string) {
	if w.reached[item] {
		return
	}
	w.reached[item] = true
	w.queue = append(w.queue, item)
}

func (w *walker) fire(t int) {
	if w.fired[t] {
		return
	}
	w.fired[t] = true
	for _, out := range w.g.outs[t] {
		w.discover(out)
	}
}

// Unreachable returns the targets that Reachable(resources) does not reach,
// sorted and de-duplicated.
func (g *Graph) Unreachable(resources, targets []string) []string {
	reached := g.Reachable(resources)
	seen := make(map[string]struct{}, len(targets))
	var out []string
	for _, name := range targets {
		if reached[name] {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
