package production

import (
	"sort"

	"github.com/katalvlaran/prodchain/recipe"
)

// Occurrence is one input or output of one technology, numbered by its LP
// column. ID equals the occurrence's index in the enumeration arena.
type Occurrence struct {
	ID int
	recipe.Item
}

// Span locates the occurrences of one technology in the arena:
// inputs are [In, Out), outputs are [Out, End).
type Span struct {
	In, Out, End int
}

// Enumeration is the arena of all item occurrences of a technology list.
// It is immutable after Enumerate and safe for concurrent readers.
type Enumeration struct {
	techs []recipe.Technology
	occ   []Occurrence
	spans []Span
}

// Enumerate numbers every item occurrence in one forward scan: for each
// technology in list order its inputs take the next ids, then its outputs.
// Complexity: O(total occurrences).
func Enumerate(techs []recipe.Technology) *Enumeration {
	n := 0
	for _, t := range techs {
		n += len(t.Inputs) + len(t.Outputs)
	}

	e := &Enumeration{
		techs: make([]recipe.Technology, len(techs)),
		occ:   make([]Occurrence, 0, n),
		spans: make([]Span, len(techs)),
	}
	for t, tech := range techs {
		e.techs[t] = tech.Clone()
		s := Span{In: len(e.occ)}
		for _, it := range tech.Inputs {
			e.occ = append(e.occ, Occurrence{ID: len(e.occ), Item: it})
		}
		s.Out = len(e.occ)
		for _, it := range tech.Outputs {
			e.occ = append(e.occ, Occurrence{ID: len(e.occ), Item: it})
		}
		s.End = len(e.occ)
		e.spans[t] = s
	}

	return e
}

// Len returns the number of occurrences, i.e. LP columns.
func (e *Enumeration) Len() int { return len(e.occ) }

// Technologies returns the number of technologies.
func (e *Enumeration) Technologies() int { return len(e.techs) }

// Technology returns a copy of technology t as passed to Enumerate.
func (e *Enumeration) Technology(t int) recipe.Technology { return e.techs[t].Clone() }

// Span returns the arena range of technology t.
func (e *Enumeration) Span(t int) Span { return e.spans[t] }

// Inputs returns the input occurrences of technology t.
// The slice aliases the arena and must not be modified.
func (e *Enumeration) Inputs(t int) []Occurrence {
	s := e.spans[t]
	return e.occ[s.In:s.Out:s.Out]
}

// Outputs returns the output occurrences of technology t.
// The slice aliases the arena and must not be modified.
func (e *Enumeration) Outputs(t int) []Occurrence {
	s := e.spans[t]
	return e.occ[s.Out:s.End:s.End]
}

// Occurrence returns the occurrence with the given column id.
func (e *Enumeration) Occurrence(id int) Occurrence { return e.occ[id] }

// Items returns every distinct item name, sorted.
func (e *Enumeration) Items() []string {
	seen := make(map[string]struct{}, len(e.occ))
	out := make([]string, 0, len(e.occ))
	for _, o := range e.occ {
		if _, ok := seen[o.Name]; ok {
			continue
		}
		seen[o.Name] = struct{}{}
		out = append(out, o.Name)
	}
	sort.Strings(out)
	return out
}

// Products returns the item names that are not in resources, sorted. These are
// the items that receive an inequality row.
func (e *Enumeration) Products(resources []string) []string {
	skip := make(map[string]struct{}, len(resources))
	for _, r := range resources {
		skip[r] = struct{}{}
	}
	items := e.Items()
	out := items[:0]
	for _, name := range items {
		if _, ok := skip[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}
