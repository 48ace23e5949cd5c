// Package graph builds the bipartite recipe graph G = (I ∪ T, E) of a
// technology list: item vertices I, technology vertices T, and directed edges
// item→technology for every input and technology→item for every output.
//
//	iron-ore ──► [iron-plate] ──► iron-plate ──► [gear] ──► gear
//
// The graph answers the structural questions the optimizer needs before and
// after solving:
//
//   - Resources: items consumed somewhere but produced nowhere (the default set
//     of unlimited external supplies).
//   - Products: items produced by at least one technology.
//   - Producers / Consumers: technology indices adjacent to an item.
//   - Reachable / Unreachable: which items can be made from a resource set.
//
// # Reachability
//
// Reachable runs a breadth-first walk in which an item vertex is discovered
// from any producing technology (OR), but a technology vertex fires only once
// every one of its inputs has been discovered (AND). A per-technology counter
// of undiscovered inputs turns the AND condition into an O(1) check, so the
// walk stays O(V + E).
//
// The walk is conservative for self-seeding cycles (a recipe that needs a
// little of its own output to start, such as uranium enrichment): such items
// are reported unreachable even though a linear program may still run the
// cycle. Reachability is therefore a diagnostic, never a feasibility verdict.
//
// # Determinism
//
// Items() and Resources() are sorted; technology indices follow the input
// order of the technology list. A Graph is immutable after New and safe for
// concurrent readers.
package graph
