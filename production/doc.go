// Package production turns a list of recipes into a minimal-cost production
// plan: which technologies to run, at how many cycles, so that the net output
// of every demanded item meets its target while external resources are drawn
// as little as possible.
//
// Pipeline (Optimize):
//
//	Enumerate            → one LP column per item occurrence (arena of Occurrence)
//	EqualityConstraints  → ratio rows keeping each technology's columns in step
//	InequalityConstraints→ one row per non-resource item: consumed − produced ≤ −demand
//	ObjectiveVector      → c[col] = Weights(name(col))
//	lp.Solve             → simplex vertex x ≥ 0
//	Collect              → cycles = x[first output] / first output amount
//	Aggregate            → Flows{Inputs, Intermediate, Outputs}
//
// # Variables
//
// Every input and output occurrence of every technology owns a column. The
// equality rows tie the columns of one technology together so that the whole
// technology has a single degree of freedom (its cycle count). For technology
// t with inputs i₀…iₖ and outputs o₀…oₘ the rows pair (iₐ, o₀) for every input
// and (i₀, oᵦ) for every further output; a technology without inputs anchors
// its further outputs on o₀ instead. Each technology therefore contributes
// len(inputs)+len(outputs)−1 rows.
//
// # Inequalities
//
// Every item that is not a declared resource receives one row, summing +1 per
// input column and −1 per output column of that item. Its bound is −demand for
// demanded items and 0 otherwise, so a plan never consumes more of an
// intermediate than it produces. Resources have no row and are unlimited.
//
// # Objective
//
// DefaultWeights charges DefaultResourceWeight per unit of a resource, nothing
// for "water" and 1 for everything else. Inputs and outputs are charged alike,
// so among plans with equal resource draw the one with the least total traffic
// wins.
//
// # Multiple objectives
//
// OptimizeEither solves each demanded item on its own and merges the plans
// by name, keeping the larger cycle count or amount. The result covers any
// single objective; it is not a joint solve and over-provisions when the
// objectives are in fact additive.
//
// # Tolerance
//
// Near-zero cycles and near-balanced flows are decided with a matrix.Tolerance
// (abs 1e-8, rel 1e-5 by default).
//
// Errors (sentinel):
//
//	– ErrInfeasible         no plan satisfies the demand (wraps lp.ErrInfeasible).
//	– ErrUnknownDemand      demand names a resource or an item no technology uses;
//	                        matches ErrInfeasible via errors.Is.
//	– ErrInvalidDemand      negative, NaN or Inf demand amount.
//	– ErrInvalidTechnology  empty outputs, non-positive first output or a non-finite amount.
//
// Complexity: building the system is O(V·(R_eq+R_ub)) for V columns with dense
// storage; the simplex solve dominates in practice.
package production
