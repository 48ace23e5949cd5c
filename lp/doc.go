// Package lp solves dense linear programs of the form
//
//	minimize    c·x
//	subject to  A_ub·x ≤ b_ub
//	            A_eq·x = b_eq
//	            x ≥ 0
//
// with a vertex-enumerating (simplex-family) method.
//
// # Why simplex only
//
// Production-chain programs are highly degenerate: many technologies can be
// idle at the optimum and ratio rows tie columns together in long chains.
// Interior-point iterations converge towards the analytic centre of the
// optimal face and are known to miss feasible vertices in this formulation,
// so Solve rejects Method=InteriorPoint with ErrUnsupportedMethod instead of
// silently returning a non-vertex answer.
//
// # Pipeline
//
//  1. Validate shapes and finiteness (ErrDimensionMismatch, ErrNaNInf).
//  2. Pin columns that appear in no row to 0 (ErrUnbounded if their cost is negative).
//  3. Drop all-zero rows (ErrInfeasible if their bound cannot hold).
//  4. Convert to standard form: one slack column per inequality row, rows
//     flipped so that b ≥ 0.
//  5. Run the two-phase tableau simplex (Dantzig pricing, Bland's rule on
//     degenerate stalls, ctx checked per pivot, bounded pivot budget).
//  6. Map the standard-form solution back and verify every constraint within
//     the feasibility tolerance (ErrSolverFailed otherwise).
//
// # Errors
//
//	ErrInfeasible        - no x ≥ 0 satisfies the constraints.
//	ErrUnbounded         - the objective decreases without bound.
//	ErrUnsupportedMethod - a non-simplex method was requested.
//	ErrDimensionMismatch - matrix/vector shapes disagree.
//	ErrNaNInf            - a non-finite cost or bound.
//	ErrSolverFailed      - the backend failed numerically, ran out of pivots
//	                       (ErrIterationLimit) or returned a point violating
//	                       the constraints.
//	context.Canceled / context.DeadlineExceeded - ctx done before or during the solve.
//
// Complexity: dominated by the simplex iterations, each O(m·n) on the dense
// standard-form matrix (m rows, n = variables + inequality rows).
package lp
