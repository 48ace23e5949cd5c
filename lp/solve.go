// SPDX-License-Identifier: MIT

package lp

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/prodchain/matrix"
)

// Solve minimizes p.C·x subject to p.Aub·x ≤ p.Bub, p.Aeq·x = p.Beq, x ≥ 0.
//
// Steps:
//  1. Resolve options; reject non-simplex methods.
//  2. Validate shapes and finiteness.
//  3. Build the standard form (see standardForm).
//  4. Run the two-phase tableau simplex.
//  5. Map back, clamp round-off negatives, verify residuals.
//
// Implementation:
//   - Stage 1 finds a feasible vertex from an all-artificial basis, so no
//     basis is ever factorized and degenerate starts cannot turn singular.
//   - Entering columns follow Dantzig's rule; after a run of zero-length
//     steps Bland's rule takes over until the objective moves again.
//   - Row operations run on a gonum mat.Dense through gonum/floats.
//
// Behavior highlights:
//   - ctx is checked before the solve and before every pivot; errors.Is
//     matches the context error either way.
//   - The pivot budget (WithMaxIterations) bounds the work; exhausting it
//     returns ErrSolverFailed wrapping ErrIterationLimit.
//
// Complexity: O(m·(n+m)) per pivot on the standard form.
func Solve(ctx context.Context, p Problem, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	if o.Method != Simplex {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedMethod, o.Method)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := validate(p); err != nil {
		return Result{}, err
	}

	n := len(p.C)
	sf, err := standardForm(p)
	if err != nil {
		return Result{}, err
	}

	x := make([]float64, n)
	if sf.rows > 0 {
		xs, err := runSimplex(ctx, sf, o)
		if err != nil {
			return Result{}, err
		}
		for k, j := range sf.active {
			x[j] = xs[k]
		}
	}

	// Round-off can leave tiny negatives on basic variables at zero.
	var xScale float64
	for _, v := range x {
		xScale = math.Max(xScale, math.Abs(v))
	}
	for j, v := range x {
		if v < 0 {
			if -v > math.Abs(o.Feasibility.Abs)+math.Abs(o.Feasibility.Rel)*xScale {
				return Result{}, fmt.Errorf("%w: x[%d]=%g is negative", ErrSolverFailed, j, v)
			}
			x[j] = 0
		}
	}

	if err = verify(p, x, o.Feasibility); err != nil {
		return Result{}, err
	}

	var obj float64
	for j, c := range p.C {
		obj += c * x[j]
	}

	return Result{X: x, Objective: obj}, nil
}

// validate checks that every operand agrees with len(p.C) and is finite.
// Complexity: O(len(C) + len(Bub) + len(Beq)).
func validate(p Problem) error {
	n := len(p.C)
	if err := checkBlock("ub", p.Aub, p.Bub, n); err != nil {
		return err
	}
	if err := checkBlock("eq", p.Aeq, p.Beq, n); err != nil {
		return err
	}
	for j, v := range p.C {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: c[%d]=%g", ErrNaNInf, j, v)
		}
	}

	return nil
}

func checkBlock(kind string, a *matrix.Dense, b []float64, n int) error {
	if a == nil {
		if len(b) != 0 {
			return fmt.Errorf("%w: b_%s has %d entries but A_%s is nil", ErrDimensionMismatch, kind, len(b), kind)
		}
		return nil
	}
	if a.Cols() != n {
		return fmt.Errorf("%w: A_%s has %d columns, c has %d", ErrDimensionMismatch, kind, a.Cols(), n)
	}
	if a.Rows() != len(b) {
		return fmt.Errorf("%w: A_%s has %d rows, b_%s has %d", ErrDimensionMismatch, kind, a.Rows(), kind, len(b))
	}
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: b_%s[%d]=%g", ErrNaNInf, kind, i, v)
		}
	}

	return nil
}

// standard is the problem rewritten as min c·z, A·z = b, z ≥ 0 with b ≥ 0.
type standard struct {
	rows, cols int
	a          []float64 // row-major rows×cols
	b          []float64
	c          []float64
	active     []int // active[k] = original column of standard column k (k < len(active))
}

// standardForm rewrites p for the simplex backend.
//
// Stage 1: columns present in no row are pinned to zero; a negative cost on
// such a column makes the program unbounded.
// Stage 2: all-zero rows are dropped; an equality row 0 = b≠0 or an
// inequality row 0 ≤ b<0 makes it infeasible.
// Stage 3: remaining rows are copied, each inequality row receives its own
// slack column, and rows with negative bounds are negated.
//
// Complexity: O((m_ub+m_eq)·(n+m_ub)).
func standardForm(p Problem) (standard, error) {
	n := len(p.C)

	// Stage 1 - active columns.
	active := make([]int, 0, n)
	for j := 0; j < n; j++ {
		used := (p.Aub != nil && !p.Aub.IsZeroCol(j)) || (p.Aeq != nil && !p.Aeq.IsZeroCol(j))
		if used {
			active = append(active, j)
			continue
		}
		if p.C[j] < 0 {
			return standard{}, fmt.Errorf("%w: column %d is unconstrained with cost %g", ErrUnbounded, j, p.C[j])
		}
	}

	// Stage 2 - keep non-trivial rows.
	var eqRows, ubRows []int
	if p.Aeq != nil {
		for i := 0; i < p.Aeq.Rows(); i++ {
			if p.Aeq.IsZeroRow(i) {
				if p.Beq[i] != 0 {
					return standard{}, fmt.Errorf("%w: equality row %d reads 0 = %g", ErrInfeasible, i, p.Beq[i])
				}
				continue
			}
			eqRows = append(eqRows, i)
		}
	}
	if p.Aub != nil {
		for i := 0; i < p.Aub.Rows(); i++ {
			if p.Aub.IsZeroRow(i) {
				if p.Bub[i] < 0 {
					return standard{}, fmt.Errorf("%w: inequality row %d reads 0 ≤ %g", ErrInfeasible, i, p.Bub[i])
				}
				continue
			}
			ubRows = append(ubRows, i)
		}
	}

	// Stage 3 - assemble.
	k := len(active)
	sf := standard{
		rows:   len(eqRows) + len(ubRows),
		cols:   k + len(ubRows),
		active: active,
	}
	if sf.rows == 0 {
		return sf, nil
	}
	sf.a = make([]float64, sf.rows*sf.cols)
	sf.b = make([]float64, sf.rows)
	sf.c = make([]float64, sf.cols)
	for kk, j := range active {
		sf.c[kk] = p.C[j]
	}

	row := 0
	fill := func(src *matrix.Dense, i int, bound float64, slack int) error {
		vals, err := src.Row(i)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSolverFailed, err)
		}
		dst := sf.a[row*sf.cols : (row+1)*sf.cols]
		for kk, j := range active {
			dst[kk] = vals[j]
		}
		if slack >= 0 {
			dst[slack] = 1
		}
		if bound < 0 {
			for q := range dst {
				dst[q] = -dst[q]
			}
			bound = -bound
		}
		sf.b[row] = bound
		row++
		return nil
	}
	for _, i := range eqRows {
		if err := fill(p.Aeq, i, p.Beq[i], -1); err != nil {
			return standard{}, err
		}
	}
	for r, i := range ubRows {
		if err := fill(p.Aub, i, p.Bub[i], k+r); err != nil {
			return standard{}, err
		}
	}

	return sf, nil
}

// verify checks A_eq·x ≈ b_eq and A_ub·x ≤ b_ub. The accepted residual of a
// row is tol.Abs + tol.Rel·max(|b_i|, Σ_j |a_ij·x_j|), so rows carrying large
// terms that cancel are not held to an absolute threshold.
func verify(p Problem, x []float64, tol matrix.Tolerance) error {
	check := func(kind string, a *matrix.Dense, b []float64, equality bool) error {
		if a == nil {
			return nil
		}
		ax, err := a.MulVec(x)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSolverFailed, err)
		}
		for i, v := range ax {
			row, err := a.Row(i)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrSolverFailed, err)
			}
			var scale float64
			for j, aij := range row {
				scale += math.Abs(aij * x[j])
			}
			slack := math.Abs(tol.Abs) + math.Abs(tol.Rel)*math.Max(math.Abs(b[i]), scale)
			diff := v - b[i]
			if diff > slack || (equality && -diff > slack) {
				return fmt.Errorf("%w: %s row %d residual %g", ErrSolverFailed, kind, i, diff)
			}
		}
		return nil
	}
	if err := check("equality", p.Aeq, p.Beq, true); err != nil {
		return err
	}

	return check("inequality", p.Aub, p.Bub, false)
}
