// SPDX-License-Identifier: MIT

package lp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/prodchain/matrix"
)

const (
	// pivotTol is the smallest column entry accepted as a pivot element.
	pivotTol = 1e-9

	// degenerateRun is the number of consecutive zero-length steps after
	// which entering columns are chosen by Bland's rule instead of Dantzig's.
	degenerateRun = 8
)

// tableau is a dense two-phase simplex tableau over the standard form with
// one artificial column per row.
//
// Layout: rows 0..m-1 are constraints and row m holds reduced costs.
// Columns 0..n-1 are structural, n..n+m-1 artificial, n+m the right-hand
// side. The right-hand side of the cost row holds the negated objective.
type tableau struct {
	ctx   context.Context
	t     *mat.Dense
	m, n  int
	basis []int
	tol   float64 // reduced-cost threshold
	limit int     // pivot budget across both phases
	iters int
}

func newTableau(ctx context.Context, sf standard, tol float64, limit int) *tableau {
	m, n := sf.rows, sf.cols
	tb := &tableau{
		ctx:   ctx,
		t:     mat.NewDense(m+1, n+m+1, nil),
		m:     m,
		n:     n,
		basis: make([]int, m),
		tol:   tol,
		limit: limit,
	}
	for i := 0; i < m; i++ {
		row := tb.t.RawRowView(i)
		copy(row[:n], sf.a[i*n:(i+1)*n])
		row[n+i] = 1
		row[n+m] = sf.b[i]
		tb.basis[i] = n + i
	}

	return tb
}

func (tb *tableau) rhs() int { return tb.n + tb.m }

// setCosts loads c (one entry per structural and artificial column) into the
// cost row and prices out the current basis.
func (tb *tableau) setCosts(c []float64) {
	cost := tb.t.RawRowView(tb.m)
	copy(cost, c)
	cost[tb.rhs()] = 0
	for i, j := range tb.basis {
		if cb := c[j]; cb != 0 {
			floats.AddScaled(cost, -cb, tb.t.RawRowView(i))
		}
	}
}

// objective returns the value of the current basic solution.
func (tb *tableau) objective() float64 {
	return -tb.t.At(tb.m, tb.rhs())
}

// optimize pivots until no column below ncols has a negative reduced cost.
// ctx is consulted before every pivot.
func (tb *tableau) optimize(ncols int) error {
	cost := tb.t.RawRowView(tb.m)
	rhs := tb.rhs()
	degenerate := 0
	for {
		if err := tb.ctx.Err(); err != nil {
			return fmt.Errorf("lp: interrupted after %d pivots: %w", tb.iters, err)
		}
		bland := degenerate >= degenerateRun

		enter, best := -1, -tb.tol
		for j := 0; j < ncols; j++ {
			if cost[j] < best {
				enter, best = j, cost[j]
				if bland {
					break
				}
			}
		}
		if enter < 0 {
			return nil
		}

		// Ratio test. Ties go to the lowest basic index under Bland's rule
		// and to the largest pivot element otherwise.
		leave := -1
		var ratio, pivot float64
		for i := 0; i < tb.m; i++ {
			row := tb.t.RawRowView(i)
			a := row[enter]
			if a <= pivotTol {
				continue
			}
			r := row[rhs] / a
			eps := 1e-12 * math.Max(1, math.Abs(ratio))
			switch {
			case leave < 0 || r < ratio-eps:
				leave, ratio, pivot = i, r, a
			case r <= ratio+eps:
				if (bland && tb.basis[i] < tb.basis[leave]) || (!bland && a > pivot) {
					leave, ratio, pivot = i, r, a
				}
			}
		}
		if leave < 0 {
			return ErrUnbounded
		}
		if tb.iters >= tb.limit {
			return fmt.Errorf("%w: %w after %d pivots", ErrSolverFailed, ErrIterationLimit, tb.iters)
		}

		if ratio <= pivotTol {
			degenerate++
		} else {
			degenerate = 0
		}
		tb.pivot(leave, enter)
	}
}

// pivot makes column c basic in row r.
func (tb *tableau) pivot(r, c int) {
	pr := tb.t.RawRowView(r)
	floats.Scale(1/pr[c], pr)
	pr[c] = 1
	for i := 0; i <= tb.m; i++ {
		if i == r {
			continue
		}
		row := tb.t.RawRowView(i)
		if f := row[c]; f != 0 {
			floats.AddScaled(row, -f, pr)
			row[c] = 0
		}
	}
	// Round-off below zero on the right-hand side.
	rhs := tb.rhs()
	for i := 0; i < tb.m; i++ {
		if row := tb.t.RawRowView(i); row[rhs] < 0 {
			row[rhs] = 0
		}
	}
	tb.basis[r] = c
	tb.iters++
}

// evictArtificials pivots zero-valued artificial columns out of the basis.
// Rows where no structural entry can replace them are redundant and keep
// their artificial, which never re-enters.
func (tb *tableau) evictArtificials() {
	for i := range tb.basis {
		if tb.basis[i] < tb.n {
			continue
		}
		row := tb.t.RawRowView(i)
		best := -1
		for j := 0; j < tb.n; j++ {
			if math.Abs(row[j]) > pivotTol && (best < 0 || math.Abs(row[j]) > math.Abs(row[best])) {
				best = j
			}
		}
		if best >= 0 {
			tb.pivot(i, best)
		}
	}
}

// solution reads the structural values off the basis.
func (tb *tableau) solution() []float64 {
	x := make([]float64, tb.n)
	rhs := tb.rhs()
	for i, j := range tb.basis {
		if j < tb.n {
			x[j] = tb.t.At(i, rhs)
		}
	}

	return x
}

// runSimplex solves the standard form with the two-phase method.
//
// Phase 1 minimizes the sum of artificials from the all-artificial basis; a
// positive optimum beyond the feasibility tolerance means ErrInfeasible.
// Phase 2 prices in the real costs and optimizes over structural columns.
func runSimplex(ctx context.Context, sf standard, o Options) ([]float64, error) {
	limit := o.MaxIterations
	if limit == 0 {
		limit = max(1000, 50*(sf.rows+sf.cols))
	}
	tb := newTableau(ctx, sf, o.OptimalityTol, limit)

	// Phase 1.
	c := make([]float64, sf.cols+sf.rows)
	for i := 0; i < sf.rows; i++ {
		c[sf.cols+i] = 1
	}
	tb.setCosts(c)
	if err := tb.optimize(sf.cols); err != nil {
		if errors.Is(err, ErrUnbounded) {
			return nil, fmt.Errorf("%w: phase 1 reported an unbounded ray", ErrSolverFailed)
		}
		return nil, err
	}
	if w := tb.objective(); w > feasibilitySlack(o.Feasibility, sf.b) {
		return nil, fmt.Errorf("%w: residual infeasibility %g", ErrInfeasible, w)
	}
	tb.evictArtificials()

	// Phase 2.
	for i := range c {
		c[i] = 0
	}
	copy(c, sf.c)
	tb.setCosts(c)
	if err := tb.optimize(sf.cols); err != nil {
		return nil, err
	}

	return tb.solution()[:len(sf.active)], nil
}

// feasibilitySlack is the phase-1 optimum still accepted as zero.
func feasibilitySlack(tol matrix.Tolerance, b []float64) float64 {
	var scale float64
	for _, v := range b {
		scale = math.Max(scale, math.Abs(v))
	}

	return math.Abs(tol.Abs) + math.Abs(tol.Rel)*scale
}
