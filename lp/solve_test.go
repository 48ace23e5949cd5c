package lp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/prodchain/lp"
	"github.com/katalvlaran/prodchain/matrix"
)

// SolveSuite exercises the simplex adapter on small hand-checked programs.
type SolveSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SolveSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *SolveSuite) dense(rows, cols int, data ...float64) *matrix.Dense {
	require.Len(s.T(), data, rows*cols)
	m, err := matrix.NewDense(rows, cols)
	require.NoError(s.T(), err)
	for k, v := range data {
		require.NoError(s.T(), m.Set(k/cols, k%cols, v))
	}
	return m
}

// expiring is a context whose Err turns to Canceled after allowed calls.
type expiring struct {
	context.Context
	allowed int
}

func (c *expiring) Err() error {
	if c.allowed <= 0 {
		return context.Canceled
	}
	c.allowed--
	return nil
}

// covering needs at least two pivots: min x+y s.t. x+y ≥ 2, x ≤ 1.5.
func (s *SolveSuite) covering() lp.Problem {
	return lp.Problem{
		C:   []float64{1, 1},
		Aub: s.dense(2, 2, -1, -1, 1, 0),
		Bub: []float64{-2, 1.5},
	}
}

// TestCovering: the covering program has optimal value 2.
func (s *SolveSuite) TestCovering() {
	res, err := lp.Solve(s.ctx, s.covering())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 2.0, res.Objective, 1e-9)
	require.InDelta(s.T(), 2.0, res.X[0]+res.X[1], 1e-9)
	require.LessOrEqual(s.T(), res.X[0], 1.5+1e-9)
}

// TestRatioRow: one technology converting 1 ore into 2 plates, demand 4 plates.
func (s *SolveSuite) TestRatioRow() {
	p := lp.Problem{
		C:   []float64{1000, 1},
		Aeq: s.dense(1, 2, -2, 1),
		Beq: []float64{0},
		Aub: s.dense(1, 2, 0, -1),
		Bub: []float64{-4},
	}
	res, err := lp.Solve(s.ctx, p)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 2.0, res.X[0], 1e-9)
	require.InDelta(s.T(), 4.0, res.X[1], 1e-9)
	require.InDelta(s.T(), 2004.0, res.Objective, 1e-6)
}

// TestOptions: explicit tolerances solve the same program.
func (s *SolveSuite) TestOptions() {
	p := lp.Problem{
		C:   []float64{1000, 1},
		Aeq: s.dense(1, 2, -2, 1),
		Beq: []float64{0},
		Aub: s.dense(1, 2, 0, -1),
		Bub: []float64{-4},
	}
	res, err := lp.Solve(s.ctx, p,
		lp.WithOptimalityTol(1e-9),
		lp.WithFeasibility(matrix.Tolerance{Abs: 1e-6, Rel: 1e-6}),
	)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 2.0, res.X[0], 1e-9)

	require.Panics(s.T(), func() { lp.WithOptimalityTol(-1) })
	require.Equal(s.T(), "simplex", lp.Simplex.String())
}

// TestInfeasible: x ≤ −1 cannot hold with x ≥ 0.
func (s *SolveSuite) TestInfeasible() {
	p := lp.Problem{
		C:   []float64{1, 1},
		Aub: s.dense(1, 2, 1, 1),
		Bub: []float64{-1},
	}
	_, err := lp.Solve(s.ctx, p)
	require.ErrorIs(s.T(), err, lp.ErrInfeasible)
}

// TestInfeasibleZeroRow: an equality row without coefficients but with a bound.
func (s *SolveSuite) TestInfeasibleZeroRow() {
	p := lp.Problem{
		C:   []float64{1},
		Aeq: s.dense(1, 1, 0),
		Beq: []float64{3},
	}
	_, err := lp.Solve(s.ctx, p)
	require.ErrorIs(s.T(), err, lp.ErrInfeasible)
}

// TestUnboundedPinnedColumn: a negative cost on a column in no row.
func (s *SolveSuite) TestUnboundedPinnedColumn() {
	p := lp.Problem{
		C:   []float64{1, -1},
		Aub: s.dense(1, 2, -1, 0),
		Bub: []float64{-1},
	}
	_, err := lp.Solve(s.ctx, p)
	require.ErrorIs(s.T(), err, lp.ErrUnbounded)
}

// TestUnbounded: min −x with x = y and nothing bounding y.
func (s *SolveSuite) TestUnbounded() {
	p := lp.Problem{
		C:   []float64{-1, 0},
		Aeq: s.dense(1, 2, 1, -1),
		Beq: []float64{0},
	}
	_, err := lp.Solve(s.ctx, p)
	require.ErrorIs(s.T(), err, lp.ErrUnbounded)
}

// TestPinnedColumnStaysZero: unused columns come back as 0.
func (s *SolveSuite) TestPinnedColumnStaysZero() {
	p := lp.Problem{
		C:   []float64{1, 5, 2},
		Aub: s.dense(1, 3, -1, 0, -1),
		Bub: []float64{-3},
	}
	res, err := lp.Solve(s.ctx, p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, res.X[1])
	require.InDelta(s.T(), 3.0, res.X[0], 1e-9)
	require.InDelta(s.T(), 0.0, res.X[2], 1e-9)
}

// TestNoConstraints: without rows the origin is optimal for non-negative costs.
func (s *SolveSuite) TestNoConstraints() {
	res, err := lp.Solve(s.ctx, lp.Problem{C: []float64{1, 0}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0, 0}, res.X)
	require.Equal(s.T(), 0.0, res.Objective)
}

// TestRejectsInteriorPoint: only vertex-enumerating methods are accepted.
func (s *SolveSuite) TestRejectsInteriorPoint() {
	_, err := lp.Solve(s.ctx, lp.Problem{C: []float64{1}}, lp.WithMethod(lp.InteriorPoint))
	require.ErrorIs(s.T(), err, lp.ErrUnsupportedMethod)

	m, err := lp.ParseMethod("interior-point")
	require.NoError(s.T(), err)
	require.Equal(s.T(), lp.InteriorPoint, m)
	_, err = lp.ParseMethod("highs-ipm")
	require.ErrorIs(s.T(), err, lp.ErrUnsupportedMethod)
}

// TestShapeErrors covers mismatched operands and non-finite bounds.
func (s *SolveSuite) TestShapeErrors() {
	_, err := lp.Solve(s.ctx, lp.Problem{C: []float64{1, 1}, Aub: s.dense(1, 3, 1, 1, 1), Bub: []float64{1}})
	require.ErrorIs(s.T(), err, lp.ErrDimensionMismatch)

	_, err = lp.Solve(s.ctx, lp.Problem{C: []float64{1}, Aub: s.dense(1, 1, 1), Bub: []float64{1, 2}})
	require.ErrorIs(s.T(), err, lp.ErrDimensionMismatch)

	_, err = lp.Solve(s.ctx, lp.Problem{C: []float64{1}, Beq: []float64{1}})
	require.ErrorIs(s.T(), err, lp.ErrDimensionMismatch)
}

// TestInterruptedBetweenPivots: a context that expires after the pre-check
// stops the pivot loop.
func (s *SolveSuite) TestInterruptedBetweenPivots() {
	_, err := lp.Solve(&expiring{Context: context.Background(), allowed: 1}, s.covering())
	require.ErrorIs(s.T(), err, context.Canceled)

	res, err := lp.Solve(&expiring{Context: context.Background(), allowed: 1 << 20}, s.covering())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 2.0, res.Objective, 1e-9)
}

// TestIterationLimit: an exhausted pivot budget fails instead of spinning.
func (s *SolveSuite) TestIterationLimit() {
	_, err := lp.Solve(s.ctx, s.covering(), lp.WithMaxIterations(1))
	require.ErrorIs(s.T(), err, lp.ErrSolverFailed)
	require.ErrorIs(s.T(), err, lp.ErrIterationLimit)

	_, err = lp.Solve(s.ctx, s.covering(), lp.WithMaxIterations(0))
	require.NoError(s.T(), err)
	require.Panics(s.T(), func() { lp.WithMaxIterations(-1) })
}

// TestDegenerateRedundantRows: duplicated equality rows and a zero bound
// leave artificials at zero; the solve still reaches the optimum.
func (s *SolveSuite) TestDegenerateRedundantRows() {
	// x = 2y twice, y − z = 0, x ≥ 4.
	p := lp.Problem{
		C: []float64{1, 1, 1},
		Aeq: s.dense(3, 3,
			1, -2, 0,
			2, -4, 0,
			0, 1, -1,
		),
		Beq: []float64{0, 0, 0},
		Aub: s.dense(1, 3, -1, 0, 0),
		Bub: []float64{-4},
	}
	res, err := lp.Solve(s.ctx, p)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 4.0, res.X[0], 1e-9)
	require.InDelta(s.T(), 2.0, res.X[1], 1e-9)
	require.InDelta(s.T(), 2.0, res.X[2], 1e-9)
	require.InDelta(s.T(), 8.0, res.Objective, 1e-9)
}

// TestCanceledContext: a done context aborts before solving.
func (s *SolveSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := lp.Solve(ctx, lp.Problem{C: []float64{1}})
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}
