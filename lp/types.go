// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prodchain/matrix"
)

var (
	// ErrInfeasible is returned when no non-negative x satisfies the constraints.
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrUnbounded is returned when the objective has no finite minimum.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrUnsupportedMethod is returned for methods that are not vertex-enumerating.
	ErrUnsupportedMethod = errors.New("lp: unsupported solve method")

	// ErrDimensionMismatch indicates inconsistent shapes between c, A and b.
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrNaNInf indicates a non-finite cost or bound.
	ErrNaNInf = errors.New("lp: NaN or Inf encountered")

	// ErrSolverFailed wraps numerical failures of the backend.
	ErrSolverFailed = errors.New("lp: solver failed")

	// ErrIterationLimit is wrapped by ErrSolverFailed when the pivot budget runs out.
	ErrIterationLimit = errors.New("lp: iteration limit reached")
)

// Method selects the solve algorithm.
type Method int

const (
	// Simplex is the dense two-phase simplex method (default).
	Simplex Method = iota

	// InteriorPoint is listed so callers can ask for it explicitly; it is
	// always rejected with ErrUnsupportedMethod.
	InteriorPoint
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Simplex:
		return "simplex"
	case InteriorPoint:
		return "interior-point"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a method name back to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "simplex":
		return Simplex, nil
	case "interior-point":
		return InteriorPoint, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// Problem is a dense linear program. Aub/Aeq may be nil (no rows of that kind);
// otherwise their column count must equal len(C).
type Problem struct {
	C   []float64
	Aub *matrix.Dense
	Bub []float64
	Aeq *matrix.Dense
	Beq []float64
}

// Result holds an optimal vertex.
type Result struct {
	// X is the optimal assignment, len(X) == len(Problem.C), all entries ≥ 0.
	X []float64

	// Objective is c·X.
	Objective float64
}

// Defaults.
const (
	// DefaultOptimalityTol is the reduced-cost threshold of the simplex.
	DefaultOptimalityTol = 1e-9

	// DefaultFeasibilityAbs / DefaultFeasibilityRel bound the constraint residuals
	// accepted when verifying the returned vertex.
	DefaultFeasibilityAbs = 1e-7
	DefaultFeasibilityRel = 1e-7
)

// Options configures Solve.
type Options struct {
	// Method must be Simplex.
	Method Method

	// OptimalityTol is the simplex reduced-cost tolerance.
	OptimalityTol float64

	// Feasibility bounds the residual check on the returned vertex.
	Feasibility matrix.Tolerance

	// MaxIterations caps pivots across both phases; 0 means
	// max(1000, 50·(rows+cols)) of the standard form.
	MaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Method:        Simplex,
		OptimalityTol: DefaultOptimalityTol,
		Feasibility:   matrix.Tolerance{Abs: DefaultFeasibilityAbs, Rel: DefaultFeasibilityRel},
	}
}

// WithMethod selects the solve method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithOptimalityTol sets the simplex reduced-cost tolerance.
// Panics on negative or non-finite values (programmer error).
func WithOptimalityTol(tol float64) Option {
	if !(tol >= 0) || tol > 1 {
		panic("lp: WithOptimalityTol: tol must be in [0, 1]")
	}
	return func(o *Options) { o.OptimalityTol = tol }
}

// WithFeasibility sets the residual tolerance used to verify the returned vertex.
func WithFeasibility(t matrix.Tolerance) Option {
	return func(o *Options) { o.Feasibility = t }
}

// WithMaxIterations sets the pivot budget; 0 restores the size-based default.
// Panics on negative values.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("lp: WithMaxIterations: n must be ≥ 0")
	}
	return func(o *Options) { o.MaxIterations = n }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
