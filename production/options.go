package production

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/prodchain/lp"
	"github.com/katalvlaran/prodchain/matrix"
)

// DefaultResourceWeight is the per-unit cost of drawing a resource.
const DefaultResourceWeight = 1000

// DefaultParallelism solves objectives one after another.
const DefaultParallelism = 1

// Options configures Optimize and OptimizeEither.
//
// Weights         – cost policy; nil means DefaultWeights(resources, ResourceWeight).
// ResourceWeight  – multiplier used by the default policy.
// Tolerance       – closeness policy for cycles and flow balances.
// Logger          – structured logger; never nil after DefaultOptions.
// Parallelism     – concurrent objective solves in OptimizeEither (≥ 1).
// Solver          – options forwarded to lp.Solve.
type Options struct {
	Weights        Weights
	ResourceWeight float64
	Tolerance      matrix.Tolerance
	Logger         *zap.Logger
	Parallelism    int
	Solver         []lp.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: resource weight 1000, numpy-style
// tolerance, a no-op logger and sequential objective solves.
func DefaultOptions() Options {
	return Options{
		ResourceWeight: DefaultResourceWeight,
		Tolerance:      matrix.DefaultTolerance(),
		Logger:         zap.NewNop(),
		Parallelism:    DefaultParallelism,
	}
}

// WithWeights replaces the cost policy. A nil policy restores the default.
func WithWeights(w Weights) Option {
	return func(o *Options) { o.Weights = w }
}

// WithResourceWeight sets the multiplier of the default policy.
// Panics on negative or non-finite values.
func WithResourceWeight(m float64) Option {
	if !(m >= 0) || math.IsInf(m, 0) {
		panic("production: WithResourceWeight: multiplier must be finite and non-negative")
	}
	return func(o *Options) { o.ResourceWeight = m }
}

// WithTolerance sets the closeness policy used by Collect and Aggregate.
func WithTolerance(t matrix.Tolerance) Option {
	return func(o *Options) { o.Tolerance = t }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithParallelism bounds the number of concurrent solves in OptimizeEither.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("production: WithParallelism: n must be ≥ 1")
	}
	return func(o *Options) { o.Parallelism = n }
}

// WithSolverOptions appends options passed through to lp.Solve.
func WithSolverOptions(opts ...lp.Option) Option {
	return func(o *Options) { o.Solver = append(o.Solver, opts...) }
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
