package production

import (
	"fmt"

	"github.com/katalvlaran/prodchain/matrix"
	"github.com/katalvlaran/prodchain/recipe"
)

// Collect converts a solution vector into the technologies it runs.
//
// cycles(t) = x[first output of t] / amount(first output of t). Technologies
// whose cycles are close to zero under tol, or negative, are dropped. The
// returned records carry plain items (no column ids) and keep list order.
//
// Complexity: O(Technologies + total items of kept technologies).
func Collect(e *Enumeration, x []float64, tol matrix.Tolerance) ([]recipe.Resolved, error) {
	if len(x) != e.Len() {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrSolutionMismatch, len(x), e.Len())
	}

	var out []recipe.Resolved
	for t := 0; t < e.Technologies(); t++ {
		outs := e.Outputs(t)
		if len(outs) == 0 || !(outs[0].Amount > 0) {
			return nil, fmt.Errorf("%w: technology %d cannot be scaled by its first output", ErrInvalidTechnology, t)
		}
		cycles := x[outs[0].ID] / outs[0].Amount
		if cycles < 0 || tol.IsZero(cycles) {
			continue
		}
		out = append(out, e.Technology(t).Resolve(cycles))
	}

	return out, nil
}
