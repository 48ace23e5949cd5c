// SPDX-License-Identifier: MIT

package matrix

import "math"

// Defaults mirror numpy.isclose so that solved quantities are classified the
// same way regardless of which component inspects them.
const (
	// DefaultAbsTol is the absolute tolerance term.
	DefaultAbsTol = 1e-8

	// DefaultRelTol is the relative tolerance term, scaled by |b|.
	DefaultRelTol = 1e-5
)

// Tolerance is an asymmetric closeness policy: a is close to b when
// |a−b| ≤ Abs + Rel·|b|.
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance returns the package defaults.
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: DefaultAbsTol, Rel: DefaultRelTol}
}

// Close reports whether a is close to b under t.
// NaN is never close to anything.
// Complexity: O(1).
func (t Tolerance) Close(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}

	return math.Abs(a-b) <= math.Abs(t.Abs)+math.Abs(t.Rel)*math.Abs(b)
}

// IsZero reports whether v is close to zero (the relative term vanishes).
func (t Tolerance) IsZero(v float64) bool {
	return t.Close(v, 0)
}
