// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Zero-row (or zero-column) matrices are legal: an LP may have no equality
// rows at all.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// Set assigns value v at (row, col). Non-finite values are rejected.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if !finite(v) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// IsZeroRow reports whether every entry of row i is exactly zero.
// Out-of-range rows report false.
func (m *Dense) IsZeroRow(i int) bool {
	if i < 0 || i >= m.r {
		return false
	}
	for _, v := range m.data[i*m.c : (i+1)*m.c] {
		if v != 0 {
			return false
		}
	}

	return true
}

// IsZeroCol reports whether every entry of column j is exactly zero.
// Out-of-range columns report false.
func (m *Dense) IsZeroCol(j int) bool {
	if j < 0 || j >= m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		if m.data[i*m.c+j] != 0 {
			return false
		}
	}

	return true
}

// MulVec computes y = m·x.
// Returns ErrDimensionMismatch if len(x) != Cols().
// Complexity: O(r*c).
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("Dense.MulVec: len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var s float64
		for j = 0; j < m.c; j++ {
			s += row[j] * x[j]
		}
		y[i] = s
	}

	return y, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
