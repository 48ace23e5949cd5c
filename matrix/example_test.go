// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/prodchain/matrix"
)

// ExampleDense builds a ratio row and evaluates it at a candidate point.
func ExampleDense() {
	// 2·plate − 1·ore = 0
	m, _ := matrix.NewDense(1, 2)
	_ = m.Set(0, 0, -2)
	_ = m.Set(0, 1, 1)

	y, _ := m.MulVec([]float64{1, 2})
	row, _ := m.Row(0)
	fmt.Println(row, y)
	fmt.Println(m.IsZeroCol(1), matrix.DefaultTolerance().IsZero(y[0]))
	// Output:
	// [-2 1] [0]
	// false true
}
