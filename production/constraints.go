package production

import (
	"fmt"
	"math"

	"github.com/katalvlaran/prodchain/matrix"
)

// EqualityConstraints builds the ratio rows A_eq·x = 0.
//
// For a pair (this, other) of occurrences of one technology the row reads
//
//	−amount(other)·x[this] + amount(this)·x[other] = 0
//
// Pairs are (each input, first output) followed by (first input, each further
// output); without inputs the further outputs pair with the first output.
// The result has Len() − Technologies() rows.
//
// Complexity: O(R·V) time and space for the dense matrix.
func EqualityConstraints(e *Enumeration) (*matrix.Dense, []float64, error) {
	rows := e.Len() - e.Technologies()
	if rows < 0 {
		// Only technologies without any occurrence can push this below zero.
		rows = 0
	}
	a, err := matrix.NewDense(rows, e.Len())
	if err != nil {
		return nil, nil, err
	}

	row := 0
	emit := func(this, other Occurrence) error {
		if row >= rows {
			return fmt.Errorf("%w: more ratio rows than expected", ErrInvalidTechnology)
		}
		if err := a.Set(row, this.ID, -other.Amount); err != nil {
			return err
		}
		if err := a.Set(row, other.ID, this.Amount); err != nil {
			return err
		}
		row++
		return nil
	}

	for t := 0; t < e.Technologies(); t++ {
		ins, outs := e.Inputs(t), e.Outputs(t)
		if len(outs) == 0 {
			return nil, nil, fmt.Errorf("%w: technology %d has no outputs", ErrInvalidTechnology, t)
		}
		for _, in := range ins {
			if err = emit(in, outs[0]); err != nil {
				return nil, nil, err
			}
		}
		anchor := outs[0]
		if len(ins) > 0 {
			anchor = ins[0]
		}
		for _, out := range outs[1:] {
			if err = emit(anchor, out); err != nil {
				return nil, nil, err
			}
		}
	}

	return a, make([]float64, rows), nil
}

// InequalityConstraints builds the demand rows A_ub·x ≤ b_ub.
//
// Row k belongs to e.Products(resources)[k]: +1 on every input column of that
// item, −1 on every output column, bound −demand[item] (0 when not demanded).
//
// Errors: ErrInvalidDemand for negative or non-finite amounts, ErrUnknownDemand
// for demanded items without a row.
//
// Complexity: O(P·V) time and space for the dense matrix.
func InequalityConstraints(e *Enumeration, resources []string, demand map[string]float64) (*matrix.Dense, []float64, error) {
	if err := validateDemand(demand); err != nil {
		return nil, nil, err
	}

	products := e.Products(resources)
	index := make(map[string]int, len(products))
	for k, name := range products {
		index[name] = k
	}

	a, err := matrix.NewDense(len(products), e.Len())
	if err != nil {
		return nil, nil, err
	}
	for t := 0; t < e.Technologies(); t++ {
		for _, in := range e.Inputs(t) {
			if k, ok := index[in.Name]; ok {
				if err = a.Set(k, in.ID, 1); err != nil {
					return nil, nil, err
				}
			}
		}
		for _, out := range e.Outputs(t) {
			if k, ok := index[out.Name]; ok {
				if err = a.Set(k, out.ID, -1); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	b := make([]float64, len(products))
	for name, amount := range demand {
		k, ok := index[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDemand, name)
		}
		b[k] = -amount
	}

	return a, b, nil
}

func validateDemand(demand map[string]float64) error {
	for name, amount := range demand {
		if !(amount >= 0) || math.IsInf(amount, 0) {
			return fmt.Errorf("%w: %q = %g", ErrInvalidDemand, name, amount)
		}
	}
	return nil
}
