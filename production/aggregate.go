package production

import (
	"github.com/katalvlaran/prodchain/matrix"
	"github.com/katalvlaran/prodchain/recipe"
)

// Flows is the aggregated flow triple of a plan. The categories may overlap
// by name: a cycled item can be intermediate and a net input or output.
type Flows struct {
	// Inputs are net external consumption.
	Inputs []recipe.Item `json:"inputs" yaml:"inputs"`

	// Intermediate are items both produced and consumed, at max(in, out).
	Intermediate []recipe.Item `json:"intermediate" yaml:"intermediate"`

	// Outputs are net external production.
	Outputs []recipe.Item `json:"outputs" yaml:"outputs"`
}

type balance struct {
	typ     string
	in, out float64
}

// Aggregate sums the scaled inputs and outputs of techs per item name and
// classifies every name:
//
//	in > out, not close(in, out)        → Inputs        in − out
//	not close(in, 0), not close(out, 0) → Intermediate  max(in, out)
//	out > in, not close(in, out)        → Outputs       out − in
//
// Names keep first-seen order; the last seen type wins.
// Complexity: O(total items).
func Aggregate(techs []recipe.Resolved, tol matrix.Tolerance) Flows {
	var order []string
	totals := make(map[string]*balance)
	touch := func(it recipe.Item) *balance {
		b, ok := totals[it.Name]
		if !ok {
			b = &balance{}
			totals[it.Name] = b
			order = append(order, it.Name)
		}
		b.typ = it.Type
		return b
	}

	for _, t := range techs {
		for _, it := range t.Inputs {
			touch(it).in += it.Amount * t.Cycles
		}
		for _, it := range t.Outputs {
			touch(it).out += it.Amount * t.Cycles
		}
	}

	var f Flows
	for _, name := range order {
		b := totals[name]
		balanced := tol.Close(b.in, b.out)
		if !balanced && b.in > b.out {
			f.Inputs = append(f.Inputs, recipe.Item{Name: name, Type: b.typ, Amount: b.in - b.out})
		}
		if !tol.IsZero(b.in) && !tol.IsZero(b.out) {
			f.Intermediate = append(f.Intermediate, recipe.Item{Name: name, Type: b.typ, Amount: max(b.in, b.out)})
		}
		if !balanced && b.out > b.in {
			f.Outputs = append(f.Outputs, recipe.Item{Name: name, Type: b.typ, Amount: b.out - b.in})
		}
	}

	return f
}

// Net returns out − in for name over f: positive for net outputs, negative
// for net inputs, 0 for balanced or absent names.
func (f Flows) Net(name string) float64 {
	var v float64
	for _, it := range f.Outputs {
		if it.Name == name {
			v += it.Amount
		}
	}
	for _, it := range f.Inputs {
		if it.Name == name {
			v -= it.Amount
		}
	}
	return v
}
