package recipe

// Default item types as used by the ingestion layer.
const (
	TypeItem  = "item"
	TypeFluid = "fluid"
)

// Item is a named quantity flowing through a technology.
//
// Name identifies the item across technologies; aggregation is keyed by Name.
// Type is carried along for display only and is expected (not enforced) to be
// consistent for a given Name.
type Item struct {
	// Name is the item identifier, e.g. "iron-plate".
	Name string `json:"name" yaml:"name"`

	// Type is a category tag such as "item" or "fluid".
	Type string `json:"type" yaml:"type"`

	// Amount is the quantity per technology cycle (non-negative).
	Amount float64 `json:"amount" yaml:"amount"`
}

// WithAmount returns a copy of it with Amount replaced by amount.
func (it Item) WithAmount(amount float64) Item {
	it.Amount = amount
	return it
}

// Scale returns a copy of it with Amount multiplied by factor.
func (it Item) Scale(factor float64) Item {
	it.Amount *= factor
	return it
}

// Technology is one conversion process: a single cycle consumes Inputs and
// produces Outputs over Time seconds.
//
// Invariant: Outputs is non-empty. The optimizer reads the scale of a
// technology from its first output.
type Technology struct {
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Inputs   []Item  `json:"inputs" yaml:"inputs"`
	Outputs  []Item  `json:"outputs" yaml:"outputs"`
	Time     float64 `json:"time" yaml:"time"`
}

// Clone returns a deep copy of t. Inputs and Outputs get fresh backing arrays.
// Complexity: O(len(Inputs)+len(Outputs)).
func (t Technology) Clone() Technology {
	t.Inputs = cloneItems(t.Inputs)
	t.Outputs = cloneItems(t.Outputs)
	return t
}

// WithTime returns a copy of t with Time replaced.
func (t Technology) WithTime(time float64) Technology {
	c := t.Clone()
	c.Time = time
	return c
}

// WithInputs returns a copy of t with Inputs replaced by a copy of inputs.
func (t Technology) WithInputs(inputs []Item) Technology {
	c := t.Clone()
	c.Inputs = cloneItems(inputs)
	return c
}

// WithOutputs returns a copy of t with Outputs replaced by a copy of outputs.
func (t Technology) WithOutputs(outputs []Item) Technology {
	c := t.Clone()
	c.Outputs = cloneItems(outputs)
	return c
}

// Resolve pairs t with a cycle count.
func (t Technology) Resolve(cycles float64) Resolved {
	return Resolved{Technology: t.Clone(), Cycles: cycles}
}

// Resolved is a Technology annotated with the number of cycle-equivalents the
// solution requires of it.
type Resolved struct {
	Technology `yaml:",inline"`

	// Cycles is the non-negative number of cycles required.
	Cycles float64 `json:"cycles" yaml:"cycles"`
}

// WithCycles returns a copy of r with Cycles replaced.
func (r Resolved) WithCycles(cycles float64) Resolved {
	r.Technology = r.Technology.Clone()
	r.Cycles = cycles
	return r
}

// Scaled returns the inputs and outputs of r multiplied by r.Cycles.
func (r Resolved) Scaled() (inputs, outputs []Item) {
	inputs = make([]Item, len(r.Inputs))
	for i, it := range r.Inputs {
		inputs[i] = it.Scale(r.Cycles)
	}
	outputs = make([]Item, len(r.Outputs))
	for i, it := range r.Outputs {
		outputs[i] = it.Scale(r.Cycles)
	}
	return inputs, outputs
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
