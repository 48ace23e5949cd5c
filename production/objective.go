package production

// FreeItem is charged nothing by DefaultWeights.
const FreeItem = "water"

// Weights is a cost policy: the price of one unit of the named item.
type Weights func(name string) float64

// DefaultWeights charges multiplier per unit of every resource, nothing for
// FreeItem (even when it is a resource) and 1 for everything else.
func DefaultWeights(resources []string, multiplier float64) Weights {
	table := make(map[string]float64, len(resources)+1)
	for _, r := range resources {
		table[r] = multiplier
	}
	table[FreeItem] = 0

	return WeightTable(table, func(string) float64 { return 1 })
}

// WeightTable returns a policy that looks name up in table and falls back to
// fallback for missing names. A nil fallback charges 1. The table is copied.
func WeightTable(table map[string]float64, fallback Weights) Weights {
	if fallback == nil {
		fallback = func(string) float64 { return 1 }
	}
	t := make(map[string]float64, len(table))
	for k, v := range table {
		t[k] = v
	}

	return func(name string) float64 {
		if w, ok := t[name]; ok {
			return w
		}
		return fallback(name)
	}
}

// ObjectiveVector prices every column by the weight of its item name; input
// and output columns are priced alike.
// Complexity: O(Len()).
func ObjectiveVector(e *Enumeration, w Weights) []float64 {
	c := make([]float64, e.Len())
	for id := range c {
		c[id] = w(e.Occurrence(id).Name)
	}
	return c
}
