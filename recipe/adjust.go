package recipe

// Filter selects the technologies an adjustment applies to.
type Filter func(Technology) bool

// All is the Filter that accepts every technology.
func All(Technology) bool { return true }

// AdjustSpeed returns a copy of t whose cycle time is divided by factor.
// A factor of 2 halves the cycle time.
func AdjustSpeed(t Technology, factor float64) Technology {
	return t.WithTime(t.Time / factor)
}

// AdjustProductivity returns a copy of t whose output amounts are multiplied
// by factor. Inputs are left untouched.
func AdjustProductivity(t Technology, factor float64) Technology {
	outputs := make([]Item, len(t.Outputs))
	for i, it := range t.Outputs {
		outputs[i] = it.Scale(factor)
	}
	return t.WithOutputs(outputs)
}

// AdjustOne applies the speed and productivity multipliers registered for
// t.Category. Missing or zero multipliers leave the field unchanged.
func AdjustOne(t Technology, speed, productivity map[string]float64) Technology {
	if f := speed[t.Category]; f != 0 {
		t = AdjustSpeed(t, f)
	}
	if f := productivity[t.Category]; f != 0 {
		t = AdjustProductivity(t, f)
	}
	return t
}

// Adjust applies AdjustOne to every technology accepted by keep and copies the
// rest through unchanged. A nil keep accepts every technology.
//
// Complexity: O(total items).
func Adjust(technologies []Technology, speed, productivity map[string]float64, keep Filter) []Technology {
	if keep == nil {
		keep = All
	}
	out := make([]Technology, len(technologies))
	for i, t := range technologies {
		if keep(t) {
			out[i] = AdjustOne(t, speed, productivity)
			continue
		}
		out[i] = t.Clone()
	}
	return out
}
