package production_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/prodchain/production"
	"github.com/katalvlaran/prodchain/recipe"
)

// approx compares solved quantities up to simplex round-off.
var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateEmpty()}

func item(name string, amount float64) recipe.Item {
	return recipe.Item{Name: name, Type: recipe.TypeItem, Amount: amount}
}

func fluid(name string, amount float64) recipe.Item {
	return recipe.Item{Name: name, Type: recipe.TypeFluid, Amount: amount}
}

func tech(name string, in, out []recipe.Item) recipe.Technology {
	return recipe.Technology{Name: name, Category: "crafting", Inputs: in, Outputs: out, Time: 1}
}

// plateGear: 1 ore → 2 plate; 1 plate → 1 gear.
func plateGear() []recipe.Technology {
	return []recipe.Technology{
		tech("iron-plate", []recipe.Item{item("iron-ore", 1)}, []recipe.Item{item("iron-plate", 2)}),
		tech("iron-gear-wheel", []recipe.Item{item("iron-plate", 1)}, []recipe.Item{item("iron-gear-wheel", 1)}),
	}
}

// layeredResources are the raw materials of layered recipe sets.
var layeredResources = []string{"r0", "r1", "r2", "r3", production.FreeItem}

// layered builds a seeded recipe set of the given item count. Item i<k> has
// two or three alternate technologies whose inputs are resources or items
// among the five below it, so every item is producible. Outputs carry the
// input mass; a third of the technologies also emit a lower item as a
// byproduct, which closes recipe loops.
func layered(seed uint64, items int) []recipe.Technology {
	rng := rand.New(rand.NewPCG(seed, 1))
	source := func(k int) string {
		lo := max(0, k-5)
		n := rng.IntN(5 + k - lo)
		switch {
		case n < 4:
			return fmt.Sprintf("r%d", n)
		case n == 4:
			return production.FreeItem
		default:
			return fmt.Sprintf("i%d", lo+n-5)
		}
	}

	var techs []recipe.Technology
	for k := 0; k < items; k++ {
		alternates := 2 + rng.IntN(2)
		for a := 0; a < alternates; a++ {
			var (
				in   []recipe.Item
				mass float64
			)
			seen := make(map[string]bool)
			for q := 1 + rng.IntN(3); q > 0; q-- {
				name := source(k)
				if seen[name] {
					continue
				}
				seen[name] = true
				amount := float64(1 + rng.IntN(3))
				mass += amount
				in = append(in, item(name, amount))
			}
			out := []recipe.Item{item(fmt.Sprintf("i%d", k), mass)}
			if k > 0 && rng.IntN(3) == 0 {
				out = append(out, item(fmt.Sprintf("i%d", rng.IntN(k)), 1))
			}
			techs = append(techs, tech(fmt.Sprintf("t%d-%d", k, a), in, out))
		}
	}

	return techs
}
