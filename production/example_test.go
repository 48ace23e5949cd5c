package production_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/prodchain/production"
	"github.com/katalvlaran/prodchain/recipe"
)

func exampleRecipes() []recipe.Technology {
	return []recipe.Technology{
		{
			Name:     "iron-plate",
			Category: "smelting",
			Inputs:   []recipe.Item{{Name: "iron-ore", Type: "item", Amount: 1}},
			Outputs:  []recipe.Item{{Name: "iron-plate", Type: "item", Amount: 2}},
			Time:     1,
		},
		{
			Name:     "iron-gear-wheel",
			Category: "crafting",
			Inputs:   []recipe.Item{{Name: "iron-plate", Type: "item", Amount: 1}},
			Outputs:  []recipe.Item{{Name: "iron-gear-wheel", Type: "item", Amount: 1}},
			Time:     1,
		},
	}
}

func printPlan(p production.Plan) {
	for _, t := range p.Technologies {
		fmt.Printf("%s x%.2f\n", t.Name, t.Cycles)
	}
	for _, it := range p.Flows.Inputs {
		fmt.Printf("in  %s %.2f\n", it.Name, it.Amount)
	}
	for _, it := range p.Flows.Intermediate {
		fmt.Printf("mid %s %.2f\n", it.Name, it.Amount)
	}
	for _, it := range p.Flows.Outputs {
		fmt.Printf("out %s %.2f\n", it.Name, it.Amount)
	}
}

// ExampleOptimize plans two gears a cycle from iron ore.
func ExampleOptimize() {
	techs := exampleRecipes()
	plan, err := production.Optimize(context.Background(), techs, production.Resources(techs),
		map[string]float64{"iron-gear-wheel": 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	printPlan(plan)
	// Output:
	// iron-plate x1.00
	// iron-gear-wheel x2.00
	// in  iron-ore 1.00
	// mid iron-plate 2.00
	// out iron-gear-wheel 2.00
}

// ExampleOptimizeEither sizes a factory for either two gears or one plate.
func ExampleOptimizeEither() {
	techs := exampleRecipes()
	plan, err := production.OptimizeEither(context.Background(), techs, production.Resources(techs),
		map[string]float64{"iron-gear-wheel": 2, "iron-plate": 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	printPlan(plan)
	// Output:
	// iron-gear-wheel x2.00
	// iron-plate x1.00
	// in  iron-ore 1.00
	// mid iron-plate 2.00
	// out iron-gear-wheel 2.00
	// out iron-plate 1.00
}
