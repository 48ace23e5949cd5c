package factorio

import (
	"fmt"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/katalvlaran/prodchain/recipe"
)

// Parse validates a recipe dump and converts every prototype, in document
// order, into a technology.
func Parse(data []byte, opts ...Option) ([]recipe.Technology, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidDump)
	}
	if err = Validate(data); err != nil {
		return nil, err
	}

	var (
		techs []recipe.Technology
		index int
	)
	gjson.ParseBytes(data).ForEach(func(key, v gjson.Result) bool {
		var t recipe.Technology
		t, err = convert(v, key, o)
		if err != nil {
			err = &RecipeError{Index: index, Name: t.Name, Err: err}
			return false
		}
		techs = append(techs, t)
		index++
		return true
	})
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("factorio: recipes parsed",
		zap.Int("recipes", len(techs)),
		zap.String("mode", string(o.Mode)),
	)
	return techs, nil
}

// prototype reads fields of one recipe with the selected mode applied.
type prototype struct {
	base, variant gjson.Result
}

func (p prototype) get(field string) gjson.Result {
	if p.variant.IsObject() {
		if r := p.variant.Get(field); r.Exists() {
			return r
		}
	}
	return p.base.Get(field)
}

func convert(v, key gjson.Result, o Options) (recipe.Technology, error) {
	p := prototype{base: v, variant: v.Get(string(o.Mode))}

	t := recipe.Technology{
		Name:     p.get("name").String(),
		Category: p.get("category").String(),
		Time:     DefaultTime,
	}
	if t.Name == "" {
		t.Name = key.String()
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if folded, ok := o.Categories[t.Category]; ok {
		t.Category = folded
	}
	if e := p.get("energy_required"); e.Exists() {
		t.Time = e.Float()
	}

	t.Inputs = items(p.get("ingredients"))
	if r := p.get("result"); r.String() != "" {
		count := 1.0
		if c := p.get("result_count"); c.Exists() {
			count = c.Float()
		}
		t.Outputs = []recipe.Item{{Name: r.String(), Type: recipe.TypeItem, Amount: count}}
	} else {
		t.Outputs = items(p.get("results"))
	}

	if len(t.Outputs) == 0 {
		return t, fmt.Errorf("%w: no results", ErrInvalidRecipe)
	}
	return t, nil
}

func items(list gjson.Result) []recipe.Item {
	var out []recipe.Item
	list.ForEach(func(_, it gjson.Result) bool {
		out = append(out, item(it))
		return true
	})
	return out
}

func item(it gjson.Result) recipe.Item {
	if it.IsArray() {
		pair := it.Array()
		return recipe.Item{Name: pair[0].String(), Type: recipe.TypeItem, Amount: pair[1].Float()}
	}

	out := recipe.Item{Name: it.Get("name").String(), Type: it.Get("type").String()}
	if out.Type == "" {
		out.Type = recipe.TypeItem
	}
	if a := it.Get("amount"); a.Exists() {
		out.Amount = a.Float()
	} else {
		out.Amount = (it.Get("amount_min").Float() + it.Get("amount_max").Float()) / 2
	}
	if prob := it.Get("probability"); prob.Exists() {
		out.Amount *= prob.Float()
	}
	return out
}
