package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/prodchain/production"
	"github.com/katalvlaran/prodchain/recipe"
)

// ErrUnknownCategory indicates a technology whose category has no speed.
var ErrUnknownCategory = errors.New("report: no crafting speed for category")

// Defaults.
const (
	// DefaultDigits bounds the decimals of printed numbers.
	DefaultDigits = 3

	// DefaultCeilTol is the integrality tolerance of SymCeil.
	DefaultCeilTol = 1e-8
)

// DefaultSpeed returns the crafting speed per category of the basic machines.
func DefaultSpeed() map[string]float64 {
	return map[string]float64{
		"crafting":        0.5,
		"chemistry":       1.0,
		"smelting":        1.0,
		"centrifuging":    1.0,
		"oil-processing":  1.0,
		"rocket-building": 1.0,
	}
}

// SymCeil rounds away from zero unless x is within tol of an integer, in
// which case that integer is returned.
func SymCeil(x, tol float64) float64 {
	if r := math.RoundToEven(x); math.Abs(x-r) < tol {
		return r
	}
	if x > 0 {
		return math.Ceil(x)
	}
	return math.Floor(x)
}

// Options configures the renderers.
type Options struct {
	Speed   map[string]float64
	Digits  int
	CeilTol float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns DefaultSpeed, DefaultDigits and DefaultCeilTol.
func DefaultOptions() Options {
	return Options{Speed: DefaultSpeed(), Digits: DefaultDigits, CeilTol: DefaultCeilTol}
}

// WithSpeed overrides crafting speeds per category, keeping the others.
func WithSpeed(speed map[string]float64) Option {
	return func(o *Options) {
		merged := make(map[string]float64, len(o.Speed)+len(speed))
		for k, v := range o.Speed {
			merged[k] = v
		}
		for k, v := range speed {
			merged[k] = v
		}
		o.Speed = merged
	}
}

// WithDigits bounds the decimals of printed numbers. Panics if n < 0.
func WithDigits(n int) Option {
	if n < 0 {
		panic("report: WithDigits: n must be ≥ 0")
	}
	return func(o *Options) { o.Digits = n }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) num(v float64) string {
	return humanize.CommafWithDigits(v, o.Digits)
}

// cycleTime is the seconds one machine needs for one cycle of t.
func (o Options) cycleTime(t recipe.Technology) (float64, error) {
	s, ok := o.Speed[t.Category]
	if !ok || !(s > 0) {
		return 0, fmt.Errorf("%w: %q (technology %q)", ErrUnknownCategory, t.Category, t.Name)
	}
	return t.Time / s, nil
}

func newTable(headers ...string) *table.Table {
	bold := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return bold
			}
			return cell
		})
}

// IO renders the per-machine rates of every technology.
func IO(techs []recipe.Technology, opts ...Option) (string, error) {
	o := gatherOptions(opts)
	t := newTable("name", "direction", "items/s", "type")
	for _, tech := range techs {
		ct, err := o.cycleTime(tech)
		if err != nil {
			return "", err
		}
		t.Row(tech.Name, "", "", "")
		for _, group := range []struct {
			dir   string
			items []recipe.Item
		}{{"in", tech.Inputs}, {"out", tech.Outputs}} {
			for _, it := range group.items {
				t.Row("  "+it.Name, group.dir, o.num(it.Amount/ct), it.Type)
			}
		}
	}
	return t.String(), nil
}

// Technologies renders, per technology, the cycles one machine runs per
// second, the demanded cycles and the machines needed (exact and rounded up).
func Technologies(techs []recipe.Resolved, opts ...Option) (string, error) {
	o := gatherOptions(opts)
	t := newTable("name", "cycles/s (machine)", "cycles (demand)", "machines", "built")
	for _, r := range techs {
		ct, err := o.cycleTime(r.Technology)
		if err != nil {
			return "", err
		}
		rate := 1 / ct
		count := r.Cycles / rate
		t.Row(r.Name, o.num(rate), o.num(r.Cycles), o.num(count), humanize.Comma(int64(SymCeil(count, o.CeilTol))))
	}
	return t.String(), nil
}

// Flows renders the three flow groups of a plan.
func Flows(f production.Flows, opts ...Option) string {
	o := gatherOptions(opts)
	t := newTable("name", "amount", "type")
	for _, group := range []struct {
		name  string
		items []recipe.Item
	}{{"inputs", f.Inputs}, {"intermediate", f.Intermediate}, {"outputs", f.Outputs}} {
		t.Row(group.name, "", "")
		for _, it := range group.items {
			t.Row("  "+it.Name, o.num(it.Amount), it.Type)
		}
	}
	return t.String()
}
