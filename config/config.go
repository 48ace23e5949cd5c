// Package config loads the YAML run configuration of the prodchain CLI.
//
// Example:
//
//	recipes: recipes.json.zst
//	mode: normal
//	demand: {electronic-circuit: 1}
//	speed: {crafting: 0.75}
//	weights: {water: 0}
//
// Relative recipe paths resolve against the directory of the configuration
// file. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prodchain/factorio"
	"github.com/katalvlaran/prodchain/lp"
	"github.com/katalvlaran/prodchain/production"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FieldError names the offending field.
type FieldError struct {
	Field  string
	Reason string
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Unwrap makes every FieldError match ErrInvalidConfig.
func (e *FieldError) Unwrap() error { return ErrInvalidConfig }

// Config is one optimization run.
type Config struct {
	// Recipes is the path of the recipe dump (.json or .json.zst).
	Recipes string `yaml:"recipes"`

	// Mode selects normal or expensive recipes.
	Mode string `yaml:"mode"`

	// Resources overrides the default resource set (items never produced).
	Resources []string `yaml:"resources"`

	// Demand maps item names to required net rates.
	Demand map[string]float64 `yaml:"demand"`

	// Either sizes the plan for any single demand instead of all at once.
	Either bool `yaml:"either"`

	// Speed and Productivity are per-category multipliers applied to recipes.
	Speed        map[string]float64 `yaml:"speed"`
	Productivity map[string]float64 `yaml:"productivity"`

	// MachineSpeed overrides crafting speeds used for machine counts.
	MachineSpeed map[string]float64 `yaml:"machine_speed"`

	// Method names the LP method; only simplex solves.
	Method string `yaml:"method"`

	ResourceWeight float64            `yaml:"resource_weight"`
	Weights        map[string]float64 `yaml:"weights"`
	Parallelism    int                `yaml:"parallelism"`
}

// Default returns a configuration with every optional field at its default.
func Default() Config {
	return Config{
		Mode:           string(factorio.Normal),
		Method:         lp.Simplex.String(),
		ResourceWeight: production.DefaultResourceWeight,
		Parallelism:    production.DefaultParallelism,
	}
}

// Load reads, defaults and validates the configuration at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if cfg.Recipes != "" && !filepath.IsAbs(cfg.Recipes) {
		cfg.Recipes = filepath.Join(filepath.Dir(path), cfg.Recipes)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field, joined.
func (c Config) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if c.Recipes == "" {
		fail("recipes", "is required")
	}
	if _, err := factorio.ParseMode(c.Mode); err != nil {
		fail("mode", "must be normal or expensive, got %q", c.Mode)
	}
	if _, err := lp.ParseMethod(c.Method); err != nil {
		fail("method", "unknown LP method %q", c.Method)
	}
	if len(c.Demand) == 0 {
		fail("demand", "needs at least one item")
	}
	for _, name := range sortedKeys(c.Demand) {
		if v := c.Demand[name]; !(v >= 0) || math.IsInf(v, 0) {
			fail("demand."+name, "must be a finite non-negative rate, got %g", v)
		}
	}
	for _, mult := range []struct {
		field  string
		values map[string]float64
	}{
		{"speed", c.Speed},
		{"productivity", c.Productivity},
		{"machine_speed", c.MachineSpeed},
	} {
		for _, k := range sortedKeys(mult.values) {
			if v := mult.values[k]; !(v > 0) || math.IsInf(v, 0) {
				fail(mult.field+"."+k, "must be a finite positive multiplier, got %g", v)
			}
		}
	}
	if !(c.ResourceWeight >= 0) || math.IsInf(c.ResourceWeight, 0) {
		fail("resource_weight", "must be finite and non-negative, got %g", c.ResourceWeight)
	}
	for _, k := range sortedKeys(c.Weights) {
		if v := c.Weights[k]; math.IsNaN(v) || math.IsInf(v, 0) {
			fail("weights."+k, "must be finite, got %g", v)
		}
	}
	if c.Parallelism < 1 {
		fail("parallelism", "must be ≥ 1, got %d", c.Parallelism)
	}

	return errors.Join(errs...)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
