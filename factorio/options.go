package factorio

import (
	"fmt"

	"go.uber.org/zap"
)

// Mode selects the difficulty variant of moded recipes.
type Mode string

// Supported modes.
const (
	Normal    Mode = "normal"
	Expensive Mode = "expensive"
)

// ParseMode maps "" to Normal and rejects anything but normal or expensive.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Normal:
		return Normal, nil
	case Expensive:
		return Expensive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Defaults.
const (
	// DefaultTime is the cycle time of prototypes without energy_required.
	DefaultTime = 0.5

	// DefaultCategory is the category of prototypes without one.
	DefaultCategory = "crafting"
)

// DefaultCategories folds crafting variants that share the same machines.
func DefaultCategories() map[string]string {
	return map[string]string{
		"advanced-crafting":   "crafting",
		"crafting-with-fluid": "crafting",
	}
}

// Options configures Parse and Load.
type Options struct {
	Mode       Mode
	Categories map[string]string
	Logger     *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns normal mode with the default category folding.
func DefaultOptions() Options {
	return Options{
		Mode:       Normal,
		Categories: DefaultCategories(),
		Logger:     zap.NewNop(),
	}
}

// WithMode selects the difficulty mode.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithCategories replaces the category folding table.
func WithCategories(m map[string]string) Option {
	return func(o *Options) { o.Categories = m }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return o, err
	}
	if o.Mode == "" {
		o.Mode = Normal
	}
	return o, nil
}
