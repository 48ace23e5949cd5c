package factorio

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidDump indicates malformed JSON or a schema violation.
	ErrInvalidDump = errors.New("factorio: invalid recipe dump")

	// ErrUnknownMode indicates a difficulty mode other than normal or expensive.
	ErrUnknownMode = errors.New("factorio: unknown recipe mode")

	// ErrInvalidRecipe indicates a prototype that cannot become a technology.
	ErrInvalidRecipe = errors.New("factorio: invalid recipe")
)

// RecipeError locates a prototype that failed conversion.
type RecipeError struct {
	Index int
	Name  string
	Err   error
}

// Error implements error.
func (e *RecipeError) Error() string {
	return fmt.Sprintf("factorio: recipe %q (#%d): %v", e.Name, e.Index, e.Err)
}

// Unwrap exposes the cause.
func (e *RecipeError) Unwrap() error { return e.Err }
