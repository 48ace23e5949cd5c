package production

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the optimizer.
var (
	// ErrInfeasible indicates that no production plan satisfies the demand.
	ErrInfeasible = errors.New("production: infeasible production plan")

	// ErrUnknownDemand indicates a demanded item that is a resource or that no
	// technology mentions. It wraps ErrInfeasible.
	ErrUnknownDemand = fmt.Errorf("%w: demanded item is unknown or a resource", ErrInfeasible)

	// ErrInvalidDemand indicates a negative or non-finite demand amount.
	ErrInvalidDemand = errors.New("production: demand must be a finite non-negative amount")

	// ErrInvalidTechnology indicates a technology the optimizer cannot scale:
	// no outputs, a non-positive first output or a non-finite amount.
	ErrInvalidTechnology = errors.New("production: invalid technology")

	// ErrSolutionMismatch indicates a solution vector whose length differs
	// from the enumeration.
	ErrSolutionMismatch = errors.New("production: solution length does not match enumeration")
)
