package errors

import (
	"fmt"
	"strings"
)

// EmptyInputError reports an attempt to build or merge a frame with no tables
type EmptyInputError struct {
	Operation string // "build" or "merge"
}

func (e *EmptyInputError) Error() string {
	op := e.Operation
	if op == "" {
		op = "build"
	}
	return fmt.Sprintf("%s requires at least one table", op)
}

// DuplicateNameError reports two tables sharing a name within one frame
type DuplicateNameError struct {
	Name     string
	Position int // 0-based position of the second occurrence
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate table name %q at position %d", e.Name, e.Position)
}

// InvalidStrategyError reports a merge strategy that cannot be invoked
type InvalidStrategyError struct {
	Reason string
}

func (e *InvalidStrategyError) Error() string {
	return fmt.Sprintf("invalid merge strategy: %s", e.Reason)
}

// TableNotFoundError reports a lookup for a table name the frame does not hold
type TableNotFoundError struct {
	Name      string
	Available []string // table names present, in construction order
}

func (e *TableNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("table %q not found", e.Name)
	}
	return fmt.Sprintf("table %q not found (have: %s)", e.Name, strings.Join(e.Available, ", "))
}

// StrategyInvocationError reports a strategy that failed while running.
// Cause carries the underlying error unmodified: a returned error, or the
// value recovered from a panic wrapped as an error.
type StrategyInvocationError struct {
	Cause error
}

func (e *StrategyInvocationError) Error() string {
	return fmt.Sprintf("merge strategy failed: %v", e.Cause)
}

func (e *StrategyInvocationError) Unwrap() error {
	return e.Cause
}

// StrategyContractError reports a strategy that completed but did not honor
// its contract of producing exactly one table
type StrategyContractError struct {
	Reason string
}

func (e *StrategyContractError) Error() string {
	return fmt.Sprintf("merge strategy broke its contract: %s", e.Reason)
}

// NewStrategyPanic converts a recovered panic value into the underlying
// cause carried by a StrategyInvocationError
func NewStrategyPanic(recovered interface{}) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", recovered)
}
