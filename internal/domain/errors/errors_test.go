package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStrategyInvocationError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("key column vanished")
	err := &StrategyInvocationError{Cause: cause}

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the underlying cause")
	}
}

func TestNewStrategyPanic_WrapsErrorValues(t *testing.T) {
	cause := fmt.Errorf("boom")

	err := NewStrategyPanic(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected a panicked error value to stay unwrappable")
	}

	err = NewStrategyPanic("bare string panic")
	if err == nil || err.Error() != "panic: bare string panic" {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&EmptyInputError{}, "build requires at least one table"},
		{&EmptyInputError{Operation: "merge"}, "merge requires at least one table"},
		{&DuplicateNameError{Name: "taxonomy", Position: 2}, `duplicate table name "taxonomy" at position 2`},
		{&InvalidStrategyError{Reason: "strategy function is nil"}, "invalid merge strategy: strategy function is nil"},
		{&TableNotFoundError{Name: "x"}, `table "x" not found`},
		{&TableNotFoundError{Name: "x", Available: []string{"a", "b"}}, `table "x" not found (have: a, b)`},
		{&StrategyContractError{Reason: "strategy returned no table"}, "merge strategy broke its contract: strategy returned no table"},
	}

	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}
