package frame

import (
	"errors"
	"testing"

	"github.com/leengari/polyframe/internal/domain/data"
	domainerrors "github.com/leengari/polyframe/internal/domain/errors"
)

// A frame constructed without New never exists for callers, but the engine
// still re-checks so a future bypass cannot invoke a strategy on nothing.
func TestMerge_EmptyFrameBypass(t *testing.T) {
	bypassed := &PolyFrame{
		strategy: func(tables []*data.Table) (*data.Table, error) {
			t.Fatal("strategy must not be invoked on an empty frame")
			return nil, nil
		},
	}

	_, err := bypassed.Merge()
	if err == nil {
		t.Fatal("expected an error from merging an empty frame")
	}

	var emptyErr *domainerrors.EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyInputError, got %T: %v", err, err)
	}
	if emptyErr.Operation != "merge" {
		t.Errorf("expected merge-phase error, got %q", emptyErr.Operation)
	}
}
