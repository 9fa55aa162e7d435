package frame_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/polyframe/internal/domain/data"
	domainerrors "github.com/leengari/polyframe/internal/domain/errors"
	"github.com/leengari/polyframe/internal/frame"
	"github.com/leengari/polyframe/internal/frame/strategies"
	"github.com/leengari/polyframe/internal/frame/testutil"
)

func demoFrame(t *testing.T) (*frame.PolyFrame, []*data.Table) {
	t.Helper()

	tables := []*data.Table{
		testutil.CreateObservationsTable(),
		testutil.CreateTaxonomyTable(),
		testutil.CreateFamiliesTable(),
	}

	f, err := frame.New(strategies.LeftFold,
		frame.NamedTable{Name: "observations", Table: tables[0]},
		frame.NamedTable{Name: "taxonomy", Table: tables[1]},
		frame.NamedTable{Name: "families", Table: tables[2]},
	)
	require.NoError(t, err)
	return f, tables
}

func TestNew_PreservesOrderAndContent(t *testing.T) {
	f, tables := demoFrame(t)

	assert.Equal(t, []string{"observations", "taxonomy", "families"}, f.Names())
	assert.Equal(t, 3, f.Len())

	got := f.Tables()
	require.Len(t, got, 3)
	for i, table := range tables {
		assert.Same(t, table, got[i], "table %d must be the exact input", i)
	}
}

func TestNew_EmptyInput(t *testing.T) {
	_, err := frame.New(strategies.LeftFold)
	require.Error(t, err)

	var emptyErr *domainerrors.EmptyInputError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestNew_DuplicateName(t *testing.T) {
	_, err := frame.New(strategies.LeftFold,
		frame.NamedTable{Name: "obs", Table: testutil.CreateObservationsTable()},
		frame.NamedTable{Name: "obs", Table: testutil.CreateTaxonomyTable()},
	)
	require.Error(t, err)

	var dupErr *domainerrors.DuplicateNameError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "obs", dupErr.Name)
	assert.Equal(t, 1, dupErr.Position)
}

func TestNew_NilStrategy(t *testing.T) {
	_, err := frame.New(nil,
		frame.NamedTable{Name: "obs", Table: testutil.CreateObservationsTable()},
	)
	require.Error(t, err)

	var invalidErr *domainerrors.InvalidStrategyError
	assert.True(t, errors.As(err, &invalidErr))
}

func TestNew_NoSchemaValidation(t *testing.T) {
	// Tables without any shared columns still build; key mismatch is a
	// merge-time, strategy-owned concern
	left := data.NewTable([]string{"a"}, []data.Row{{"a": int64(1)}})
	right := data.NewTable([]string{"b"}, []data.Row{{"b": int64(2)}})

	f, err := frame.New(strategies.LeftFold,
		frame.NamedTable{Name: "left", Table: left},
		frame.NamedTable{Name: "right", Table: right},
	)
	require.NoError(t, err)

	_, err = f.Merge()
	var invokeErr *domainerrors.StrategyInvocationError
	assert.True(t, errors.As(err, &invokeErr))
}

func TestAt_ReturnsExactTable(t *testing.T) {
	f, tables := demoFrame(t)

	got, err := f.At("taxonomy")
	require.NoError(t, err)
	assert.Same(t, tables[1], got)
}

func TestAt_NotFound(t *testing.T) {
	f, _ := demoFrame(t)

	_, err := f.At("missing")
	require.Error(t, err)

	var notFound *domainerrors.TableNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Name)
	assert.Equal(t, []string{"observations", "taxonomy", "families"}, notFound.Available)
}

func TestTables_CallerCannotMutateFrame(t *testing.T) {
	f, _ := demoFrame(t)

	got := f.Tables()
	got[0] = nil

	again := f.Tables()
	assert.NotNil(t, again[0], "mutating the returned slice must not reach the frame")
}
