package frame

import (
	"github.com/leengari/polyframe/internal/domain/data"
	"github.com/leengari/polyframe/internal/domain/errors"
)

// MergeStrategy reduces an ordered sequence of tables to one combined table.
// Strategies receive the frame's tables in construction order and own all
// combination semantics (key inference, row retention, missing-value fill).
type MergeStrategy func(tables []*data.Table) (*data.Table, error)

// NamedTable pairs a table with its name inside a frame
type NamedTable struct {
	Name  string
	Table *data.Table
}

// PolyFrame groups related tables that share linking keys, together with a
// default strategy for combining them into one table. It is immutable once
// built: the table sequence is fixed in length and order, the stored strategy
// never changes, and the contained tables are never mutated. Separate frames
// share nothing, so independent callers may build and merge concurrently
// without coordination.
type PolyFrame struct {
	tables   []NamedTable
	strategy MergeStrategy
}

// New builds a frame from one or more named tables and a default strategy.
// Validation is fail-fast: an invalid input means no frame comes into
// existence. Tables are captured as-is with no row or schema checks; key
// mismatches are a merge-time, strategy-owned concern.
func New(strategy MergeStrategy, tables ...NamedTable) (*PolyFrame, error) {
	if len(tables) == 0 {
		return nil, &errors.EmptyInputError{Operation: "build"}
	}
	if strategy == nil {
		return nil, &errors.InvalidStrategyError{Reason: "strategy function is nil"}
	}

	seen := make(map[string]bool, len(tables))
	for i, nt := range tables {
		if seen[nt.Name] {
			return nil, &errors.DuplicateNameError{Name: nt.Name, Position: i}
		}
		seen[nt.Name] = true
	}

	// Copy the pair slice so later caller-side appends cannot reach the frame
	owned := make([]NamedTable, len(tables))
	copy(owned, tables)

	return &PolyFrame{
		tables:   owned,
		strategy: strategy,
	}, nil
}

// Names returns the table names in construction order
func (f *PolyFrame) Names() []string {
	names := make([]string, len(f.tables))
	for i, nt := range f.tables {
		names[i] = nt.Name
	}
	return names
}

// At retrieves the original table stored under the given name.
// The returned pointer is the exact table supplied at construction.
func (f *PolyFrame) At(name string) (*data.Table, error) {
	for _, nt := range f.tables {
		if nt.Name == name {
			return nt.Table, nil
		}
	}
	return nil, &errors.TableNotFoundError{Name: name, Available: f.Names()}
}

// Tables returns the tables in construction order, unmodified.
// This is the exact sequence handed to the merge strategy.
func (f *PolyFrame) Tables() []*data.Table {
	tables := make([]*data.Table, len(f.tables))
	for i, nt := range f.tables {
		tables[i] = nt.Table
	}
	return tables
}

// Len returns the number of tables in the frame
func (f *PolyFrame) Len() int {
	return len(f.tables)
}
