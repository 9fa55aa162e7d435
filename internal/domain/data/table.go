package data

import "fmt"

// Table is an ordered collection of equal-length named columns.
// Columns fixes the column names and their order; each Row holds the cell
// values for one record, keyed by column name. The container and merge
// machinery treat a Table as an opaque, immutable snapshot: nothing in this
// repository mutates a Table after it has been handed over.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates a table from an ordered column list and its rows
func NewTable(columns []string, rows []Row) *Table {
	return &Table{
		Columns: columns,
		Rows:    rows,
	}
}

// NumRows returns the row count
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the column count
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// HasColumn reports whether the table declares the named column
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the table
// Used wherever a fresh value must be returned instead of a shared snapshot
func (t *Table) Clone() *Table {
	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Copy()
	}

	return &Table{
		Columns: columns,
		Rows:    rows,
	}
}

// String returns a short description for debugging
func (t *Table) String() string {
	return fmt.Sprintf("Table(%d columns, %d rows)", len(t.Columns), len(t.Rows))
}
