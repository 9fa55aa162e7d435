package testutil

import (
	"testing"

	"github.com/leengari/polyframe/internal/domain/data"
)

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, table *data.Table, expected int, context string) {
	t.Helper()
	if table.NumRows() != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, table.NumRows())
	}
}

// AssertColumns checks that the table's columns match exactly, in order
func AssertColumns(t *testing.T, table *data.Table, expected []string, context string) {
	t.Helper()
	if len(table.Columns) != len(expected) {
		t.Errorf("%s: expected columns %v, got %v", context, expected, table.Columns)
		return
	}
	for i, col := range expected {
		if table.Columns[i] != col {
			t.Errorf("%s: expected columns %v, got %v", context, expected, table.Columns)
			return
		}
	}
}

// AssertCellValue checks one cell of the table
func AssertCellValue(t *testing.T, table *data.Table, row int, column string, expected interface{}, context string) {
	t.Helper()
	if row >= table.NumRows() {
		t.Errorf("%s: row %d out of range (%d rows)", context, row, table.NumRows())
		return
	}
	actual := table.Rows[row][column]
	if actual != expected {
		t.Errorf("%s: expected %s[%d]=%v, got %v", context, column, row, expected, actual)
	}
}

// AssertNullCell checks that one cell holds the missing-value marker
func AssertNullCell(t *testing.T, table *data.Table, row int, column string, context string) {
	t.Helper()
	if row >= table.NumRows() {
		t.Errorf("%s: row %d out of range (%d rows)", context, row, table.NumRows())
		return
	}
	if val := table.Rows[row][column]; val != nil {
		t.Errorf("%s: expected NULL at %s[%d], got %v", context, column, row, val)
	}
}
