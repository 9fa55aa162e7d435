package data

import "testing"

func demoTable() *Table {
	return NewTable(
		[]string{"id", "name"},
		[]Row{
			{"id": int64(1), "name": "ada"},
			{"id": int64(2), "name": "grace"},
		},
	)
}

func TestTable_Counts(t *testing.T) {
	table := demoTable()

	if table.NumRows() != 2 {
		t.Errorf("expected 2 rows, got %d", table.NumRows())
	}
	if table.NumColumns() != 2 {
		t.Errorf("expected 2 columns, got %d", table.NumColumns())
	}
}

func TestTable_HasColumn(t *testing.T) {
	table := demoTable()

	if !table.HasColumn("name") {
		t.Error("expected table to declare column 'name'")
	}
	if table.HasColumn("species") {
		t.Error("did not expect column 'species'")
	}
}

func TestTable_CloneIsIndependent(t *testing.T) {
	table := demoTable()
	clone := table.Clone()

	clone.Columns[0] = "renamed"
	clone.Rows[0]["name"] = "mutated"

	if table.Columns[0] != "id" {
		t.Errorf("clone mutation reached original columns: %v", table.Columns)
	}
	if table.Rows[0]["name"] != "ada" {
		t.Errorf("clone mutation reached original rows: %v", table.Rows[0])
	}
}

func TestRow_Copy(t *testing.T) {
	row := Row{"id": int64(1), "name": "ada"}
	cp := row.Copy()
	cp["name"] = "mutated"

	if row["name"] != "ada" {
		t.Errorf("copy mutation reached original row: %v", row)
	}
}

func TestRow_Has(t *testing.T) {
	row := Row{"id": int64(1), "gap": nil}

	if !row.Has("id") {
		t.Error("expected Has to report a present value")
	}
	if row.Has("gap") {
		t.Error("nil value must count as missing")
	}
	if row.Has("absent") {
		t.Error("absent key must count as missing")
	}
}
