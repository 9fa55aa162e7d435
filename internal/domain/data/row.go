package data

import "encoding/json"

// Row represents a single table row
// Key = column name, Value = cell value
// A missing key (or an explicit nil) is the missing-value marker.
type Row map[string]interface{}

// Copy creates a deep copy of the row to prevent mutation
func (r Row) Copy() Row {
	cp := make(Row, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}

// Has reports whether the row holds a non-nil value for the column
func (r Row) Has(column string) bool {
	v, exists := r[column]
	return exists && v != nil
}

// Get retrieves a value by column name
func (r Row) Get(column string) (interface{}, bool) {
	v, exists := r[column]
	return v, exists
}

// ToJSON serializes the row for CLI output and debugging
func (r Row) ToJSON() (json.RawMessage, error) {
	return json.Marshal(map[string]interface{}(r))
}
