package strategies

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leengari/polyframe/internal/domain/data"
)

// LeftFold is the default combination strategy: a sequential left-preserving
// pairwise combine. It joins combine(t0, t1), then combine(result, t2), and
// so on, so rows from the first table are never dropped by later steps. The
// join key at each step is inferred as the set of column names common to both
// operands; left rows without a match keep their values and get nil in the
// right operand's new columns.
func LeftFold(tables []*data.Table) (*data.Table, error) {
	return fold(tables, true)
}

// InnerFold follows the same sequential fold shape with inner-join semantics:
// left rows without a match are dropped at each step. Callers choosing it own
// the row-retention consequences.
func InnerFold(tables []*data.Table) (*data.Table, error) {
	return fold(tables, false)
}

func fold(tables []*data.Table, keepUnmatched bool) (*data.Table, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("fold requires at least one table")
	}

	// A single table folds to itself; clone so the result is a fresh value
	result := tables[0].Clone()

	for i := 1; i < len(tables); i++ {
		combined, err := joinPair(result, tables[i], keepUnmatched)
		if err != nil {
			return nil, fmt.Errorf("fold step %d: %w", i, err)
		}
		result = combined
	}

	return result, nil
}

// joinPair performs one hash-join step between two tables.
// The key is the intersection of the operands' column names; the hash index
// is built on the right table and probed with the left table's rows in order,
// which keeps the output row order deterministic.
func joinPair(left, right *data.Table, keepUnmatched bool) (*data.Table, error) {
	keys := commonColumns(left, right)
	if len(keys) == 0 {
		return nil, fmt.Errorf("no common columns to join on")
	}

	slog.Debug("Starting fold join step",
		slog.String("keys", strings.Join(keys, ",")),
		slog.Int("left_rows", len(left.Rows)),
		slog.Int("right_rows", len(right.Rows)),
		slog.Bool("keep_unmatched", keepUnmatched),
	)

	hashIndex := buildJoinIndex(right, keys)
	newColumns := freshColumns(left, right)

	// Output columns: left's in order, then right's new columns in order
	outColumns := make([]string, 0, len(left.Columns)+len(newColumns))
	outColumns = append(outColumns, left.Columns...)
	outColumns = append(outColumns, newColumns...)

	results := make([]data.Row, 0, len(left.Rows))
	unmatched := 0

	for _, leftRow := range left.Rows {
		key, ok := joinKey(leftRow, keys)

		var rightPositions []int
		if ok {
			rightPositions = hashIndex[key]
		}

		if len(rightPositions) == 0 {
			// No match (or NULL join key on the left)
			if keepUnmatched {
				results = append(results, combineRows(leftRow, nil, newColumns))
			}
			unmatched++
			continue
		}

		for _, pos := range rightPositions {
			results = append(results, combineRows(leftRow, right.Rows[pos], newColumns))
		}
	}

	slog.Info("Fold join step completed",
		slog.String("keys", strings.Join(keys, ",")),
		slog.Int("result_rows", len(results)),
		slog.Int("unmatched_left_rows", unmatched),
	)

	return data.NewTable(outColumns, results), nil
}

// commonColumns returns the column names present in both tables,
// in the left table's column order
func commonColumns(left, right *data.Table) []string {
	var common []string
	for _, col := range left.Columns {
		if right.HasColumn(col) {
			common = append(common, col)
		}
	}
	return common
}

// freshColumns returns the right table's columns not already present on the
// left (the join keys are always shared), in the right table's column order
func freshColumns(left, right *data.Table) []string {
	var fresh []string
	for _, col := range right.Columns {
		if !left.HasColumn(col) {
			fresh = append(fresh, col)
		}
	}
	return fresh
}

// buildJoinIndex creates a hash index over the right table's rows keyed by
// the composite join value. Rows with a NULL in any key column are skipped:
// they can never match.
func buildJoinIndex(table *data.Table, keys []string) map[string][]int {
	hashIndex := make(map[string][]int)
	for i, row := range table.Rows {
		key, ok := joinKey(row, keys)
		if !ok {
			continue
		}
		hashIndex[key] = append(hashIndex[key], i)
	}
	return hashIndex
}

// joinKey builds the composite lookup key for a row.
// Returns false if any key column is missing or nil.
func joinKey(row data.Row, keys []string) (string, bool) {
	var b strings.Builder
	for i, col := range keys {
		val, exists := row[col]
		if !exists || val == nil {
			return "", false
		}
		if i > 0 {
			b.WriteByte(0x1f) // unit separator keeps composite keys unambiguous
		}
		fmt.Fprintf(&b, "%v", val)
	}
	return b.String(), true
}

// combineRows merges a left row with a right row, copying only the right
// table's fresh columns. A nil rightRow fills those columns with nil.
func combineRows(leftRow, rightRow data.Row, newColumns []string) data.Row {
	combined := leftRow.Copy()
	for _, col := range newColumns {
		if rightRow == nil {
			combined[col] = nil
			continue
		}
		val, exists := rightRow[col]
		if !exists {
			val = nil
		}
		combined[col] = val
	}
	return combined
}
