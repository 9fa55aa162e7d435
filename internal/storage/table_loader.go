package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/leengari/polyframe/internal/domain/data"
)

// LoadTable reads a table from a .json or .csv file based on its extension
func LoadTable(path string, logger *slog.Logger) (*data.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadTableJSON(path, logger)
	case ".csv":
		return LoadTableCSV(path, logger)
	default:
		return nil, fmt.Errorf("unsupported table file extension: %s", path)
	}
}

// LoadTableJSON reads a table from JSON. Both the explicit TableDoc form
// ({"columns": [...], "rows": [...]}) and a bare array of row objects are
// accepted; in the bare form the column order is the sorted union of row
// keys, so repeated loads stay deterministic.
func LoadTableJSON(path string, logger *slog.Logger) (*data.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc TableDoc
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Columns != nil {
		table := data.NewTable(doc.Columns, doc.Rows)
		logTableLoaded(logger, path, table)
		return table, nil
	}

	var rows []data.Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse table file %s: %w", path, err)
	}

	table := data.NewTable(columnsFromRows(rows), rows)
	logTableLoaded(logger, path, table)
	return table, nil
}

// LoadTableCSV reads a table from CSV. The header row supplies the ordered
// column names; cell values are parsed best-effort into int64, float64, or
// bool, falling back to string. Empty cells become the nil missing marker.
func LoadTableCSV(path string, logger *slog.Logger) (*data.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse table file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table file %s has no header row", path)
	}

	columns := records[0]
	rows := make([]data.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(data.Row, len(columns))
		for i, col := range columns {
			if i >= len(record) || record[i] == "" {
				row[col] = nil
				continue
			}
			row[col] = parseCell(record[i])
		}
		rows = append(rows, row)
	}

	table := data.NewTable(columns, rows)
	logTableLoaded(logger, path, table)
	return table, nil
}

// LoadFrameDoc reads a frame spec file for the CLI batch command
func LoadFrameDoc(path string) (*FrameDoc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc FrameDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse frame spec %s: %w", path, err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("frame spec %s names no tables", path)
	}
	return &doc, nil
}

// WriteTableJSON writes a table in the explicit TableDoc form
func WriteTableJSON(path string, table *data.Table) error {
	doc := TableDoc{Columns: table.Columns, Rows: table.Rows}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func columnsFromRows(rows []data.Row) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

// parseCell converts a CSV cell into a typed value
func parseCell(s string) interface{} {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return s
}

func logTableLoaded(logger *slog.Logger, path string, table *data.Table) {
	if logger == nil {
		return
	}
	logger.Info("table loaded",
		slog.String("path", path),
		slog.Int("columns", table.NumColumns()),
		slog.Int("rows", table.NumRows()),
	)
}
