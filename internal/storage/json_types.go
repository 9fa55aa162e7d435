package storage

import "github.com/leengari/polyframe/internal/domain/data"

// TableDoc is the on-disk JSON form of a table: an explicit ordered column
// list plus rows as objects. A bare JSON array of row objects is also
// accepted by the loader, with the column order derived from the data.
type TableDoc struct {
	Columns []string   `json:"columns"`
	Rows    []data.Row `json:"rows"`
}

// FrameDoc is the on-disk JSON form of a frame spec consumed by the CLI
// batch command: named table file paths in merge order plus a strategy name.
type FrameDoc struct {
	Tables   []FrameTableRef `json:"tables"`
	Strategy string          `json:"strategy,omitempty"`
	Output   string          `json:"output,omitempty"`
}

// FrameTableRef names one table of a frame spec and points at its file
type FrameTableRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
