package main

import (
	"fmt"
	"os"

	"github.com/leengari/polyframe/internal/domain/data"
	"github.com/leengari/polyframe/internal/frame"
	"github.com/leengari/polyframe/internal/frame/strategies"
	"github.com/leengari/polyframe/internal/logging"
)

func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	logger.Info("Starting polyframe demo...")

	// 1. Facts table: animal sightings
	observations := data.NewTable(
		[]string{"id", "common_name"},
		[]data.Row{
			{"id": int64(1), "common_name": "red fox"},
			{"id": int64(2), "common_name": "gray wolf"},
			{"id": int64(3), "common_name": "brown bear"},
		},
	)

	// 2. Lookup tables: common name -> species, species -> family
	taxonomy := data.NewTable(
		[]string{"common_name", "species"},
		[]data.Row{
			{"common_name": "red fox", "species": "Vulpes vulpes"},
			{"common_name": "gray wolf", "species": "Canis lupus"},
			{"common_name": "brown bear", "species": "Ursus arctos"},
		},
	)
	families := data.NewTable(
		[]string{"species", "family"},
		[]data.Row{
			{"species": "Vulpes vulpes", "family": "Canidae"},
			{"species": "Canis lupus", "family": "Canidae"},
			// No entry for Ursus arctos: the merged table gets a nil family
		},
	)

	// 3. Group the tables once; combining is deferred until Merge
	f, err := frame.New(strategies.LeftFold,
		frame.NamedTable{Name: "observations", Table: observations},
		frame.NamedTable{Name: "taxonomy", Table: taxonomy},
		frame.NamedTable{Name: "families", Table: families},
	)
	if err != nil {
		logger.Error("failed to build frame", "error", err)
		closeFn()
		os.Exit(1)
	}

	logger.Info("frame built", "tables", f.Names())

	// 4. Merge with the stored left-fold strategy
	combined, err := f.Merge(frame.WithObserver(frame.NewLoggingObserver()))
	if err != nil {
		logger.Error("merge failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	fmt.Println(combined.Columns)
	for _, row := range combined.Rows {
		fmt.Println(row)
	}

	// 5. Same frame, different strategy for this call only
	inner, err := f.Merge(frame.WithStrategy(strategies.InnerFold))
	if err != nil {
		logger.Error("inner merge failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	logger.Info("merged",
		"left_fold_rows", combined.NumRows(),
		"inner_fold_rows", inner.NumRows(),
	)
}
