package testutil

import "github.com/leengari/polyframe/internal/domain/data"

// CreateObservationsTable creates the "facts" side of the demo dataset:
// sighting records keyed by id, linking to taxonomy via common_name
func CreateObservationsTable() *data.Table {
	return data.NewTable(
		[]string{"id", "common_name"},
		[]data.Row{
			{"id": int64(1), "common_name": "red fox"},
			{"id": int64(2), "common_name": "gray wolf"},
			{"id": int64(3), "common_name": "brown bear"},
		},
	)
}

// CreateTaxonomyTable creates a lookup from common name to species
func CreateTaxonomyTable() *data.Table {
	return data.NewTable(
		[]string{"common_name", "species"},
		[]data.Row{
			{"common_name": "red fox", "species": "Vulpes vulpes"},
			{"common_name": "gray wolf", "species": "Canis lupus"},
			{"common_name": "brown bear", "species": "Ursus arctos"},
		},
	)
}

// CreateFamiliesTable creates a lookup from species to family.
// Note: no entry for Ursus arctos, so a left-preserving merge must surface
// a nil family for the brown bear row.
func CreateFamiliesTable() *data.Table {
	return data.NewTable(
		[]string{"species", "family"},
		[]data.Row{
			{"species": "Vulpes vulpes", "family": "Canidae"},
			{"species": "Canis lupus", "family": "Canidae"},
		},
	)
}
