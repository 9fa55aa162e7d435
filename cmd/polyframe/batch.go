package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leengari/polyframe/internal/frame"
	"github.com/leengari/polyframe/internal/storage"
)

// runFrameSpec loads one frame spec, merges it, and writes the result next to
// the spec file (or to the path the spec names)
func runFrameSpec(specPath string, logger *slog.Logger) error {
	doc, err := storage.LoadFrameDoc(specPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(specPath)

	tableArgs := make([]string, 0, len(doc.Tables))
	for _, ref := range doc.Tables {
		path := ref.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		tableArgs = append(tableArgs, ref.Name+"="+path)
	}

	f, err := loadFrame(tableArgs, doc.Strategy, logger)
	if err != nil {
		return errors.Wrapf(err, "frame spec %s", specPath)
	}

	combined, err := f.Merge(frame.WithObserver(frame.NewLoggingObserver()))
	if err != nil {
		return errors.Wrapf(err, "frame spec %s", specPath)
	}

	output := doc.Output
	if output == "" {
		output = strings.TrimSuffix(specPath, filepath.Ext(specPath)) + ".merged.json"
	} else if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}

	if err := storage.WriteTableJSON(output, combined); err != nil {
		return errors.Wrapf(err, "frame spec %s", specPath)
	}

	logger.Info("frame merged",
		slog.String("spec", specPath),
		slog.String("output", output),
		slog.Int("rows", combined.NumRows()),
	)
	return nil
}

func newBatchCmd(logger *slog.Logger) *cobra.Command {
	var parallelism int

	cmd := &cobra.Command{
		Use:   "batch spec.json [spec.json ...]",
		Short: "Merge many frame specs concurrently",
		Long: "Each spec file names its tables and strategy; frames are independent\n" +
			"values, so merging them in parallel needs no coordination.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var g errgroup.Group
			g.SetLimit(parallelism)

			for _, specPath := range args {
				g.Go(func() error {
					return runFrameSpec(specPath, logger)
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().IntVar(&parallelism, "parallelism", 4, "max frame specs merged at once")

	return cmd
}
