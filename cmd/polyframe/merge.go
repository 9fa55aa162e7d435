package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/leengari/polyframe/internal/domain/data"
	"github.com/leengari/polyframe/internal/frame"
	"github.com/leengari/polyframe/internal/frame/strategies"
	"github.com/leengari/polyframe/internal/storage"
)

// strategyByName resolves a CLI strategy flag to a built-in strategy
func strategyByName(name string) (frame.MergeStrategy, error) {
	switch name {
	case "", "left":
		return strategies.LeftFold, nil
	case "inner":
		return strategies.InnerFold, nil
	default:
		return nil, errors.Errorf("unknown strategy %q (want left or inner)", name)
	}
}

// parseTableArg splits a name=path table argument
func parseTableArg(arg string) (string, string, error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("table argument %q must be name=path", arg)
	}
	return parts[0], parts[1], nil
}

// loadFrame builds a frame from name=path arguments and a strategy name
func loadFrame(tableArgs []string, strategyName string, logger *slog.Logger) (*frame.PolyFrame, error) {
	strategy, err := strategyByName(strategyName)
	if err != nil {
		return nil, err
	}

	named := make([]frame.NamedTable, 0, len(tableArgs))
	for _, arg := range tableArgs {
		name, path, err := parseTableArg(arg)
		if err != nil {
			return nil, err
		}
		table, err := storage.LoadTable(path, logger)
		if err != nil {
			return nil, errors.Wrapf(err, "load table %q", name)
		}
		named = append(named, frame.NamedTable{Name: name, Table: table})
	}

	f, err := frame.New(strategy, named...)
	if err != nil {
		return nil, errors.Wrap(err, "build frame")
	}
	return f, nil
}

func newMergeCmd(logger *slog.Logger) *cobra.Command {
	var (
		tableArgs    []string
		strategyName string
		format       string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "merge --table name=path [--table name=path ...]",
		Short: "Build a frame from table files and merge it into one table",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFrame(tableArgs, strategyName, logger)
			if err != nil {
				return err
			}

			combined, err := f.Merge(frame.WithObserver(frame.NewLoggingObserver()))
			if err != nil {
				return errors.Wrap(err, "merge")
			}

			if output != "" {
				return storage.WriteTableJSON(output, combined)
			}
			return printTable(cmd.OutOrStdout(), combined, format)
		},
	}

	cmd.Flags().StringArrayVar(&tableArgs, "table", nil, "named table as name=path (repeatable, merge order)")
	cmd.Flags().StringVar(&strategyName, "strategy", "left", "combination strategy: left or inner")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&output, "output", "", "write the combined table to this JSON file")
	cmd.MarkFlagRequired("table")

	return cmd
}

func printTable(w io.Writer, table *data.Table, format string) error {
	switch format {
	case "json":
		doc := storage.TableDoc{Columns: table.Columns, Rows: table.Rows}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(table.Columns, "\t"))
		for _, row := range table.Rows {
			cells := make([]string, len(table.Columns))
			for i, col := range table.Columns {
				if val := row[col]; val != nil {
					cells[i] = fmt.Sprintf("%v", val)
				} else {
					cells[i] = "NA"
				}
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		return tw.Flush()
	default:
		return errors.Errorf("unknown format %q (want text or json)", format)
	}
}
