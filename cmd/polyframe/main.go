package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/leengari/polyframe/internal/logging"
)

func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	rootCmd := &cobra.Command{
		Use:   "polyframe",
		Short: "Group related tables and merge them on demand",
		Long: "polyframe groups tabular datasets that share linking keys and\n" +
			"defers combining them into one table until merge is requested.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMergeCmd(logger))
	rootCmd.AddCommand(newBatchCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		closeFn()
		os.Exit(1)
	}
}
