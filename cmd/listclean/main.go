// Command listclean curates the community package lists used by Android
// debloating tools: migrate legacy-format documents, lint field values,
// summarize list composition, and export flat views.
package main

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func newRootCmd() *cobra.Command {
	var verbose bool
	logger := newLogger(os.Stderr, charmlog.InfoLevel)

	root := &cobra.Command{
		Use:          "listclean",
		Short:        "listclean curates debloat package lists",
		Long:         `listclean migrates legacy-format package list documents to the current format, lints field values against the known tiers, and exports flat views for analysis.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMigrateCmd(logger))
	root.AddCommand(newCheckCmd(logger))
	root.AddCommand(newStatsCmd(logger))
	root.AddCommand(newExportCmd(logger))

	return root
}
