// SPDX-License-Identifier: MIT

package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpi/sweep"
)

// newSweepCommand builds `pi sweep [--summary] [--plot file.png]`.
func newSweepCommand(a *app) *cobra.Command {
	var (
		summary  bool
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run every configured (method, precision, count) cell and report accuracy",
		Long: `Run the sweep groups of the configuration file (or the built-in defaults)
and print one CSV row per cell, or with --summary the smallest width that
reaches the best accuracy for each method and count. --plot also writes a PNG
of correct digits against count, one series per method.`,
		Args: subcommandArgs(exactArgs(0)),
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups, err := sweep.GroupsFromConfig(a.cfg.Sweep)
			if err != nil {
				return err
			}
			records, err := sweep.Run(cmd.Context(), groups, sweep.WithSeed(a.cfg.Seed))
			if err != nil {
				return err
			}
			if plotPath != "" {
				if err := writePlotFile(plotPath, records); err != nil {
					return err
				}
				a.log.Info("sweep: plot written", zap.String("path", plotPath))
			}
			if summary {
				return sweep.WriteSummary(cmd.OutOrStdout(), sweep.Analyze(records))
			}
			return sweep.WriteCSV(cmd.OutOrStdout(), records)
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "print the per-(method, count) analysis instead of CSV")
	cmd.Flags().StringVar(&plotPath, "plot", "", "also write a PNG plot of correct digits to this file")

	return cmd
}

// writePlotFile renders records into a new PNG file at path.
func writePlotFile(path string, records []sweep.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return sweep.WritePlot(f, records)
}
