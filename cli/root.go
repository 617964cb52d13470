// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpi/pi"
	"github.com/katalvlaran/lvpi/precision"
)

// Run executes the arbitrary-precision tool with args (without the program
// name) and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)

	return execute(ctx, newRootCommand(a), a, args)
}

// newRootCommand builds `pi <method> <precision_bits> <count>` and its subcommands.
func newRootCommand(a *app) *cobra.Command {
	cmd := newCommand(a, "pi <method> <precision_bits> <count>",
		"Approximate pi with arbitrary-precision arithmetic")
	cmd.Long = `Approximate pi with one of four methods at a configurable mantissa width.

Methods:
  mc     Monte Carlo sampling of the unit circle (count = trials)
  trap   trapezoid rule on the quarter circle (count = subdivisions)
  atan   Machin's formula 16·atan(1/5) − 4·atan(1/239) (count = terms)
  atan2  six-term Machin-like formula (count = terms)`
	cmd.Args = exactArgs(3)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.compute(cmd, args)
	}

	cmd.SetHelpCommand(newHelpCommand())
	cmd.AddCommand(
		newDigitsCommand(a),
		newSweepCommand(a),
		newVersionCommand(a),
	)

	return cmd
}

// compute parses <method> <precision_bits> <count> and prints one line.
func (a *app) compute(cmd *cobra.Command, args []string) error {
	m, err := pi.ParseMethod(args[0])
	if err != nil {
		return err
	}
	bits, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: precision_bits %q", ErrUsage, args[1])
	}
	count, err := parseCount(args[2])
	if err != nil {
		return err
	}

	pctx, err := precision.New(uint(bits))
	if err != nil {
		return err
	}
	x, err := pi.Compute(pctx, m, count, pi.WithSeed(a.cfg.Seed))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), pctx.Text(x))

	return err
}

// parseCount parses a decimal count; its range is checked by the algorithms.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q", ErrUsage, s)
	}

	return n, nil
}
