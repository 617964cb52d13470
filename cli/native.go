// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpi/pi"
)

// nativeDigits is the number of fraction digits printed by the native build.
const nativeDigits = 36

// RunNative executes the float64 tool with args and returns the exit code.
func RunNative(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)

	return execute(ctx, newNativeCommand(a), a, args)
}

// newNativeCommand builds `pi-native <method> <count>`.
func newNativeCommand(a *app) *cobra.Command {
	cmd := newCommand(a, "pi-native <method> <count>",
		"Approximate pi with float64 arithmetic (mc, trap, atan)")
	cmd.Args = exactArgs(2)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		m, err := pi.ParseNativeMethod(args[0])
		if err != nil {
			return err
		}
		count, err := parseCount(args[1])
		if err != nil {
			return err
		}
		x, err := pi.ComputeNative(m, count, pi.WithSeed(a.cfg.Seed))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(x, 'f', nativeDigits, 64))

		return err
	}

	return cmd
}
