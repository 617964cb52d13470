// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpi/digits"
)

// newDigitsCommand builds `pi digits [file|-]`.
func newDigitsCommand(a *app) *cobra.Command {
	var showWaste bool
	cmd := &cobra.Command{
		Use:   "digits [file|-]",
		Short: "Count the correct digits of a result (stdin when no file is given)",
		Args:  subcommandArgs(maxArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			result, err := firstLine(in)
			if err != nil {
				return err
			}
			correct, waste, err := digits.Score(result)
			if err != nil {
				return err
			}
			a.log.Debug("digits: scored", zap.Int("correct", correct), zap.Int("waste", waste))

			out := cmd.OutOrStdout()
			if showWaste {
				_, err = fmt.Fprintf(out, "%d %d\n", correct, waste)
			} else {
				_, err = fmt.Fprintln(out, correct)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&showWaste, "waste", false, "also print the number of incorrect trailing digits")

	return cmd
}

// firstLine returns the first line of r with surrounding space removed.
func firstLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), digits.MaxDigits+64)
	if sc.Scan() {
		return strings.TrimSpace(sc.Text()), nil
	}

	return "", sc.Err()
}
