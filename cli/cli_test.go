// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpi/cli"
)

// run invokes the arbitrary-precision tool and returns code, stdout, stderr.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := cli.Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// runNative invokes the float64 tool and returns code, stdout, stderr.
func runNative(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := cli.RunNative(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// writeFile stores content under a fresh temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestRun_Success prints exactly one line with the expected prefix.
func TestRun_Success(t *testing.T) {
	code, out, errOut := run(t, "atan", "200", "10")
	require.Equal(t, cli.ExitOK, code, errOut)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "3.14159265358979"), out)

	// 64 bits carry 19 fraction digits
	code, out, _ = run(t, "trap", "64", "1")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "2.0000000000000000000\n", out)
}

// TestRun_SeedFlag reproduces the same mc result for the same seed.
func TestRun_SeedFlag(t *testing.T) {
	_, a, _ := run(t, "--seed", "7", "mc", "64", "500")
	_, b, _ := run(t, "--seed", "7", "mc", "64", "500")
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

// TestRun_ExitCodes maps every failure class to its code.
func TestRun_ExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"NoArgs", nil, cli.ExitUsage},
		{"TooFew", []string{"atan", "64"}, cli.ExitUsage},
		{"TooMany", []string{"atan", "64", "10", "x"}, cli.ExitUsage},
		{"UnknownMethod", []string{"leibniz", "64", "10"}, cli.ExitUnknownMethod},
		{"MalformedBits", []string{"atan", "abc", "10"}, cli.ExitUsage},
		{"ZeroBits", []string{"atan", "0", "10"}, cli.ExitUsage},
		{"MalformedCount", []string{"atan", "64", "ten"}, cli.ExitUsage},
		{"ZeroTerms", []string{"atan", "64", "0"}, cli.ExitUsage},
		{"ZeroTrials", []string{"mc", "64", "0"}, cli.ExitUsage},
		{"ZeroSubdivisions", []string{"trap", "64", "0"}, cli.ExitUsage},
		{"UnknownFlag", []string{"--bogus", "atan", "64", "10"}, cli.ExitUsage},
		{"HelpAsMethod", []string{"help", "64", "10"}, cli.ExitUnknownMethod},
		{"VersionAsMethod", []string{"version", "64", "10"}, cli.ExitUnknownMethod},
		{"DigitsAsMethod", []string{"digits", "64", "10"}, cli.ExitUnknownMethod},
		{"SweepAsMethod", []string{"sweep", "64", "10"}, cli.ExitUnknownMethod},
		{"SweepFlagAsMethod", []string{"sweep", "--summary", "64", "10"}, cli.ExitUnknownMethod},
		{"VersionExtraArg", []string{"version", "x"}, cli.ExitUsage},
		{"HelpTooMany", []string{"help", "a", "b", "c"}, cli.ExitUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, tc.args...)
			assert.Equal(t, tc.want, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "Usage:")
		})
	}
}

// TestRunNative covers the float64 tool.
func TestRunNative(t *testing.T) {
	code, out, _ := runNative(t, "trap", "1")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "2."+strings.Repeat("0", 36)+"\n", out)

	code, out, _ = runNative(t, "atan", "12")
	require.Equal(t, cli.ExitOK, code)
	x, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, x, 1e-15)

	code, out, _ = runNative(t, "atan2", "12")
	assert.Equal(t, cli.ExitUnknownMethod, code)
	assert.Empty(t, out)

	code, _, _ = runNative(t, "mc")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, _ = runNative(t, "mc", "0")
	assert.Equal(t, cli.ExitUsage, code)
}

// TestDigitsCommand scores results read from a file.
func TestDigitsCommand(t *testing.T) {
	path := writeFile(t, "exact.txt", "3.14159\n")
	code, out, _ := run(t, "digits", path)
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "6\n", out)

	path = writeFile(t, "off.txt", "3.14199\n")
	code, out, _ = run(t, "digits", "--waste", path)
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "4 2\n", out)

	code, _, _ = run(t, "digits", "a", "b", "c")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, _ = run(t, "digits", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, cli.ExitUsage, code)
}

// TestSweepCommand runs a configured one-cell grid.
func TestSweepCommand(t *testing.T) {
	path := writeFile(t, "sweep.toml", `
[[sweep.groups]]
methods = ["atan"]
precisions = [128]
counts = [10]
`)
	code, out, errOut := run(t, "--config", path, "sweep")
	require.Equal(t, cli.ExitOK, code, errOut)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "method,precision,count,correct_digits,waste_digits,walltime_ns", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "atan,128,10,"), lines[1])

	code, out, _ = run(t, "--config", path, "sweep", "--summary")
	require.Equal(t, cli.ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "method, iterations, precision, max_digits\natan 10 128 "), out)

	png := filepath.Join(t.TempDir(), "analysis.png")
	code, out, errOut = run(t, "--config", path, "sweep", "--plot", png)
	require.Equal(t, cli.ExitOK, code, errOut)
	assert.True(t, strings.HasPrefix(out, "method,precision"), out)
	img, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, []byte("\x89PNG")))

	code, _, _ = run(t, "--config", path, "sweep", "--plot", filepath.Join(t.TempDir(), "no", "such", "dir.png"))
	assert.Equal(t, cli.ExitUsage, code)

	bad := writeFile(t, "bad.toml", `
[[sweep.groups]]
methods = ["leibniz"]
precisions = [64]
counts = [1]
`)
	code, _, _ = run(t, "--config", bad, "sweep")
	assert.Equal(t, cli.ExitUnknownMethod, code)
}

// TestConfigErrors rejects unreadable and invalid configuration.
func TestConfigErrors(t *testing.T) {
	code, _, _ := run(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "atan", "64", "3")
	assert.Equal(t, cli.ExitUsage, code)

	path := writeFile(t, "typo.yaml", "precision_bitz: 64\n")
	code, _, _ = run(t, "--config", path, "atan", "64", "3")
	assert.Equal(t, cli.ExitUsage, code)

	code, _, _ = run(t, "--log-level", "loud", "atan", "64", "3")
	assert.Equal(t, cli.ExitUsage, code)
}

// TestLogLevel keeps stderr quiet by default and traces at debug.
func TestLogLevel(t *testing.T) {
	_, _, errOut := run(t, "atan", "64", "3")
	assert.NotContains(t, errOut, "Compute")

	code, out, errOut := run(t, "--log-level", "debug", "atan", "64", "3")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, errOut, "Compute: enter")
	assert.Contains(t, errOut, "run_id")
}

// TestHelpCommand still documents the tool and its subcommands.
func TestHelpCommand(t *testing.T) {
	code, out, _ := run(t, "help")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "Approximate pi")

	code, out, _ = run(t, "help", "sweep")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "--summary")
}

// TestVersionCommand prints the build metadata.
func TestVersionCommand(t *testing.T) {
	code, out, _ := run(t, "version")
	require.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "lvpi v"+cli.Version)
	assert.Contains(t, out, "Go Version:")
}
