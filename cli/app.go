// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvpi/config"
	"github.com/katalvlaran/lvpi/pi"
	"github.com/katalvlaran/lvpi/sweep"
)

// Exit codes.
const (
	ExitOK            = 0
	ExitUsage         = 1
	ExitUnknownMethod = 2
)

// ErrUsage indicates a wrong argument count or a malformed argument.
var ErrUsage = errors.New("cli: usage")

// app is the state shared by the commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgFile  string
	logLevel string
	seed     int64

	cfg config.Config
	log *zap.Logger
}

// newApp returns an app writing to the given streams.
func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
}

// bindFlags registers the global flags on cmd.
func (a *app) bindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	f.Int64Var(&a.seed, "seed", 0, "Monte Carlo seed (default from config)")
}

// setup resolves configuration and logging before any command runs.
// Precedence: flags > environment > config file > defaults.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	a.cfg = cfg

	a.log = newLogger(a.stderr, cfg.Level()).With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)
	pi.SetLogger(a.log)
	sweep.SetLogger(a.log)

	return nil
}

// newLogger returns a console logger on w at the given level.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	return zap.New(core)
}

// execute runs cmd with args and maps the outcome to an exit code.
func execute(ctx context.Context, cmd *cobra.Command, a *app, args []string) int {
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	failed, err := cmd.ExecuteContextC(ctx)
	_ = a.log.Sync()
	if err == nil {
		return ExitOK
	}
	if failed == nil {
		failed = cmd
	}

	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	fmt.Fprintf(a.stderr, "Usage: %s\n", failed.UseLine())
	if errors.Is(err, pi.ErrUnknownMethod) {
		return ExitUnknownMethod
	}

	return ExitUsage
}

// computeArity is the positional count of `pi <method> <precision_bits> <count>`.
const computeArity = 3

// subcommandArgs guards a subcommand name against being read as a method:
// with exactly computeArity−1 arguments the call has the shape of a
// computation, so the name is reported as an unknown method.
func subcommandArgs(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, rest []string) error {
		if len(rest) == computeArity-1 {
			return fmt.Errorf("%w: %q", pi.ErrUnknownMethod, cmd.Name())
		}
		return args(cmd, rest)
	}
}

// maxArgs is cobra.MaximumNArgs reporting ErrUsage.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return fmt.Errorf("%w: expected at most %d arguments, got %d", ErrUsage, n, len(args))
		}
		return nil
	}
}

// newHelpCommand replaces cobra's help command, whose name would otherwise
// shadow the method position.
func newHelpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Args:  subcommandArgs(maxArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				return fmt.Errorf("%w: unknown help topic %q", ErrUsage, args)
			}
			return target.Help()
		},
	}
}

// exactArgs is cobra.ExactArgs reporting ErrUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %d arguments, got %d", ErrUsage, n, len(args))
		}
		return nil
	}
}

// usageFlagError wraps flag parsing failures in ErrUsage.
func usageFlagError(_ *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// newCommand returns a root command with the shared settings applied.
func newCommand(a *app, use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:               use,
		Short:             short,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetFlagErrorFunc(usageFlagError)
	a.bindFlags(cmd)

	return cmd
}
