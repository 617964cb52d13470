// SPDX-License-Identifier: MIT

package pi

import (
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpi/machin"
	"github.com/katalvlaran/lvpi/montecarlo"
	"github.com/katalvlaran/lvpi/native"
	"github.com/katalvlaran/lvpi/precision"
	"github.com/katalvlaran/lvpi/trapezoid"
)

// logger is the zap logger of this package; default is a no-op.
var logger = zap.NewNop()

// SetLogger changes the zap logger used by this package and by machin.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
		machin.SetLogger(l)
	}
}

// Options configures Compute and ComputeNative.
//
// Seed – random stream seed for mc. Default montecarlo.DefaultSeed.
type Options struct {
	Seed int64
}

// Option represents a functional option for Compute.
type Option func(*Options)

// WithSeed overrides the Monte Carlo seed; other methods ignore it.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns the dispatch defaults.
func DefaultOptions() Options {
	return Options{Seed: montecarlo.DefaultSeed}
}

// Compute runs method m with the given count at the width of ctx.
// Errors from the selected algorithm are returned unchanged.
func Compute(ctx *precision.Context, m Method, count int, opts ...Option) (*big.Float, error) {
	if ctx == nil {
		return nil, precision.ErrNilContext
	}
	o := gather(opts)
	l := logger.With(
		zap.Stringer("method", m),
		zap.Uint("bits", ctx.Bits()),
		zap.Int("count", count),
	)
	l.Debug("Compute: enter")
	start := time.Now()

	var (
		x   *big.Float
		err error
	)
	switch m {
	case MonteCarlo:
		x, err = montecarlo.Estimate(ctx, count, montecarlo.WithSeed(o.Seed))
	case Trapezoid:
		x, err = trapezoid.Integrate(ctx, count)
	case Atan:
		x, err = machin.PiClassic(ctx, count)
	case Atan2:
		x, err = machin.PiExtended(ctx, count)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
	if err != nil {
		l.Debug("Compute: failed", zap.Error(err))
		return nil, err
	}

	l.Debug("Compute: exit", zap.Duration("elapsed", time.Since(start)))

	return x, nil
}

// ComputeNative runs method m with float64 arithmetic.
func ComputeNative(m Method, count int, opts ...Option) (float64, error) {
	o := gather(opts)
	l := logger.With(zap.Stringer("method", m), zap.Int("count", count))
	l.Debug("ComputeNative: enter")

	var (
		x   float64
		err error
	)
	switch m {
	case MonteCarlo:
		x, err = native.MonteCarlo(count, o.Seed)
	case Trapezoid:
		x, err = native.Trapezoid(count)
	case Atan:
		x, err = native.Machin(count)
	default:
		err = fmt.Errorf("%w: %q has no native build", ErrUnknownMethod, string(m))
	}
	if err != nil {
		l.Debug("ComputeNative: failed", zap.Error(err))
		return 0, err
	}

	l.Debug("ComputeNative: exit", zap.Float64("result", x))

	return x, nil
}

// gather applies opts over DefaultOptions.
func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
