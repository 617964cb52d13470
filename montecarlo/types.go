// SPDX-License-Identifier: MIT

package montecarlo

import (
	"fmt"

	"github.com/katalvlaran/lvpi/precision"
)

// DefaultSeed seeds the random stream when no WithSeed option is given.
const DefaultSeed int64 = 2895720909174927

// pcgStream is the fixed second PCG seed word; only the first word varies.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// ErrZeroTrials indicates a trial count below one.
var ErrZeroTrials = fmt.Errorf("montecarlo: trial count must be >= 1: %w", precision.ErrArithmeticDegenerate)

// Options configures the estimator.
//
// Seed – first PCG seed word. Default DefaultSeed.
type Options struct {
	Seed int64
}

// Option represents a functional option for configuring Estimate and Count.
type Option func(*Options)

// WithSeed overrides the random stream seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns the estimator defaults.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
