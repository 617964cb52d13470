// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpi/config"
	"github.com/katalvlaran/lvpi/digits"
	"github.com/katalvlaran/lvpi/montecarlo"
	"github.com/katalvlaran/lvpi/pi"
	"github.com/katalvlaran/lvpi/precision"
)

// ErrEmptyGrid indicates a sweep without any cell.
var ErrEmptyGrid = errors.New("sweep: grid has no cells")

// logger is the zap logger of this package; default is a no-op.
var logger = zap.NewNop()

// SetLogger changes the zap logger used by this package. nil is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Group is the cartesian product Methods × Precisions × Counts.
type Group struct {
	Methods    []pi.Method
	Precisions []uint
	Counts     []int
}

// Record is the outcome of one cell.
type Record struct {
	Method    pi.Method
	Precision uint
	Count     int
	Correct   int
	Waste     int
	Walltime  time.Duration
	Result    string
}

// Options configures Run.
//
// Seed – Monte Carlo seed passed to every mc cell. Default montecarlo.DefaultSeed.
type Options struct {
	Seed int64
}

// Option represents a functional option for Run.
type Option func(*Options)

// WithSeed sets the Monte Carlo seed of every mc cell.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// GroupsFromConfig converts configuration groups, validating method names.
func GroupsFromConfig(s config.Sweep) ([]Group, error) {
	groups := make([]Group, 0, len(s.Groups))
	for _, g := range s.Groups {
		methods := make([]pi.Method, 0, len(g.Methods))
		for _, name := range g.Methods {
			m, err := pi.ParseMethod(name)
			if err != nil {
				return nil, err
			}
			methods = append(methods, m)
		}
		groups = append(groups, Group{
			Methods:    methods,
			Precisions: slices.Clone(g.Precisions),
			Counts:     slices.Clone(g.Counts),
		})
	}

	return groups, nil
}

// Run evaluates every cell of groups in order and scores it.
//
// The reference expansion is computed once, long enough for the widest cell.
// The first failing cell aborts the sweep; records gathered so far are
// discarded.
func Run(ctx context.Context, groups []Group, opts ...Option) ([]Record, error) {
	o := Options{Seed: montecarlo.DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}

	cells := 0
	var widest uint
	for _, g := range groups {
		cells += len(g.Methods) * len(g.Precisions) * len(g.Counts)
		for _, p := range g.Precisions {
			widest = max(widest, p)
		}
	}
	if cells == 0 {
		return nil, ErrEmptyGrid
	}

	wctx, err := precision.New(widest)
	if err != nil {
		return nil, err
	}
	ref, err := digits.Reference(wctx.DecimalDigits())
	if err != nil {
		return nil, err
	}
	logger.Info("sweep: start", zap.Int("cells", cells), zap.Uint("widest", widest))

	records := make([]Record, 0, cells)
	for _, g := range groups {
		for _, m := range g.Methods {
			for _, p := range g.Precisions {
				for _, n := range g.Counts {
					if err := ctx.Err(); err != nil {
						return nil, err
					}
					rec, err := runCell(m, p, n, o.Seed, ref)
					if err != nil {
						return nil, fmt.Errorf("sweep: %s bits=%d count=%d: %w", m, p, n, err)
					}
					records = append(records, rec)
				}
			}
		}
	}
	logger.Info("sweep: done", zap.Int("records", len(records)))

	return records, nil
}

// runCell computes and scores one (method, precision, count) cell.
func runCell(m pi.Method, bits uint, count int, seed int64, ref string) (Record, error) {
	pctx, err := precision.New(bits)
	if err != nil {
		return Record{}, err
	}

	start := time.Now()
	x, err := pi.Compute(pctx, m, count, pi.WithSeed(seed))
	if err != nil {
		return Record{}, err
	}
	elapsed := time.Since(start)

	text := pctx.Text(x)
	correct, waste := digits.Compare(ref, text)
	logger.Debug("sweep: cell",
		zap.Stringer("method", m),
		zap.Uint("bits", bits),
		zap.Int("count", count),
		zap.Int("correct", correct),
		zap.Duration("walltime", elapsed),
	)

	return Record{
		Method:    m,
		Precision: bits,
		Count:     count,
		Correct:   correct,
		Waste:     waste,
		Walltime:  elapsed,
		Result:    text,
	}, nil
}
