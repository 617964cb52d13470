// SPDX-License-Identifier: MIT

// Package pi is the entry point consumed by the command line dispatcher: one
// operation per method name, each taking a Precision Context and a count.
//
// Methods:
//
//	mc    – Monte Carlo estimator (count = trials).
//	trap  – trapezoid integrator (count = subdivisions).
//	atan  – Classic Machin formula (count = terms per arctangent).
//	atan2 – Extended six-term Machin formula (count = terms per arctangent).
//
// The native float64 build supports mc, trap and atan.
//
// Usage:
//
//	m, err := pi.ParseMethod("atan")
//	ctx := precision.MustNew(256)
//	x, err := pi.Compute(ctx, m, 50)
//	fmt.Println(ctx.Text(x))
//
// Logging goes through a zap logger set with SetLogger; the default is a no-op.
package pi
