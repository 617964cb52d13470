// SPDX-License-Identifier: MIT

// Package native mirrors the arbitrary-precision algorithms with float64
// arithmetic, for the native build of the command line tool.
//
// The algorithms, validation and sentinel errors are the ones of the atan,
// machin, montecarlo and trapezoid packages; only the number type differs.
// Results are limited to roughly 16 significant digits.
package native
