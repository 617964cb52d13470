// SPDX-License-Identifier: MIT

// Package trapezoid approximates pi by integrating the quarter circle
// f(x) = √(1 − x²) over [0, 1] with the composite trapezoid rule:
//
//	pi ≈ 4·δ·( ½·(f(0) + f(1)) + Σ_{i=1}^{N−1} f(i·δ) ),  δ = 1/N
//
// f(0) = 1 and f(1) = 0, so the boundary contribution is the exact constant
// ½; f(1) is never evaluated. With N = 1 the interior sum is empty and the
// result is exactly 2.
//
// Every node x_i = i/N is rounded once from the exact ratio, and every
// square root is taken at the full context width.
//
// Convergence:
//
//	f′ is unbounded at x = 1, so the error decays like N^(−3/2) rather than
//	the N^(−2) of smooth integrands: ten times more subdivisions buy about
//	a factor of 31.6.
//
// Errors:
//
//	ErrZeroSubdivisions - N < 1 (δ = 1/N would divide by zero).
package trapezoid
