// SPDX-License-Identifier: MIT

// Package atan evaluates truncated Taylor partial sums of the arctangent at
// reciprocal-integer arguments x = 1/b:
//
//	S_n = Σ_{k=0}^{n-1} (−1)^k · x^(2k+1) / (2k+1)
//
// The series is evaluated with a single recurrence: the signed power term is
// multiplied by the precomputed negative square −x², and the odd denominator
// grows by two per step. The first term (x itself) is always included; the
// loop contributes the remaining n−1 terms.
//
// There is no convergence-driven exit. The caller picks n; larger b
// converges faster because each term shrinks by a factor of b².
//
// Complexity:
//
//	Time:  O(n) multiplications/divisions at the context width.
//	Space: O(1) scratch values, owned by one call.
//
// Errors:
//
//	ErrBadArgument - b ≤ 0 (x = 1/b must lie in (0, 1]).
//	ErrZeroTerms   - n < 1.
//	precision.ErrNilContext - ctx is nil.
package atan
