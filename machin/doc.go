// SPDX-License-Identifier: MIT

// Package machin assembles pi from integer linear combinations of arctangent
// partial sums (Machin-like formulas).
//
// Two formulas are provided:
//
//	Classic:  pi = 4·(4·atan(1/5) − atan(1/239))
//	Extended: pi = 4·(183·atan(1/239) + 32·atan(1/1023) − 68·atan(1/5832)
//	                 + 12·atan(1/110443) − 12·atan(1/4841182) − 100·atan(1/6826318))
//
// Every term is evaluated independently with the same term count n, even
// though the arguments converge at very different rates. Overall accuracy is
// therefore bounded by the slowest term (Formula.Dominant): 1/5 for Classic,
// 1/239 for Extended. The shared count is part of the interface.
//
// Composition multiplies each partial sum by its integer coefficient exactly
// and rounds only to the context width; no other rounding is introduced.
//
// Errors:
//
//	ErrEmptyFormula - a Formula without terms.
//	ErrBadScale     - a Formula whose Scale is zero.
//	atan.ErrBadArgument / atan.ErrZeroTerms - propagated from a term.
package machin
