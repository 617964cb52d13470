// SPDX-License-Identifier: MIT

// Package montecarlo estimates pi by sampling the square [−1, 1)² and counting
// the points that fall strictly inside the unit circle:
//
//	pi ≈ 4 · inside / trials
//
// Each coordinate is drawn as a uniform value u in [0, 1) carrying exactly
// bits random mantissa bits (an integer k in [0, 2^bits) scaled by 2^−bits),
// then mapped to 2u − 1.
//
// Determinism:
//
//	The stream is a PCG generator (math/rand/v2) seeded with DefaultSeed
//	unless WithSeed overrides it. PCG is fully specified, so identical
//	(trials, bits, seed) produce bit-identical results on every platform.
//	The stream is private to one Estimate call and never rewound.
//
// Accuracy:
//
//	The estimator error is O(1/√trials) and independent of the mantissa
//	width; StandardError gives the conservative one-sigma value 2/√trials.
//
// Errors:
//
//	ErrZeroTrials - trials < 1 (the estimate would divide by zero).
package montecarlo
