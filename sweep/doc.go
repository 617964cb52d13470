// SPDX-License-Identifier: MIT

// Package sweep runs every method over a grid of widths and counts, scores
// each result against a reference expansion of pi, and summarizes which
// width is needed to reach the best accuracy for each count.
//
// A sweep is sequential: cells run one after another in group order, and
// the context.Context is consulted between cells only, so cancellation
// never interrupts an algorithm midway.
//
// Output formats:
//
//	WriteCSV     – one row per cell:
//	               method,precision,count,correct_digits,waste_digits,walltime_ns
//	WriteSummary – one line per (method, count):
//	               method, iterations, precision, max_digits
package sweep
