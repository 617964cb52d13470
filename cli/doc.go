// SPDX-License-Identifier: MIT

// Package cli implements the command line dispatchers of lvpi on top of
// cobra.
//
// Arbitrary-precision build:
//
//	pi <method> <precision_bits> <count>      method ∈ {mc, trap, atan, atan2}
//	pi digits [file|-]                        score a result against pi
//	pi sweep [--summary] [--plot file.png]    run the configured grid
//	pi version
//
// Native build:
//
//	pi-native <method> <count>                method ∈ {mc, trap, atan}
//
// A successful computation prints exactly one fixed-point line on stdout.
// Usage text and diagnostics go to stderr. Exit codes:
//
//	0 success
//	1 wrong argument count, malformed number or failed computation
//	2 unrecognized method name
package cli
