// SPDX-License-Identifier: MIT

// Package digits scores a decimal rendering of a pi approximation against a
// reference expansion.
//
// Compare counts the leading digits of a result that agree with the
// reference (the decimal point is not a digit) and the "waste" digits that
// follow the first disagreement. Reference produces the reference expansion
// itself, using the Classic Machin formula with guard digits.
//
// Example:
//
//	ref, _ := digits.Reference(30)
//	correct, waste := digits.Compare(ref, "3.14159265358979169691727961962")
//	// correct == 15, waste == 15
package digits
