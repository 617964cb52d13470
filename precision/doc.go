// SPDX-License-Identifier: MIT

// Package precision holds the Precision Context shared by every
// arbitrary-precision computation in lvpi.
//
// A Context fixes the mantissa width (in bits) and the rounding mode of
// every *big.Float it constructs. It is created once, before a computation
// starts, and is read-only afterwards: there are no setters, so a value
// built from a Context always carries the same width as every other value
// built from it.
//
// Usage:
//
//	ctx, err := precision.New(256)
//	if err != nil {
//	    return err
//	}
//	x := ctx.Reciprocal(5) // 1/5 rounded once at 256 bits
//	fmt.Println(ctx.Text(x))
//
// Invariant:
//
//	All values participating in one computation must be created by the
//	same Context. Check reports ErrPrecisionMismatch when they are not;
//	the algorithms do not call it inside their loops.
//
// Integer operands (term denominators, Machin coefficients, trial counts)
// are applied exactly through MulInt, QuoInt and AddInt; only the result is
// rounded to the context width.
//
// Errors:
//
//	ErrInvalidArgument      - error kind: non-positive or malformed input.
//	ErrArithmeticDegenerate - error kind: input that forces a division by zero.
//	ErrBadPrecision         - bits outside [1, big.MaxPrec].
//	ErrPrecisionMismatch    - a value was built at another width.
//	ErrNilContext           - a nil *Context was passed to an algorithm.
package precision
