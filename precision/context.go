// SPDX-License-Identifier: MIT

package precision

import (
	"math"
	"math/big"
)

// DefaultMode is the rounding mode applied by every Context.
const DefaultMode = big.ToNearestEven

// panicBadPrecision is the MustNew panic message.
const panicBadPrecision = "precision: MustNew: bits must be in [1, MaxPrec]"

// log10of2 converts a binary mantissa width into decimal digits.
var log10of2 = math.Log10(2)

// Context fixes the mantissa width and rounding mode of every value it builds.
// The zero value is not usable; construct with New or MustNew.
type Context struct {
	bits uint
	mode big.RoundingMode
}

// New returns a Context producing values with a bits-wide mantissa.
//
// Errors:
//   - ErrBadPrecision if bits == 0 or bits > big.MaxPrec.
//
// Complexity: O(1).
func New(bits uint) (*Context, error) {
	if bits == 0 || bits > big.MaxPrec {
		return nil, ErrBadPrecision
	}

	return &Context{bits: bits, mode: DefaultMode}, nil
}

// MustNew is like New but panics on an invalid width.
// Intended for constants in tests and examples.
func MustNew(bits uint) *Context {
	c, err := New(bits)
	if err != nil {
		panic(panicBadPrecision)
	}

	return c
}

// Bits returns the mantissa width in bits.
func (c *Context) Bits() uint { return c.bits }

// Mode returns the rounding mode.
func (c *Context) Mode() big.RoundingMode { return c.mode }

// DecimalDigits returns how many decimal fraction digits a value of this
// width can meaningfully carry: floor(bits·log10(2)).
func (c *Context) DecimalDigits() int {
	return int(float64(c.bits) * log10of2)
}

// NewFloat returns a zero value at the context width.
func (c *Context) NewFloat() *big.Float {
	return new(big.Float).SetPrec(c.bits).SetMode(c.mode)
}

// FromInt returns v rounded to the context width.
func (c *Context) FromInt(v int64) *big.Float {
	return c.NewFloat().SetInt64(v)
}

// FromUint returns v rounded to the context width.
func (c *Context) FromUint(v uint64) *big.Float {
	return c.NewFloat().SetUint64(v)
}

// Half returns the exact constant 0.5.
func (c *Context) Half() *big.Float {
	return c.NewFloat().SetFloat64(0.5)
}

// Reciprocal returns 1/b computed from the exact rational and rounded once.
// b must be non-zero; callers validate their own argument domain.
func (c *Context) Reciprocal(b int64) *big.Float {
	return c.NewFloat().SetRat(new(big.Rat).SetFrac64(1, b))
}

// MulInt sets z = x·k rounded to z's width and returns z.
// k is applied exactly regardless of the context width.
func (c *Context) MulInt(z, x *big.Float, k int64) *big.Float {
	return z.Mul(x, exactInt(k))
}

// QuoInt sets z = x/k rounded to z's width and returns z.
// k is applied exactly regardless of the context width; k must be non-zero.
func (c *Context) QuoInt(z, x *big.Float, k int64) *big.Float {
	return z.Quo(x, exactInt(k))
}

// AddInt sets z = x+k rounded to z's width and returns z.
func (c *Context) AddInt(z, x *big.Float, k int64) *big.Float {
	return z.Add(x, exactInt(k))
}

// Check reports ErrPrecisionMismatch if any of xs was not built at the
// context width. A nil entry is treated as a mismatch.
func (c *Context) Check(xs ...*big.Float) error {
	for _, x := range xs {
		if x == nil || x.Prec() != c.bits {
			return ErrPrecisionMismatch
		}
	}

	return nil
}

// Text renders x in fixed-point notation with DecimalDigits fraction digits.
func (c *Context) Text(x *big.Float) string {
	return x.Text('f', c.DecimalDigits())
}

// exactInt returns k as a 64-bit-mantissa float, which holds any int64 exactly.
func exactInt(k int64) *big.Float {
	return new(big.Float).SetInt64(k)
}
