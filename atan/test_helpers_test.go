// SPDX-License-Identifier: MIT

package atan_test

import (
	"math/big"

	"github.com/katalvlaran/lvpi/atan"
	"github.com/katalvlaran/lvpi/precision"
)

// Pi100 is pi to 100 decimals, used as an external reference.
const Pi100 = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

// Common widths used across atan tests.
const (
	Bits64  = 64
	Bits256 = 256
	Bits512 = 512
)

// Reciprocal arguments used across atan tests.
const (
	B1   = 1
	B5   = 5
	B239 = 239
)

// reference returns atan(1/b) to far more accuracy than any tested partial sum.
func reference(b int64) *big.Float {
	ctx := precision.MustNew(Bits512)
	if b == 1 {
		pi, _, _ := big.ParseFloat(Pi100, 10, Bits512, big.ToNearestEven)
		return ctx.QuoInt(ctx.NewFloat(), pi, 4)
	}
	// b ≥ 2 converges at least like 4^-k; 300 terms exceed 512 bits
	ref, err := atan.Series(ctx, b, 300)
	if err != nil {
		panic(err)
	}
	return ref
}

// absDiff returns |a − b| at 512 bits.
func absDiff(a, b *big.Float) *big.Float {
	d := new(big.Float).SetPrec(Bits512).Sub(a, b)
	return d.Abs(d)
}
