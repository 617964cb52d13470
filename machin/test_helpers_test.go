// SPDX-License-Identifier: MIT

package machin_test

import (
	"math/big"

	"github.com/katalvlaran/lvpi/atan"
	"github.com/katalvlaran/lvpi/precision"
)

// Pi100 is pi to 100 decimals, used as an external reference.
const Pi100 = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

// Widths used across machin tests.
const (
	Bits64  = 64
	Bits200 = 200
	Bits256 = 256
	Bits512 = 512
)

// refPi returns Pi100 at 512 bits.
func refPi() *big.Float {
	pi, _, err := big.ParseFloat(Pi100, 10, Bits512, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return pi
}

// absErr returns |x − pi| at 512 bits.
func absErr(x *big.Float) *big.Float {
	d := new(big.Float).SetPrec(Bits512).Sub(x, refPi())
	return d.Abs(d)
}

// scaledBound returns |scale·coef|·TruncationBound(b, n) at 512 bits.
func scaledBound(b, coef, scale int64, n int) *big.Float {
	ctx := precision.MustNew(Bits512)
	bound, err := atan.TruncationBound(ctx, b, n)
	if err != nil {
		panic(err)
	}
	k := coef * scale
	if k < 0 {
		k = -k
	}
	return ctx.MulInt(bound, bound, k)
}

// ratio returns a/b as a float64.
func ratio(a, b *big.Float) float64 {
	r, _ := new(big.Float).SetPrec(Bits64).Quo(a, b).Float64()
	return r
}
