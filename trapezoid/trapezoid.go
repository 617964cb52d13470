// SPDX-License-Identifier: MIT

package trapezoid

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpi/precision"
)

// ErrZeroSubdivisions indicates a subdivision count below one.
var ErrZeroSubdivisions = fmt.Errorf("trapezoid: subdivision count must be >= 1: %w", precision.ErrArithmeticDegenerate)

// Integrate returns the N-subdivision trapezoid approximation of pi at the
// width of ctx.
//
// Algorithm:
//  1. sum = ½ (boundary terms, exact).
//  2. For i = 1..N−1: x = i/N; sum += √(1 − x²).
//  3. Return 4·sum/N.
//
// Complexity: O(N) square roots at the context width.
func Integrate(ctx *precision.Context, n int) (*big.Float, error) {
	if ctx == nil {
		return nil, precision.ErrNilContext
	}
	if n < 1 {
		return nil, ErrZeroSubdivisions
	}

	sum := ctx.Half()
	x, y := ctx.NewFloat(), ctx.NewFloat()
	var node big.Rat
	for i := 1; i < n; i++ {
		x.SetRat(node.SetFrac64(int64(i), int64(n)))
		quarterCircle(ctx, y, x)
		sum.Add(sum, y)
	}

	ctx.QuoInt(sum, sum, int64(n))

	return ctx.MulInt(sum, sum, 4), nil
}

// quarterCircle sets y = √(1 − x²) and returns y. x must lie in [0, 1].
func quarterCircle(ctx *precision.Context, y, x *big.Float) *big.Float {
	y.Mul(x, x)
	y.Neg(y)
	ctx.AddInt(y, y, 1)

	return y.Sqrt(y)
}
