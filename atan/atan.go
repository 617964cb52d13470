// SPDX-License-Identifier: MIT

package atan

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lvpi/precision"
)

// Sentinel errors for arctangent evaluation.
var (
	// ErrBadArgument indicates a non-positive reciprocal argument b.
	ErrBadArgument = fmt.Errorf("atan: reciprocal argument must be > 0: %w", precision.ErrInvalidArgument)

	// ErrZeroTerms indicates a term count below one.
	ErrZeroTerms = fmt.Errorf("atan: term count must be >= 1: %w", precision.ErrInvalidArgument)

	// ErrTooManyTerms indicates a term count above MaxTerms.
	ErrTooManyTerms = fmt.Errorf("atan: term count must be <= MaxTerms: %w", precision.ErrInvalidArgument)
)

// MaxTerms is the largest term count whose last denominator 2n+1 fits in an int.
const MaxTerms = math.MaxInt / 2

// Series returns the n-term partial sum of atan(1/b) at the width of ctx.
//
// Algorithm:
//  1. x = 1/b, rounded once at full width.
//  2. sum = term = x, denom = 1, mx2 = −x².
//  3. Repeat n−1 times: term *= mx2; denom += 2; sum += term/denom.
//
// With n == 1 the result is exactly x.
func Series(ctx *precision.Context, b int64, n int) (*big.Float, error) {
	if err := validate(ctx, b, n); err != nil {
		return nil, err
	}

	x := ctx.Reciprocal(b)
	sum := ctx.NewFloat().Set(x)
	term := ctx.NewFloat().Set(x)
	mx2 := ctx.NewFloat().Mul(x, x)
	mx2.Neg(mx2)
	tmp := ctx.NewFloat()

	var denom int64 = 1
	for k := 1; k < n; k++ {
		term.Mul(term, mx2)
		denom += 2
		ctx.QuoInt(tmp, term, denom)
		sum.Add(sum, tmp)
	}

	return sum, nil
}

// TruncationBound returns |x|^(2n+1)/(2n+1), the magnitude of the first term
// omitted by Series(ctx, b, n). For an alternating series with decreasing
// terms it bounds the truncation error.
func TruncationBound(ctx *precision.Context, b int64, n int) (*big.Float, error) {
	if err := validate(ctx, b, n); err != nil {
		return nil, err
	}

	x := ctx.Reciprocal(b)
	pow := ctx.FromInt(1)
	// square-and-multiply on the exponent 2n+1
	base := ctx.NewFloat().Set(x)
	for e := uint64(2*n + 1); e > 0; e >>= 1 {
		if e&1 == 1 {
			pow.Mul(pow, base)
		}
		base.Mul(base, base)
	}

	return ctx.QuoInt(pow, pow, int64(2*n+1)), nil
}

// validate checks the shared preconditions of Series and TruncationBound.
func validate(ctx *precision.Context, b int64, n int) error {
	if ctx == nil {
		return precision.ErrNilContext
	}
	if b <= 0 {
		return ErrBadArgument
	}
	if n < 1 {
		return ErrZeroTerms
	}
	if n > MaxTerms {
		return ErrTooManyTerms
	}

	return nil
}
