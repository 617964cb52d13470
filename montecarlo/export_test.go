// SPDX-License-Identifier: MIT

package montecarlo

import (
	"math/big"

	"github.com/katalvlaran/lvpi/precision"
)

// Uniforms exposes the first n uniform draws of a seeded stream to tests.
func Uniforms(ctx *precision.Context, seed int64, n int) []*big.Float {
	s := newSampler(ctx, seed)
	out := make([]*big.Float, n)
	for i := range out {
		out[i] = s.uniform(ctx.NewFloat())
	}

	return out
}
