// SPDX-License-Identifier: MIT

package montecarlo

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/rand/v2"

	"github.com/katalvlaran/lvpi/precision"
)

// four scales the hit ratio to the square's area.
var four = big.NewRat(4, 1)

// Estimate returns 4·(inside/trials) at the width of ctx.
//
// Errors:
//   - ErrZeroTrials if trials < 1.
//   - precision.ErrNilContext if ctx is nil.
func Estimate(ctx *precision.Context, trials int, opts ...Option) (*big.Float, error) {
	inside, err := Count(ctx, trials, opts...)
	if err != nil {
		return nil, err
	}

	// 4·inside/trials is exact as a rational; round once
	q := new(big.Rat).SetFrac64(int64(inside), int64(trials))
	q.Mul(q, four)

	return ctx.NewFloat().SetRat(q), nil
}

// Count draws trials points and returns how many satisfy x² + y² < 1.
func Count(ctx *precision.Context, trials int, opts ...Option) (int, error) {
	if ctx == nil {
		return 0, precision.ErrNilContext
	}
	if trials < 1 {
		return 0, ErrZeroTrials
	}

	o := gatherOptions(opts)
	s := newSampler(ctx, o.Seed)
	one := ctx.FromInt(1)
	x, y := ctx.NewFloat(), ctx.NewFloat()

	inside := 0
	for i := 0; i < trials; i++ {
		s.coordinate(x)
		s.coordinate(y)
		x.Mul(x, x)
		y.Mul(y, y)
		x.Add(x, y)
		if x.Cmp(one) < 0 {
			inside++
		}
	}

	return inside, nil
}

// StandardError returns 2/√trials, the one-sigma error of Estimate under the
// worst-case Bernoulli variance 1/4. It returns +Inf for trials < 1.
func StandardError(trials int) float64 {
	if trials < 1 {
		return math.Inf(1)
	}

	return 4 * 0.5 / math.Sqrt(float64(trials))
}

// sampler turns a PCG stream into uniform values at a fixed width.
type sampler struct {
	ctx  *precision.Context
	rng  *rand.Rand
	buf  []byte
	mask byte
	k    big.Int
}

// newSampler seeds a private stream for one estimator call.
func newSampler(ctx *precision.Context, seed int64) *sampler {
	bits := ctx.Bits()
	nbytes := (bits + 7) / 8
	mask := byte(0xff)
	if rem := bits % 8; rem != 0 {
		mask = byte(1<<rem) - 1
	}

	return &sampler{
		ctx:  ctx,
		rng:  rand.New(rand.NewPCG(uint64(seed), pcgStream)),
		buf:  make([]byte, nbytes),
		mask: mask,
	}
}

// uniform sets z to k·2^−bits with k uniform in [0, 2^bits) and returns z.
// Bytes are taken big-endian from successive 64-bit outputs, so the value
// does not depend on the platform word size.
func (s *sampler) uniform(z *big.Float) *big.Float {
	var word [8]byte
	for off := 0; off < len(s.buf); off += 8 {
		binary.BigEndian.PutUint64(word[:], s.rng.Uint64())
		copy(s.buf[off:], word[:])
	}
	s.buf[0] &= s.mask
	s.k.SetBytes(s.buf)
	z.SetInt(&s.k)

	return z.SetMantExp(z, -int(s.ctx.Bits()))
}

// coordinate sets z to 2u − 1 for a fresh uniform u, a value in [−1, 1).
func (s *sampler) coordinate(z *big.Float) *big.Float {
	s.uniform(z)
	s.ctx.MulInt(z, z, 2)

	return s.ctx.AddInt(z, z, -1)
}
