// SPDX-License-Identifier: MIT

package native

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvpi/atan"
	"github.com/katalvlaran/lvpi/machin"
	"github.com/katalvlaran/lvpi/montecarlo"
	"github.com/katalvlaran/lvpi/trapezoid"
)

// pcgStream matches the second PCG seed word of package montecarlo.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// Atan returns the n-term partial sum of atan(1/b).
func Atan(b int64, n int) (float64, error) {
	if b <= 0 {
		return 0, atan.ErrBadArgument
	}
	if n < 1 {
		return 0, atan.ErrZeroTerms
	}
	if n > atan.MaxTerms {
		return 0, atan.ErrTooManyTerms
	}

	x := 1 / float64(b)
	sum, term := x, x
	mx2 := -x * x
	denom := 1.0
	for k := 1; k < n; k++ {
		term *= mx2
		denom += 2
		sum += term / denom
	}

	return sum, nil
}

// Machin returns the Classic formula 4·(4·atan(1/5) − atan(1/239)).
func Machin(n int) (float64, error) {
	return Compose(machin.Classic(), n)
}

// Compose evaluates a Machin-like formula with n terms per arctangent.
func Compose(f machin.Formula, n int) (float64, error) {
	if len(f.Terms) == 0 {
		return 0, machin.ErrEmptyFormula
	}
	if f.Scale == 0 {
		return 0, machin.ErrBadScale
	}

	acc := 0.0
	for _, t := range f.Terms {
		s, err := Atan(t.B, n)
		if err != nil {
			return 0, err
		}
		acc += float64(t.Coef) * s
	}

	return float64(f.Scale) * acc, nil
}

// MonteCarlo returns 4·(inside/trials) using float64 samples in [−1, 1)².
func MonteCarlo(trials int, seed int64) (float64, error) {
	if trials < 1 {
		return 0, montecarlo.ErrZeroTrials
	}

	rng := rand.New(rand.NewPCG(uint64(seed), pcgStream))
	inside := 0
	for i := 0; i < trials; i++ {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		if x*x+y*y < 1 {
			inside++
		}
	}

	return 4 * (float64(inside) / float64(trials)), nil
}

// Trapezoid returns the N-subdivision trapezoid approximation of pi.
func Trapezoid(n int) (float64, error) {
	if n < 1 {
		return 0, trapezoid.ErrZeroSubdivisions
	}

	total := 0.5
	for i := 1; i < n; i++ {
		x := float64(i) / float64(n)
		total += math.Sqrt(1 - x*x)
	}

	return 4 * total / float64(n), nil
}
