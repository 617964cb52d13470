// SPDX-License-Identifier: MIT

package native_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpi/atan"
	"github.com/katalvlaran/lvpi/machin"
	"github.com/katalvlaran/lvpi/montecarlo"
	"github.com/katalvlaran/lvpi/native"
	"github.com/katalvlaran/lvpi/precision"
	"github.com/katalvlaran/lvpi/trapezoid"
)

// TestNative_Validation shares sentinels with the arbitrary-precision packages.
func TestNative_Validation(t *testing.T) {
	_, err := native.Atan(0, 3)
	assert.ErrorIs(t, err, atan.ErrBadArgument)
	_, err = native.Machin(0)
	assert.ErrorIs(t, err, atan.ErrZeroTerms)
	_, err = native.Atan(5, atan.MaxTerms+1)
	assert.ErrorIs(t, err, atan.ErrTooManyTerms)
	_, err = native.MonteCarlo(0, montecarlo.DefaultSeed)
	assert.ErrorIs(t, err, precision.ErrArithmeticDegenerate)
	_, err = native.Trapezoid(0)
	assert.ErrorIs(t, err, trapezoid.ErrZeroSubdivisions)
	_, err = native.Compose(machin.Formula{Scale: 4}, 3)
	assert.ErrorIs(t, err, machin.ErrEmptyFormula)
}

// TestNative_Atan matches math.Atan once the series has converged.
func TestNative_Atan(t *testing.T) {
	got, err := native.Atan(5, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.2, got)

	got, err = native.Atan(5, 30)
	require.NoError(t, err)
	assert.InDelta(t, math.Atan(0.2), got, 1e-16)
}

// TestNative_Machin reaches float64 accuracy.
func TestNative_Machin(t *testing.T) {
	got, err := native.Machin(12)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got, 4e-15)

	got, err = native.Compose(machin.Extended(), 4)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got, 4e-15)
}

// TestNative_Trapezoid mirrors the exact degenerate case and closed forms.
func TestNative_Trapezoid(t *testing.T) {
	got, err := native.Trapezoid(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = native.Trapezoid(2)
	require.NoError(t, err)
	assert.InDelta(t, 1+math.Sqrt(3), got, 1e-15)
}

// TestNative_MonteCarlo is deterministic and roughly right.
func TestNative_MonteCarlo(t *testing.T) {
	a, err := native.MonteCarlo(10000, montecarlo.DefaultSeed)
	require.NoError(t, err)
	b, err := native.MonteCarlo(10000, montecarlo.DefaultSeed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.InDelta(t, math.Pi, a, 4*montecarlo.StandardError(10000))
}
