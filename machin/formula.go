// SPDX-License-Identifier: MIT

package machin

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpi/atan"
	"github.com/katalvlaran/lvpi/precision"
)

// Sentinel errors for formula composition.
var (
	// ErrEmptyFormula indicates a Formula with no terms.
	ErrEmptyFormula = fmt.Errorf("machin: formula has no terms: %w", precision.ErrInvalidArgument)

	// ErrBadScale indicates a Formula with a zero outer scale.
	ErrBadScale = fmt.Errorf("machin: formula scale must be non-zero: %w", precision.ErrInvalidArgument)
)

// logger is the package logger; default is a no-op.
var logger = zap.NewNop()

// SetLogger changes the zap logger used by this package. nil is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Term is one Coef·atan(1/B) summand. The sign is folded into Coef.
type Term struct {
	B    int64
	Coef int64
}

// Formula is Scale·Σ Coef_i·atan(1/B_i).
type Formula struct {
	Name  string
	Scale int64
	Terms []Term
}

// classic is Machin's 1706 formula, pi/4 = 4·atan(1/5) − atan(1/239).
var classic = Formula{
	Name:  "classic",
	Scale: 4,
	Terms: []Term{
		{B: 5, Coef: 4},
		{B: 239, Coef: -1},
	},
}

// extended is the six-term formula
// pi/4 = 183·atan(1/239) + 32·atan(1/1023) − 68·atan(1/5832)
// + 12·atan(1/110443) − 12·atan(1/4841182) − 100·atan(1/6826318).
var extended = Formula{
	Name:  "extended",
	Scale: 4,
	Terms: []Term{
		{B: 239, Coef: 183},
		{B: 1023, Coef: 32},
		{B: 5832, Coef: -68},
		{B: 110443, Coef: 12},
		{B: 4841182, Coef: -12},
		{B: 6826318, Coef: -100},
	},
}

// Classic returns a copy of Machin's formula
// pi = 4·(4·atan(1/5) − atan(1/239)).
func Classic() Formula { return classic.Clone() }

// Extended returns a copy of the six-term formula.
func Extended() Formula { return extended.Clone() }

// Clone returns a deep copy of f, safe to modify.
func (f Formula) Clone() Formula {
	terms := make([]Term, len(f.Terms))
	copy(terms, f.Terms)
	f.Terms = terms

	return f
}

// Dominant returns the slowest-converging term, the one with the smallest B.
// It bounds the accuracy of Compose for a shared term count.
// The zero Term is returned for an empty formula.
func (f Formula) Dominant() Term {
	var dom Term
	for i, t := range f.Terms {
		if i == 0 || t.B < dom.B {
			dom = t
		}
	}

	return dom
}

// Compose evaluates f with n terms per arctangent at the width of ctx.
//
// Each term gets a fresh atan.Series call with the same n. Partial sums are
// multiplied by their integer coefficient and accumulated in order; the sum
// is finally multiplied by f.Scale.
func Compose(ctx *precision.Context, f Formula, n int) (*big.Float, error) {
	if ctx == nil {
		return nil, precision.ErrNilContext
	}
	if len(f.Terms) == 0 {
		return nil, ErrEmptyFormula
	}
	if f.Scale == 0 {
		return nil, ErrBadScale
	}

	acc := ctx.NewFloat()
	tmp := ctx.NewFloat()
	for _, t := range f.Terms {
		s, err := atan.Series(ctx, t.B, n)
		if err != nil {
			return nil, err
		}
		ctx.MulInt(tmp, s, t.Coef)
		acc.Add(acc, tmp)
	}
	ctx.MulInt(acc, acc, f.Scale)

	logger.Debug("machin: composed",
		zap.String("formula", f.Name),
		zap.Int("terms", n),
		zap.Uint("bits", ctx.Bits()),
	)

	return acc, nil
}

// PiClassic approximates pi with the Classic formula and n terms per arctangent.
func PiClassic(ctx *precision.Context, n int) (*big.Float, error) {
	return Compose(ctx, classic, n)
}

// PiExtended approximates pi with the Extended formula and n terms per arctangent.
func PiExtended(ctx *precision.Context, n int) (*big.Float, error) {
	return Compose(ctx, extended, n)
}
