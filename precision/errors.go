// SPDX-License-Identifier: MIT

package precision

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel exported by lvpi packages wraps exactly one of
// them, so callers can match either the precise sentinel or the kind:
//
//	errors.Is(err, atan.ErrZeroTerms)           // precise
//	errors.Is(err, precision.ErrInvalidArgument) // kind
var (
	// ErrInvalidArgument marks non-positive or malformed counts, invalid
	// reciprocal arguments and unrecognized method names.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrArithmeticDegenerate marks a zero trial/subdivision count that
	// would force a division by zero.
	ErrArithmeticDegenerate = errors.New("arithmetic degenerate")
)

// Sentinel errors of the precision package.
var (
	// ErrBadPrecision indicates a mantissa width outside [1, big.MaxPrec].
	ErrBadPrecision = fmt.Errorf("precision: bits must be in [1, MaxPrec]: %w", ErrInvalidArgument)

	// ErrPrecisionMismatch indicates a value whose width differs from the context.
	ErrPrecisionMismatch = fmt.Errorf("precision: value built under another context: %w", ErrInvalidArgument)

	// ErrNilContext indicates that a nil *Context was supplied.
	ErrNilContext = fmt.Errorf("precision: context is nil: %w", ErrInvalidArgument)
)
