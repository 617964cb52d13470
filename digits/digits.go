// SPDX-License-Identifier: MIT

package digits

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpi/machin"
	"github.com/katalvlaran/lvpi/precision"
)

// guardDigits are computed beyond the requested length and then truncated.
const guardDigits = 10

// MaxDigits bounds Reference to keep its cost predictable.
const MaxDigits = 1_000_000

// ErrBadLength indicates a requested reference length outside [0, MaxDigits].
var ErrBadLength = fmt.Errorf("digits: length must be in [0, MaxDigits]: %w", precision.ErrInvalidArgument)

// Compare scores result against reference.
//
// Rules:
//   - integer digits differ → (0, len(result)).
//   - result has no '.' in second position → (1, len(result)−1).
//   - otherwise correct counts the matching digits before the first
//     mismatch, and waste counts the result characters from the mismatch on.
func Compare(reference, result string) (correct, waste int) {
	if len(result) == 0 {
		return 0, 0
	}
	if len(reference) == 0 || reference[0] != result[0] {
		return 0, len(result)
	}
	if len(result) < 2 || result[1] != '.' {
		return 1, len(result) - 1
	}

	limit := min(len(reference), len(result))
	i := 2
	for i < limit && reference[i] == result[i] {
		i++
	}

	return i - 1, len(result) - i
}

// Reference returns pi truncated (not rounded) to n decimals.
func Reference(n int) (string, error) {
	if n < 0 || n > MaxDigits {
		return "", ErrBadLength
	}

	want := n + guardDigits
	bits := uint(math.Ceil(float64(want)*math.Log2(10))) + 64
	// 16·5^−(2k+1) < 10^−want
	terms := int(math.Ceil((float64(want)*math.Log2(10)+4)/(2*math.Log2(5)))) + 1

	ctx, err := precision.New(bits)
	if err != nil {
		return "", err
	}
	x, err := machin.PiClassic(ctx, terms)
	if err != nil {
		return "", err
	}
	s := x.Text('f', want)
	if n == 0 {
		return s[:1], nil
	}

	return s[:2+n], nil
}

// Score compares result against a freshly computed reference long enough to
// cover every digit of result.
func Score(result string) (correct, waste int, err error) {
	n := len(result) - 2
	if n < 0 {
		n = 0
	}
	ref, err := Reference(n)
	if err != nil {
		return 0, 0, err
	}
	correct, waste = Compare(ref, result)

	return correct, waste, nil
}
