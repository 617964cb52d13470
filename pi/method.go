// SPDX-License-Identifier: MIT

package pi

import (
	"fmt"

	"github.com/katalvlaran/lvpi/precision"
)

// ErrUnknownMethod indicates an unrecognized method name.
var ErrUnknownMethod = fmt.Errorf("pi: unknown method: %w", precision.ErrInvalidArgument)

// Method names one approximation algorithm.
type Method string

// Supported methods.
const (
	MonteCarlo Method = "mc"
	Trapezoid  Method = "trap"
	Atan       Method = "atan"
	Atan2      Method = "atan2"
)

// methods lists every arbitrary-precision method in display order.
var methods = []Method{MonteCarlo, Trapezoid, Atan, Atan2}

// nativeMethods lists the methods of the float64 build.
var nativeMethods = []Method{MonteCarlo, Trapezoid, Atan}

// Methods returns the arbitrary-precision method names.
func Methods() []Method {
	return append([]Method(nil), methods...)
}

// NativeMethods returns the float64 method names.
func NativeMethods() []Method {
	return append([]Method(nil), nativeMethods...)
}

// ParseMethod maps a name to a Method.
func ParseMethod(name string) (Method, error) {
	for _, m := range methods {
		if string(m) == name {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// ParseNativeMethod maps a name to a Method supported by the float64 build.
func ParseNativeMethod(name string) (Method, error) {
	m, err := ParseMethod(name)
	if err != nil {
		return "", err
	}
	if !m.Native() {
		return "", fmt.Errorf("%w: %q has no native build", ErrUnknownMethod, name)
	}

	return m, nil
}

// Native reports whether m has a float64 implementation.
func (m Method) Native() bool {
	for _, n := range nativeMethods {
		if n == m {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (m Method) String() string { return string(m) }
