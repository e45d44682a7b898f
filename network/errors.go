// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// errors.go - sentinel errors and the non-fatal clamp Warning.
//
// Error policy:
//   - Only sentinels are exported; callers branch with errors.Is.
//   - Implementations add method context with %w ("Parallel: child 2: ...").
//   - Nothing in this package panics at runtime.

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateImpedance indicates the impedance is undefined at the
	// requested frequency: division by zero or a non-finite result.
	ErrDegenerateImpedance = errors.New("network: degenerate impedance")

	// ErrEmptyNetwork indicates a Parallel network with no children.
	// It is always reported together with ErrDegenerateImpedance.
	ErrEmptyNetwork = errors.New("network: empty parallel network")

	// ErrIndexOutOfRange indicates a Collection index outside [1, Len].
	ErrIndexOutOfRange = errors.New("network: index out of range")

	// ErrUnknownKind indicates a Kind that is not valid for the operation.
	ErrUnknownKind = errors.New("network: unknown kind")

	// ErrNilNode indicates a nil Node where an owned node is required.
	ErrNilNode = errors.New("network: nil node")

	// ErrNegativeValue is the sentinel wrapped by *Warning.
	ErrNegativeValue = errors.New("network: characteristic must be non-negative")
)

// Warning reports that a component characteristic was clamped to zero.
// It is informational: the component it accompanies is fully constructed.
type Warning struct {
	// Kind of the component that received the value.
	Kind Kind
	// Given is the rejected input.
	Given float64
	// Applied is the value actually stored (always 0).
	Applied float64
}

// Error implements error so a Warning can travel through error plumbing.
func (w *Warning) Error() string {
	return fmt.Sprintf("%s: %s value %g rejected; %g assigned",
		ErrNegativeValue, w.Kind, w.Given, w.Applied)
}

// Unwrap exposes ErrNegativeValue to errors.Is.
func (w *Warning) Unwrap() error { return ErrNegativeValue }

// degeneratef wraps ErrDegenerateImpedance with method context.
func degeneratef(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrDegenerateImpedance)
}

// errEmptyParallel is returned for a Parallel without children; it matches
// both ErrEmptyNetwork and ErrDegenerateImpedance.
var errEmptyParallel = fmt.Errorf("Parallel: %w: %w", ErrEmptyNetwork, ErrDegenerateImpedance)

// wrapChild prefixes a child's error with the parent method and position.
func wrapChild(method string, i int, err error) error {
	return fmt.Errorf("%s: child %d: %w", method, i, err)
}
