// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// api.go - kind-driven factories for shells that pick variants at runtime.

package network

import "fmt"

// NewComponent builds a leaf of the given kind with characteristic value.
//
// Returns:
//   - the component (always non-nil when err == nil),
//   - a non-nil *Warning when value was clamped to 0,
//   - ErrUnknownKind when kind is not a component kind.
func NewComponent(kind Kind, value float64) (Component, *Warning, error) {
	switch kind {
	case KindResistor:
		r, w := NewResistor(value)
		return r, w, nil
	case KindCapacitor:
		c, w := NewCapacitor(value)
		return c, w, nil
	case KindInductor:
		l, w := NewInductor(value)
		return l, w, nil
	}

	return nil, nil, fmt.Errorf("NewComponent(%s): %w", kind, ErrUnknownKind)
}

// NewNetwork builds a composite of the given kind owning children.
// ErrUnknownKind is returned when kind is not a network kind.
func NewNetwork(kind Kind, children ...Node) (Network, error) {
	switch kind {
	case KindSeries:
		return NewSeries(children...), nil
	case KindParallel:
		return NewParallel(children...), nil
	}

	return nil, fmt.Errorf("NewNetwork(%s): %w", kind, ErrUnknownKind)
}
