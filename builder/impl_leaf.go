// SPDX-License-Identifier: MIT
// Package: acnet/builder
//
// impl_leaf.go - Leaf(kind, value) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/acnet/network"
)

// Leaf returns a Constructor producing a single component. Unlike
// network.NewComponent, a negative value is rejected (ErrInvalidScale)
// rather than clamped: builders do not emit silently altered parts.
func Leaf(kind network.Kind, value float64) Constructor {
	return func(builderConfig) (network.Node, error) {
		if err := validateScale(MethodLeaf, "value", value); err != nil {
			return nil, err
		}
		c, _, err := network.NewComponent(kind, value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodLeaf, err)
		}

		return c, nil
	}
}
