// SPDX-License-Identifier: MIT
// Package: acnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(kind, bopts, cons...). Creates the composite,
//     resolves cfg, runs cons in order and appends each result.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical trees.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/acnet/network"
)

// Constructor produces one owned node using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Return nodes that share nothing with any other live node.
//   - Preserve determinism for the same config and call order.
type Constructor func(cfg builderConfig) (network.Node, error)

// Build creates a composite of the given kind, resolves the builder
// configuration from bopts, and appends the node produced by each constructor
// in order. Any constructor error is wrapped with "Build: %w" and returned
// immediately; the partial composite is discarded.
//
// Errors:
//   - network.ErrUnknownKind when kind is not series/parallel.
//   - ErrConstructFailed for a nil constructor or a nil node.
//   - any constructor sentinel (ErrParameterTooSmall, ErrNeedRandSource, ...).
func Build(kind network.Kind, bopts []BuilderOption, cons ...Constructor) (network.Network, error) {
	nw, err := network.NewNetwork(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		n, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
		if n == nil {
			return nil, fmt.Errorf("%s: constructor %d returned nil: %w", MethodBuild, i, ErrConstructFailed)
		}
		nw.Add(n)
	}

	return nw, nil
}

// BuildNode resolves bopts and runs a single constructor.
func BuildNode(con Constructor, bopts ...BuilderOption) (network.Node, error) {
	if con == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuild, ErrConstructFailed)
	}

	return con(newBuilderConfig(bopts...))
}

// =============================================================================
// Constructors (declarations) - implemented in impl_*.go
// =============================================================================
//
// Leaf(kind, value)                      impl_leaf.go
// Ladder(sections, r, c)                 impl_ladder.go
// RandomNetwork(inv, depth, fanout)      impl_random_network.go
//
// Inventory generators (impl_inventory.go):
//
// RandomInventory(count, maxValue, maxOmega, opts...) (*network.Collection, float64, error)
// GenerateInventory(count, maxValue, maxOmega, opts...) (*network.Collection, float64, error)
