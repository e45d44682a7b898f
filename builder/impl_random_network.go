// SPDX-License-Identifier: MIT
// Package: acnet/builder
//
// impl_random_network.go - RandomNetwork(inv, depth, fanout) constructor.
//
// Canonical model:
//   - Each composite is Series or Parallel with equal probability and has
//     1..fanout children.
//   - While depth allows, a child is a nested composite with probability
//     nestProbability; otherwise it is a clone of a uniformly chosen
//     inventory entry (Collection.SelectAndClone).
//
// Contract:
//   - depth ≥ MinNetworkDepth, fanout ≥ MinFanout (else ErrParameterTooSmall).
//   - inv non-nil and non-empty (else ErrEmptyInventory).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - The produced tree shares no node with inv.
//
// Complexity: O(fanout^depth) nodes in the worst case.
//
// Determinism:
//   - Draw order per composite: kind, child count, then per child
//     (nest?, index). Fixed seed + fixed inventory ⇒ identical tree.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/acnet/network"
)

// RandomNetwork returns a Constructor for a random nested network whose
// leaves are clones of inventory entries.
func RandomNetwork(inv *network.Collection, depth, fanout int) Constructor {
	return func(cfg builderConfig) (network.Node, error) {
		if err := validateMin(MethodRandomNetwork, "depth", depth, MinNetworkDepth); err != nil {
			return nil, err
		}
		if err := validateMin(MethodRandomNetwork, "fanout", fanout, MinFanout); err != nil {
			return nil, err
		}
		if inv == nil || inv.Len() == 0 {
			return nil, fmt.Errorf("%s: %w", MethodRandomNetwork, ErrEmptyInventory)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomNetwork, ErrNeedRandSource)
		}

		// Snapshot the size once; a concurrently growing inventory only adds
		// indices, so every drawn index stays valid.
		return randomTree(cfg.rng, inv, inv.Len(), depth, fanout)
	}
}

func randomTree(rng *rand.Rand, inv *network.Collection, size, depth, fanout int) (network.Node, error) {
	kind := network.KindSeries
	if rng.Intn(2) == 1 {
		kind = network.KindParallel
	}
	k := 1 + rng.Intn(fanout)

	children := make([]network.Node, 0, k)
	for i := 0; i < k; i++ {
		if depth > MinNetworkDepth && rng.Float64() < nestProbability {
			sub, err := randomTree(rng, inv, size, depth-1, fanout)
			if err != nil {
				return nil, err
			}
			children = append(children, sub)
			continue
		}
		picked, err := inv.SelectAndClone(1 + rng.Intn(size))
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", MethodRandomNetwork, ErrConstructFailed, err)
		}
		children = append(children, picked[0])
	}

	nw, err := network.NewNetwork(kind, children...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodRandomNetwork, ErrConstructFailed, err)
	}

	return nw, nil
}
