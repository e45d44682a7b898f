// SPDX-License-Identifier: MIT
// Package: acnet/builder
//
// impl_ladder.go - Ladder(sections, r, c) constructor.
//
// Canonical model (RC low-pass ladder, open output):
//
//	Zₖ = Series(R, Parallel(C, Zₖ₊₁)),  Z_last = Series(R, Parallel(C))
//
//	in ──R──┬──R──┬── ... ──R──┬── out (open)
//	        C     C            C
//	        │     │            │
//	gnd ────┴─────┴──── ... ───┘
//
// Contract:
//   - sections ≥ MinLadderSections (else ErrParameterTooSmall).
//   - r, c finite and ≥ 0 (else ErrInvalidScale).
//   - Every section owns fresh components; nothing is shared.
//
// Complexity: O(sections) nodes; depth 2·sections.

package builder

import (
	"github.com/katalvlaran/acnet/network"
)

// Ladder returns a Constructor for an n-section RC ladder.
func Ladder(sections int, r, c float64) Constructor {
	return func(builderConfig) (network.Node, error) {
		if err := validateMin(MethodLadder, "sections", sections, MinLadderSections); err != nil {
			return nil, err
		}
		if err := validateScale(MethodLadder, "r", r); err != nil {
			return nil, err
		}
		if err := validateScale(MethodLadder, "c", c); err != nil {
			return nil, err
		}

		// Build from the open end towards the input.
		var tail network.Node
		for i := 0; i < sections; i++ {
			res, _ := network.NewResistor(r)
			capa, _ := network.NewCapacitor(c)
			shunt := network.NewParallel(capa)
			if tail != nil {
				shunt.Add(tail)
			}
			tail = network.NewSeries(res, shunt)
		}

		return tail, nil
	}
}
