// SPDX-License-Identifier: MIT
// Package: acnet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no hidden globals except the
//     frequency target, which defaults to network.SharedFrequency().
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng           = nil                  (stochastic generators demand a seed)
//   • kinds         = inductor, resistor, capacitor
//   • reactiveScale = DefaultReactiveScale (1e-6)
//   • target        = network.SharedFrequency()

package builder

import (
	"math/rand"

	"github.com/katalvlaran/acnet/network"
)

// builderConfig aggregates all knobs used by generators and constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Component kinds RandomInventory may draw, in draw-index order.
	kinds []network.Kind
	// Divisor applied to drawn capacitor/inductor values.
	reactiveScale float64
	// Frequency written by GenerateInventory.
	target *network.Frequency
}

// defaultKinds fixes the draw order used when WithKinds is absent
// (0 → inductor, 1 → resistor, 2 → capacitor).
var defaultKinds = []network.Kind{network.KindInductor, network.KindResistor, network.KindCapacitor}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:           nil,
		kinds:         defaultKinds,
		reactiveScale: DefaultReactiveScale,
		target:        network.SharedFrequency(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
