// SPDX-License-Identifier: MIT
// Package: acnet/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/acnet/network"
)

// BuilderOption customizes generator behavior by mutating a builderConfig
// instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithKinds restricts RandomInventory to the given component kinds.
// Panics if kinds is empty or names a non-component kind.
func WithKinds(kinds ...network.Kind) BuilderOption {
	if len(kinds) == 0 {
		panic("builder: WithKinds()")
	}
	for _, k := range kinds {
		if !k.IsComponent() {
			panic("builder: WithKinds(" + k.String() + ")")
		}
	}
	// Copy so later mutation of the caller's slice cannot leak in.
	own := append([]network.Kind(nil), kinds...)

	return func(c *builderConfig) {
		c.kinds = own
	}
}

// WithReactiveScale sets the multiplier applied to drawn capacitor and
// inductor values. Panics if s is not finite and > 0.
func WithReactiveScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithReactiveScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.reactiveScale = s
	}
}

// WithFrequencyTarget makes GenerateInventory write ω into f instead of the
// process-wide shared frequency. Panics on nil.
func WithFrequencyTarget(f *network.Frequency) BuilderOption {
	if f == nil {
		panic("builder: WithFrequencyTarget(nil)")
	}
	return func(c *builderConfig) {
		c.target = f
	}
}
