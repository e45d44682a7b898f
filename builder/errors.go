// SPDX-License-Identifier: MIT
// Package: acnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` ("Ladder: sections=0 < min=1: ...").
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrParameterTooSmall indicates that a numeric parameter (count, sections,
// depth, fanout) is smaller than the allowed minimum.
// Usage: if errors.Is(err, ErrParameterTooSmall) { /* report invalid size */ }.
var ErrParameterTooSmall = errors.New("builder: parameter too small")

// ErrInvalidScale indicates a value or frequency scale that is negative,
// NaN or infinite.
var ErrInvalidScale = errors.New("builder: scale must be finite and non-negative")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptyInventory indicates RandomNetwork was given a nil or empty collection.
var ErrEmptyInventory = errors.New("builder: inventory is empty")

// ErrConstructFailed indicates that a constructor could not produce a node
// (nil constructor, nil result, or an underlying network error).
var ErrConstructFailed = errors.New("builder: construction failed")
