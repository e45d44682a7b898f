// Package builder provides reusable "functional-options"-style generators for
// network inventories and canonical network shapes. It lives alongside the
// network package to centralise random sampling, scaling and validation,
// keeping callers (CLI, tests, examples) short and deterministic.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, allowed kinds, reactive scale and the
//     frequency target written by GenerateInventory.
//   - Inventory generators:
//     – RandomInventory:   count random leaves plus a random ω (pure).
//     – GenerateInventory: RandomInventory, then stores ω in the target Frequency.
//   - Network constructors (Constructor closures, composed by Build):
//     – Ladder:            n-section RC low-pass ladder.
//     – RandomNetwork:     nested random series/parallel tree cloned from an inventory.
//     – Leaf:              a single component.
//   - Validation helpers:
//     – validateMin:       ensure integer ≥ minimum.
//     – validateScale:     ensure a finite, non-negative real.
//
// Guarantees:
//
//   - Determinism: same seed, options and call order ⇒ identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping package sentinels for errors.Is.
//   - Generated networks never alias inventory entries (clone-on-insert).
package builder
