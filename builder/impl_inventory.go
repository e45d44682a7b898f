// SPDX-License-Identifier: MIT
// Package: acnet/builder
//
// impl_inventory.go - random component inventories.
//
// Canonical model:
//   - For i in 0..count-1: kind = kinds[rng.Intn(len(kinds))],
//     v = maxValue · U[0,1); reactive kinds are multiplied by reactiveScale.
//   - After the list is drawn: ω = maxOmega · U[0,1).
//
// Contract:
//   - count ≥ MinInventorySize (else ErrParameterTooSmall).
//   - maxValue, maxOmega finite and ≥ 0 (else ErrInvalidScale).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity: O(count) time and space.
//
// Determinism:
//   - Draw order is fixed (kind, value per item; then ω), so a seed fully
//     determines the inventory and the frequency.

package builder

import (
	"fmt"

	"github.com/katalvlaran/acnet/network"
)

// RandomInventory draws count random components and a random angular
// frequency. It is pure: nothing outside the returned values is touched.
func RandomInventory(count int, maxValue, maxOmega float64, opts ...BuilderOption) (*network.Collection, float64, error) {
	cfg := newBuilderConfig(opts...)

	return randomInventory(MethodRandomInventory, cfg, count, maxValue, maxOmega)
}

// GenerateInventory is RandomInventory followed by storing ω into the
// configured frequency target (the shared frequency unless
// WithFrequencyTarget is given).
func GenerateInventory(count int, maxValue, maxOmega float64, opts ...BuilderOption) (*network.Collection, float64, error) {
	cfg := newBuilderConfig(opts...)
	inv, omega, err := randomInventory(MethodGenerateInventory, cfg, count, maxValue, maxOmega)
	if err != nil {
		return nil, 0, err
	}
	cfg.target.Set(omega)

	return inv, omega, nil
}

func randomInventory(method string, cfg builderConfig, count int, maxValue, maxOmega float64) (*network.Collection, float64, error) {
	// 1) Validate in priority order: size, scales, rng.
	if err := validateMin(method, "count", count, MinInventorySize); err != nil {
		return nil, 0, err
	}
	if err := validateScale(method, "maxValue", maxValue); err != nil {
		return nil, 0, err
	}
	if err := validateScale(method, "maxOmega", maxOmega); err != nil {
		return nil, 0, err
	}
	if cfg.rng == nil {
		return nil, 0, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	// 2) Draw components in a fixed order.
	rng := cfg.rng
	inv := network.NewCollection()
	for i := 0; i < count; i++ {
		kind := cfg.kinds[rng.Intn(len(cfg.kinds))]
		v := maxValue * rng.Float64()
		if kind != network.KindResistor {
			v *= cfg.reactiveScale
		}
		// v ≥ 0 by construction, so no clamp warning can occur.
		c, _, err := network.NewComponent(kind, v)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: item %d: %w", method, i, err)
		}
		if err = inv.Append(c); err != nil {
			return nil, 0, fmt.Errorf("%s: item %d: %w", method, i, err)
		}
	}

	// 3) Draw ω last.
	return inv, maxOmega * rng.Float64(), nil
}
