// SPDX-License-Identifier: MIT
// Package network_test contains shared fixtures for the network tests.

package network_test

import (
	"testing"

	"github.com/katalvlaran/acnet/network"
	"github.com/stretchr/testify/require"
)

// Common characteristics and frequencies (avoid magic numbers in test bodies).
const (
	R10     = 10.0
	R100    = 100.0
	C1u     = 1e-6
	L1m     = 1e-3
	Omega1k = 1000.0

	Tol = 1e-9
)

// mustResistor builds a resistor and fails on any clamp warning.
func mustResistor(t *testing.T, r float64) *network.Resistor {
	t.Helper()
	n, w := network.NewResistor(r)
	require.Nil(t, w, "NewResistor(%g) warning", r)
	return n
}

func mustCapacitor(t *testing.T, c float64) *network.Capacitor {
	t.Helper()
	n, w := network.NewCapacitor(c)
	require.Nil(t, w, "NewCapacitor(%g) warning", c)
	return n
}

func mustInductor(t *testing.T, l float64) *network.Inductor {
	t.Helper()
	n, w := network.NewInductor(l)
	require.Nil(t, w, "NewInductor(%g) warning", l)
	return n
}

// withSharedFrequency sets the process-wide ω for the duration of a test.
func withSharedFrequency(t *testing.T, omega float64) {
	t.Helper()
	prev := network.GetFrequency()
	network.SetFrequency(omega)
	t.Cleanup(func() { network.SetFrequency(prev) })
}

// requireComplexNear asserts both parts of got lie within Tol of want.
func requireComplexNear(t *testing.T, want, got complex128, msg string) {
	t.Helper()
	require.InDelta(t, real(want), real(got), Tol, "%s: real part", msg)
	require.InDelta(t, imag(want), imag(got), Tol, "%s: imaginary part", msg)
}
