// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// frequency.go - the angular frequency context and its shared instance.

package network

import (
	"math/cmplx"
	"sync"
)

// Frequency holds an angular frequency ω (rad/s) that may be read and
// updated from several goroutines. The value is not validated: zero,
// negative and non-finite values are accepted and show up as degenerate
// or sign-flipped reactances downstream.
type Frequency struct {
	mu    sync.RWMutex
	omega float64
}

// NewFrequency returns a Frequency initialised to omega.
func NewFrequency(omega float64) *Frequency {
	return &Frequency{omega: omega}
}

// Get returns the current ω.
func (f *Frequency) Get() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.omega
}

// Set replaces ω.
func (f *Frequency) Set(omega float64) {
	f.mu.Lock()
	f.omega = omega
	f.mu.Unlock()
}

// Impedance evaluates n at the current ω of f.
func (f *Frequency) Impedance(n Node) (complex128, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	return n.Impedance(f.Get())
}

// shared is the process-wide ω; it starts at 0.
var shared = NewFrequency(0)

// SharedFrequency returns the process-wide Frequency.
func SharedFrequency() *Frequency { return shared }

// SetFrequency sets the process-wide ω.
func SetFrequency(omega float64) { shared.Set(omega) }

// GetFrequency returns the process-wide ω.
func GetFrequency() float64 { return shared.Get() }

// Impedance evaluates n at the process-wide ω.
func Impedance(n Node) (complex128, error) {
	return shared.Impedance(n)
}

// Magnitude returns |Z| of n at the process-wide ω.
func Magnitude(n Node) (float64, error) {
	return MagnitudeAt(n, shared.Get())
}

// Phase returns arg(Z) = atan2(Im, Re) of n at the process-wide ω.
func Phase(n Node) (float64, error) {
	return PhaseAt(n, shared.Get())
}

// MagnitudeAt returns |Z| of n at omega.
func MagnitudeAt(n Node, omega float64) (float64, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	z, err := n.Impedance(omega)
	if err != nil {
		return 0, err
	}

	return cmplx.Abs(z), nil
}

// PhaseAt returns arg(Z) of n at omega, in radians within [-π, π].
func PhaseAt(n Node, omega float64) (float64, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	z, err := n.Impedance(omega)
	if err != nil {
		return 0, err
	}

	return cmplx.Phase(z), nil
}
