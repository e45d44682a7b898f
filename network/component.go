// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// component.go - ideal leaf components: Resistor, Capacitor, Inductor.
//
// Contract:
//   - The characteristic is always >= 0; negative or NaN input is clamped
//     to 0 and reported via *Warning (constructor and SetValue alike).
//   - Impedance is pure; it reads only the receiver and omega.
//   - Clone returns a new leaf, never an alias.

package network

import (
	"math"
)

// component holds the state shared by all leaves.
type component struct {
	kind  Kind
	value float64
}

// newComponent clamps v and returns the leaf state plus an optional warning.
func newComponent(kind Kind, v float64) (component, *Warning) {
	c := component{kind: kind}
	w := c.SetValue(v)

	return c, w
}

func (c *component) node() {}

// Kind returns the leaf variant.
func (c *component) Kind() Kind { return c.kind }

// Label returns the leaf display label.
func (c *component) Label() Label { return c.kind.Label() }

// Value returns the characteristic.
func (c *component) Value() float64 { return c.value }

// SetValue assigns v, or 0 when v is negative or NaN.
func (c *component) SetValue(v float64) *Warning {
	if v >= 0 {
		c.value = v
		return nil
	}
	// NaN fails v >= 0 as well, so it lands here.
	c.value = 0

	return &Warning{Kind: c.kind, Given: v, Applied: 0}
}

// Resistor is an ideal resistor: Z = (R, 0) at every frequency.
type Resistor struct{ component }

// NewResistor returns a resistor of r Ohms. A non-nil *Warning means r was
// clamped to 0; the resistor is valid either way.
func NewResistor(r float64) (*Resistor, *Warning) {
	c, w := newComponent(KindResistor, r)
	return &Resistor{c}, w
}

// Impedance returns (R, 0). Only an infinite resistance is degenerate.
func (r *Resistor) Impedance(float64) (complex128, error) {
	if math.IsInf(r.value, 0) {
		return 0, degeneratef("Resistor", "infinite resistance")
	}
	return complex(r.value, 0), nil
}

// Clone returns an independent copy.
func (r *Resistor) Clone() Node {
	cp := *r
	return &cp
}

// Capacitor is an ideal capacitor: Z = (0, −1/(C·ω)).
type Capacitor struct{ component }

// NewCapacitor returns a capacitor of c Farads.
func NewCapacitor(c float64) (*Capacitor, *Warning) {
	cc, w := newComponent(KindCapacitor, c)
	return &Capacitor{cc}, w
}

// Impedance returns (0, −1/(C·ω)).
//
// Errors:
//   - ErrDegenerateImpedance when C·ω is 0 or NaN, or the reactance
//     overflows to ±Inf.
func (c *Capacitor) Impedance(omega float64) (complex128, error) {
	d := c.value * omega
	if d == 0 || math.IsNaN(d) {
		return 0, degeneratef("Capacitor", "C·ω = %g", d)
	}
	x := -1 / d
	if math.IsInf(x, 0) {
		return 0, degeneratef("Capacitor", "reactance overflow at C·ω = %g", d)
	}

	return complex(0, x), nil
}

// Clone returns an independent copy.
func (c *Capacitor) Clone() Node {
	cp := *c
	return &cp
}

// Inductor is an ideal inductor: Z = (0, L·ω).
type Inductor struct{ component }

// NewInductor returns an inductor of l Henries.
func NewInductor(l float64) (*Inductor, *Warning) {
	c, w := newComponent(KindInductor, l)
	return &Inductor{c}, w
}

// Impedance returns (0, L·ω). A non-finite product (e.g. 0·Inf) is degenerate.
func (l *Inductor) Impedance(omega float64) (complex128, error) {
	x := l.value * omega
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, degeneratef("Inductor", "L·ω = %g", x)
	}

	return complex(0, x), nil
}

// Clone returns an independent copy.
func (l *Inductor) Clone() Node {
	cp := *l
	return &cp
}
