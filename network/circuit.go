// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// circuit.go - composite nodes: Series and Parallel.
//
// Ownership:
//   - Constructors and Add take ownership of the given nodes; nothing is
//     copied on the way in. Callers that want to keep an independent
//     original must Clone before handing it over.
//   - Clone deep-copies every descendant.
//
// Child order is preserved for display; it does not affect Z.

package network

import (
	"math"
	"math/cmplx"
)

// circuit holds the ordered owned children shared by Series and Parallel.
type circuit struct {
	kind     Kind
	children []Node
}

func newCircuit(kind Kind, children []Node) circuit {
	c := circuit{kind: kind, children: make([]Node, 0, len(children))}
	for _, n := range children {
		c.Add(n)
	}

	return c
}

func (c *circuit) node() {}

// Kind returns the composite variant.
func (c *circuit) Kind() Kind { return c.kind }

// Label returns the composite display label.
func (c *circuit) Label() Label { return c.kind.Label() }

// Add appends n, taking ownership. nil is ignored.
func (c *circuit) Add(n Node) {
	if n == nil {
		return
	}
	c.children = append(c.children, n)
}

// Children returns the owned children in order, in a fresh slice.
func (c *circuit) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)

	return out
}

// Len returns the number of direct children.
func (c *circuit) Len() int { return len(c.children) }

// cloneChildren deep-copies every child.
// Complexity: O(total descendants).
func (c *circuit) cloneChildren() circuit {
	out := circuit{kind: c.kind, children: make([]Node, len(c.children))}
	for i, n := range c.children {
		out.children[i] = n.Clone()
	}

	return out
}

// Series is a series composition: Z = Σ zᵢ. An empty Series has Z = 0.
type Series struct{ circuit }

// NewSeries returns a Series owning children in the given order.
func NewSeries(children ...Node) *Series {
	return &Series{newCircuit(KindSeries, children)}
}

// Impedance sums the child impedances at omega.
//
// Errors:
//   - any child error, wrapped with its position.
//   - ErrDegenerateImpedance if the sum is not finite.
//
// Complexity: O(total descendants).
func (s *Series) Impedance(omega float64) (complex128, error) {
	var sum complex128
	for i, n := range s.children {
		z, err := n.Impedance(omega)
		if err != nil {
			return 0, wrapChild("Series", i, err)
		}
		sum += z
	}
	if !finite(sum) {
		return 0, degeneratef("Series", "non-finite sum %v", sum)
	}

	return sum, nil
}

// Clone returns a deep copy.
func (s *Series) Clone() Node {
	return &Series{s.cloneChildren()}
}

// Parallel is a parallel composition: Z = 1 / Σ(1/zᵢ).
type Parallel struct{ circuit }

// NewParallel returns a Parallel owning children in the given order.
func NewParallel(children ...Node) *Parallel {
	return &Parallel{newCircuit(KindParallel, children)}
}

// Impedance folds reciprocals of the child impedances at omega.
//
// Errors:
//   - ErrEmptyNetwork and ErrDegenerateImpedance when there are no children.
//   - ErrDegenerateImpedance when a branch has zero impedance, when the
//     reciprocal sum is zero, or when the result is not finite.
//   - any child error, wrapped with its position.
//
// Complexity: O(total descendants).
func (p *Parallel) Impedance(omega float64) (complex128, error) {
	if len(p.children) == 0 {
		return 0, errEmptyParallel
	}

	var sum complex128
	for i, n := range p.children {
		z, err := n.Impedance(omega)
		if err != nil {
			return 0, wrapChild("Parallel", i, err)
		}
		if z == 0 {
			return 0, degeneratef("Parallel", "child %d has zero impedance", i)
		}
		sum += 1 / z
	}
	if sum == 0 {
		return 0, degeneratef("Parallel", "reciprocal sum is zero")
	}
	z := 1 / sum
	if !finite(z) {
		return 0, degeneratef("Parallel", "non-finite result %v", z)
	}

	return z, nil
}

// Clone returns a deep copy.
func (p *Parallel) Clone() Node {
	return &Parallel{p.cloneChildren()}
}

func finite(z complex128) bool {
	return !cmplx.IsNaN(z) && !math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}
