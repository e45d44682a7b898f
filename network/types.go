// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// types.go - Kind, Label and the Node/Component/Network capability set.

package network

import (
	"fmt"
	"strings"
)

// Kind enumerates the closed set of node variants.
type Kind uint8

const (
	// KindUnknown is the zero value and never names a valid node.
	KindUnknown Kind = iota
	// KindResistor is an ideal resistor; characteristic in Ohms.
	KindResistor
	// KindCapacitor is an ideal capacitor; characteristic in Farads.
	KindCapacitor
	// KindInductor is an ideal inductor; characteristic in Henries.
	KindInductor
	// KindSeries is a series composition of child nodes.
	KindSeries
	// KindParallel is a parallel composition of child nodes.
	KindParallel
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindResistor:  "resistor",
	KindCapacitor: "capacitor",
	KindInductor:  "inductor",
	KindSeries:    "series",
	KindParallel:  "parallel",
}

// String returns the lower-case token used by ParseKind and the CLI.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsComponent reports whether k names a leaf variant.
func (k Kind) IsComponent() bool {
	return k == KindResistor || k == KindCapacitor || k == KindInductor
}

// IsNetwork reports whether k names a composite variant.
func (k Kind) IsNetwork() bool {
	return k == KindSeries || k == KindParallel
}

// Label returns the display label for k.
func (k Kind) Label() Label {
	switch k {
	case KindResistor:
		return Label{Name: "Resistor", Unit: "Ohms"}
	case KindCapacitor:
		return Label{Name: "Capacitor", Unit: "F"}
	case KindInductor:
		return Label{Name: "Inductor", Unit: "H"}
	case KindSeries:
		return Label{Name: "Series Circuit", Unit: "None"}
	case KindParallel:
		return Label{Name: "Parallel Circuit", Unit: "None"}
	default:
		return Label{Name: "Unknown", Unit: "None"}
	}
}

// ParseKind maps a case-insensitive token ("resistor", "r", "series", ...)
// to a Kind. Unknown tokens return ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "resistor", "r":
		return KindResistor, nil
	case "capacitor", "c":
		return KindCapacitor, nil
	case "inductor", "l":
		return KindInductor, nil
	case "series", "s":
		return KindSeries, nil
	case "parallel", "p":
		return KindParallel, nil
	}

	return KindUnknown, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Label identifies what a node is: a kind name plus the unit symbol of its
// characteristic ("None" for networks).
type Label struct {
	Name string
	Unit string
}

// String renders the label as "Name [Unit]".
func (l Label) String() string {
	return l.Name + " [" + l.Unit + "]"
}

// Node is any element of a network: a component leaf or a composite.
//
// The set of implementations is closed (Resistor, Capacitor, Inductor,
// Series, Parallel); the unexported marker keeps foreign types out.
type Node interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Label returns the display label.
	Label() Label
	// Impedance evaluates Z at angular frequency omega.
	// Degenerate results return ErrDegenerateImpedance and a zero value.
	Impedance(omega float64) (complex128, error)
	// Clone returns a deep, independently owned copy.
	Clone() Node

	node()
}

// Component is a leaf Node with one non-negative characteristic value.
type Component interface {
	Node
	// Value returns the characteristic (Ohms, Farads or Henries).
	Value() float64
	// SetValue assigns the characteristic; negative or NaN input is clamped
	// to 0 and reported through the returned *Warning.
	SetValue(v float64) *Warning
}

// Network is a composite Node owning an ordered list of children.
type Network interface {
	Node
	// Add appends n, taking ownership. A nil n is ignored.
	Add(n Node)
	// Children returns a fresh slice holding the owned children in order.
	Children() []Node
	// Len returns the number of direct children.
	Len() int
}
