// SPDX-License-Identifier: MIT
// Package: acnet/network
//
// describe.go - human-readable nested rendering of nodes and collections.
//
// Format (stable, covered by tests):
//
//	Resistor: 10 Ohms
//	Resistor: 10 Ohms; impedance magnitude: 10, phase: 0          (verbose)
//	Series Circuit with elements:
//	-Resistor: 10 Ohms
//	-Parallel Circuit with elements:
//	--Inductor: 0.001 H
//	//////////end of circuit/////////////
//	//////////end of circuit/////////////
//
// Each child line is prefixed by `depth` dashes; children render at depth+1.

package network

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const endOfCircuit = "//////////end of circuit/////////////"

// Describe renders n at depth 1 using omega for the verbose figures.
func Describe(n Node, omega float64, verbose bool) string {
	var sb strings.Builder
	_ = WriteDescription(&sb, n, 1, omega, verbose)

	return sb.String()
}

// WriteDescription renders n to w. depth < 1 is treated as 1.
// Returns ErrNilNode for a nil n, or the first write error.
func WriteDescription(w io.Writer, n Node, depth int, omega float64, verbose bool) error {
	if n == nil {
		return ErrNilNode
	}
	if depth < 1 {
		depth = 1
	}
	ew := &errWriter{w: w}
	describe(ew, n, depth, omega, verbose)

	return ew.err
}

// List writes the shared-frequency header followed by one numbered entry
// per collection item ("1. ...", "2. ...").
func List(w io.Writer, c *Collection, omega float64, verbose bool) error {
	ew := &errWriter{w: w}
	ew.printf("Current frequency is %s rad/s\n", formatNumber(omega))
	for i, n := range c.Nodes() {
		ew.printf("%d. ", i+1)
		describe(ew, n, 1, omega, verbose)
	}

	return ew.err
}

func describe(w *errWriter, n Node, depth int, omega float64, verbose bool) {
	l := n.Label()
	switch v := n.(type) {
	case Component:
		w.printf("%s: %s %s", l.Name, formatNumber(v.Value()), l.Unit)
		if verbose {
			if m, p, err := magnitudePhase(n, omega); err != nil {
				w.printf("; impedance undefined")
			} else {
				w.printf("; impedance magnitude: %s, phase: %s", formatNumber(m), formatNumber(p))
			}
		}
		w.printf("\n")

	case Network:
		switch {
		case !verbose:
			w.printf("%s with elements:\n", l.Name)
		default:
			if m, p, err := magnitudePhase(n, omega); err != nil {
				w.printf("%s with impedance undefined. It has elements:\n", l.Name)
			} else {
				w.printf("%s with impedance magnitude %s and phase %s. It has elements:\n",
					l.Name, formatNumber(m), formatNumber(p))
			}
		}
		prefix := strings.Repeat("-", depth)
		for _, child := range v.Children() {
			w.printf("%s", prefix)
			describe(w, child, depth+1, omega, verbose)
		}
		w.printf("%s\n", endOfCircuit)
	}
}

func magnitudePhase(n Node, omega float64) (float64, float64, error) {
	m, err := MagnitudeAt(n, omega)
	if err != nil {
		return 0, 0, err
	}
	p, err := PhaseAt(n, omega)

	return m, p, err
}

// formatNumber prints six significant digits, like a default C stream.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// errWriter remembers the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
