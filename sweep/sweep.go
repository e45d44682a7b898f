// SPDX-License-Identifier: MIT
// Package: acnet/sweep
//
// sweep.go - frequency grids, sweeps and resonance search.

package sweep

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/acnet/network"
)

var (
	// ErrBadRange indicates an unusable frequency range.
	ErrBadRange = errors.New("sweep: invalid frequency range")

	// ErrTooFewPoints indicates fewer than MinPoints grid points.
	ErrTooFewPoints = errors.New("sweep: too few points")

	// ErrNoValidPoint indicates every point of a sweep is degenerate.
	ErrNoValidPoint = errors.New("sweep: no valid point")
)

// MinPoints is the smallest grid size; both ends of the range are included.
const MinPoints = 2

// Scale selects the spacing of grid points.
type Scale uint8

const (
	// Linear spaces points evenly.
	Linear Scale = iota
	// Log spaces points evenly in log10(ω); requires Min > 0.
	Log
)

// String returns "linear" or "log".
func (s Scale) String() string {
	if s == Log {
		return "log"
	}
	return "linear"
}

// ParseScale maps "linear"/"lin" and "log"/"logarithmic" to a Scale.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear", "lin":
		return Linear, nil
	case "log", "logarithmic":
		return Log, nil
	}

	return Linear, fmt.Errorf("ParseScale(%q): %w", s, ErrBadRange)
}

// Range is a closed interval of angular frequencies in rad/s.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Validate checks r for use with scale.
func (r Range) Validate(scale Scale) error {
	for _, v := range []float64{r.Min, r.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("range [%g, %g]: %w", r.Min, r.Max, ErrBadRange)
		}
	}
	if r.Min > r.Max {
		return fmt.Errorf("range [%g, %g]: min > max: %w", r.Min, r.Max, ErrBadRange)
	}
	if scale == Log && r.Min <= 0 {
		return fmt.Errorf("range [%g, %g]: log scale needs min > 0: %w", r.Min, r.Max, ErrBadRange)
	}

	return nil
}

// Point is one sample of a sweep.
type Point struct {
	Omega     float64
	Z         complex128
	Magnitude float64
	Phase     float64
	// Err is non-nil (wrapping network.ErrDegenerateImpedance) when Z is
	// undefined at Omega; the numeric fields are then zero.
	Err error
}

// Valid reports whether the point carries a defined impedance.
func (p Point) Valid() bool { return p.Err == nil }

// Grid returns n angular frequencies spanning r on the given scale.
//
// Complexity: O(n).
func Grid(r Range, n int, scale Scale) ([]float64, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("Grid: n=%d < min=%d: %w", n, MinPoints, ErrTooFewPoints)
	}
	if err := r.Validate(scale); err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}
	dst := make([]float64, n)
	if scale == Log {
		return floats.LogSpan(dst, r.Min, r.Max), nil
	}

	return floats.Span(dst, r.Min, r.Max), nil
}

// Sweep evaluates n at every grid frequency. Degenerate points are kept
// with their error; only argument errors abort.
//
// Complexity: O(points · size(n)).
func Sweep(n network.Node, r Range, points int, scale Scale) ([]Point, error) {
	if n == nil {
		return nil, fmt.Errorf("Sweep: %w", network.ErrNilNode)
	}
	grid, err := Grid(r, points, scale)
	if err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}

	return At(n, grid), nil
}

// At evaluates n at each of the given frequencies, in order.
func At(n network.Node, omegas []float64) []Point {
	out := make([]Point, len(omegas))
	for i, w := range omegas {
		out[i] = evaluate(n, w)
	}

	return out
}

func evaluate(n network.Node, omega float64) Point {
	z, err := n.Impedance(omega)
	if err != nil {
		return Point{Omega: omega, Err: err}
	}

	return Point{Omega: omega, Z: z, Magnitude: cmplx.Abs(z), Phase: cmplx.Phase(z)}
}

// Resonance picks the valid point of pts where |Z| is extreme: the maximum
// for a Parallel root (anti-resonance of a tank), the minimum otherwise.
// The result is limited to grid resolution.
func Resonance(root network.Node, pts []Point) (Point, error) {
	valid := Valid(pts)
	if len(valid) == 0 {
		return Point{}, fmt.Errorf("Resonance: %d points: %w", len(pts), ErrNoValidPoint)
	}
	mags := make([]float64, len(valid))
	for i, p := range valid {
		mags[i] = p.Magnitude
	}
	if root != nil && root.Kind() == network.KindParallel {
		return valid[floats.MaxIdx(mags)], nil
	}

	return valid[floats.MinIdx(mags)], nil
}

// Valid returns the subset of pts with a defined impedance, in order.
func Valid(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if p.Valid() {
			out = append(out, p)
		}
	}

	return out
}
