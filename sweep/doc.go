// Package sweep evaluates a network's impedance across a grid of angular
// frequencies (steady-state AC only) and locates its resonance.
//
// Grids are produced with gonum's floats.Span (Linear) and floats.LogSpan
// (Log). Each Point records Z, |Z| and arg(Z); a point where the network is
// degenerate keeps its error instead of aborting the sweep, so a capacitor
// swept from ω = 0 still yields every other point.
//
// Errors:
//
//	ErrBadRange      - Min/Max not finite, Min > Max, or Min ≤ 0 on a Log grid.
//	ErrTooFewPoints  - fewer than MinPoints grid points requested.
//	ErrNoValidPoint  - every point of the sweep is degenerate.
package sweep
