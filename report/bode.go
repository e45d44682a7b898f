// SPDX-License-Identifier: MIT
// Package: acnet/report
//
// bode.go - two-panel Bode plot (|Z| and arg Z against ω).
//
// Degenerate points are skipped, so the traces show gaps instead of spikes.
// On a Log sweep the ω axis is logarithmic.

package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/katalvlaran/acnet/sweep"
)

// Bode figure geometry.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

var (
	// ErrNothingToPlot indicates no valid point was supplied.
	ErrNothingToPlot = errors.New("report: nothing to plot")

	// ErrUnsupportedFormat indicates an image format other than png or svg.
	ErrUnsupportedFormat = errors.New("report: unsupported image format")
)

var (
	magnitudeColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	phaseColor     = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// BodePlots builds the magnitude and phase panels for pts.
// Phase is drawn in degrees.
func BodePlots(title string, pts []sweep.Point, scale sweep.Scale) (mag, phase *plot.Plot, err error) {
	valid := sweep.Valid(pts)
	if len(valid) == 0 {
		return nil, nil, fmt.Errorf("BodePlots: %d points: %w", len(pts), ErrNothingToPlot)
	}

	magXY := make(plotter.XYs, len(valid))
	phXY := make(plotter.XYs, len(valid))
	for i, p := range valid {
		magXY[i] = plotter.XY{X: p.Omega, Y: p.Magnitude}
		phXY[i] = plotter.XY{X: p.Omega, Y: p.Phase * 180 / math.Pi}
	}

	if mag, err = panel(title, "|Z| [Ohms]", magXY, magnitudeColor, scale); err != nil {
		return nil, nil, fmt.Errorf("BodePlots: magnitude: %w", err)
	}
	if phase, err = panel("", "Phase [deg]", phXY, phaseColor, scale); err != nil {
		return nil, nil, fmt.Errorf("BodePlots: phase: %w", err)
	}
	phase.X.Label.Text = "ω [rad/s]"

	return mag, phase, nil
}

func panel(title, ylabel string, xys plotter.XYs, c color.Color, scale sweep.Scale) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	if scale == sweep.Log {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	p.Add(line)

	return p, nil
}

// WriteBode renders the stacked Bode figure to w as "png" or "svg".
func WriteBode(w io.Writer, format, title string, pts []sweep.Point, scale sweep.Scale) error {
	mag, phase, err := BodePlots(title, pts, scale)
	if err != nil {
		return err
	}

	var c vg.CanvasWriterTo
	switch strings.ToLower(format) {
	case "png":
		c = vgimg.PngCanvas{Canvas: vgimg.New(DefaultWidth, DefaultHeight)}
	case "svg":
		c = vgsvg.New(DefaultWidth, DefaultHeight)
	default:
		return fmt.Errorf("WriteBode(%q): %w", format, ErrUnsupportedFormat)
	}

	plots := [][]*plot.Plot{{mag}, {phase}}
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadY:      vg.Millimeter * 2,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for j := range plots {
		plots[j][0].Draw(canvases[j][0])
	}

	if _, err = c.WriteTo(w); err != nil {
		return fmt.Errorf("WriteBode: %w", err)
	}

	return nil
}

// SaveBode writes the Bode figure to path; the extension picks the format.
func SaveBode(path, title string, pts []sweep.Point, scale sweep.Scale) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(format) {
	case "png", "svg":
	default:
		return fmt.Errorf("SaveBode(%q): %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveBode: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("SaveBode: %w", cerr)
		}
	}()

	return WriteBode(f, format, title, pts, scale)
}
