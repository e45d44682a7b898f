package sweep_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/acnet/network"
	"github.com/katalvlaran/acnet/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func rlc(t *testing.T, kind network.Kind) network.Node {
	t.Helper()
	r, _ := network.NewResistor(100)
	l, _ := network.NewInductor(0.1)
	c, _ := network.NewCapacitor(1e-5)
	nw, err := network.NewNetwork(kind, r, l, c)
	require.NoError(t, err)
	return nw
}

// TestGrid checks linear and logarithmic spacing including both ends.
func TestGrid(t *testing.T) {
	lin, err := sweep.Grid(sweep.Range{Min: 0, Max: 10}, 11, sweep.Linear)
	require.NoError(t, err)
	for i, w := range lin {
		assert.InDelta(t, float64(i), w, tol)
	}

	lg, err := sweep.Grid(sweep.Range{Min: 1, Max: 1000}, 4, sweep.Log)
	require.NoError(t, err)
	for i, want := range []float64{1, 10, 100, 1000} {
		assert.InDelta(t, want, lg[i], tol)
	}
}

// TestGrid_Errors checks argument validation.
func TestGrid_Errors(t *testing.T) {
	_, err := sweep.Grid(sweep.Range{Min: 0, Max: 1}, 1, sweep.Linear)
	assert.ErrorIs(t, err, sweep.ErrTooFewPoints)

	for _, r := range []sweep.Range{{Min: 2, Max: 1}, {Min: math.NaN(), Max: 1}, {Min: 0, Max: math.Inf(1)}} {
		_, err = sweep.Grid(r, 10, sweep.Linear)
		assert.ErrorIs(t, err, sweep.ErrBadRange, "%v", r)
	}

	_, err = sweep.Grid(sweep.Range{Min: 0, Max: 1}, 10, sweep.Log)
	assert.ErrorIs(t, err, sweep.ErrBadRange, "log needs min > 0")
}

// TestSweep_KeepsDegeneratePoints checks a capacitor swept from DC.
func TestSweep_KeepsDegeneratePoints(t *testing.T) {
	c, _ := network.NewCapacitor(1e-6)
	pts, err := sweep.Sweep(c, sweep.Range{Min: 0, Max: 1000}, 3, sweep.Linear)
	require.NoError(t, err)
	require.Len(t, pts, 3)

	assert.False(t, pts[0].Valid())
	assert.ErrorIs(t, pts[0].Err, network.ErrDegenerateImpedance)
	assert.True(t, pts[1].Valid())
	assert.InDelta(t, 2000, pts[1].Magnitude, tol)
	assert.InDelta(t, -math.Pi/2, pts[2].Phase, tol)
	assert.Len(t, sweep.Valid(pts), 2)

	_, err = sweep.Sweep(nil, sweep.Range{Min: 0, Max: 1}, 2, sweep.Linear)
	assert.ErrorIs(t, err, network.ErrNilNode)
}

// TestResonance locates ω₀ = 1/√(LC) = 1000 rad/s for series and parallel RLC.
func TestResonance(t *testing.T) {
	r := sweep.Range{Min: 10, Max: 1e5}

	series := rlc(t, network.KindSeries)
	pts, err := sweep.Sweep(series, r, 5, sweep.Log)
	require.NoError(t, err)
	p, err := sweep.Resonance(series, pts)
	require.NoError(t, err)
	assert.InDelta(t, 1000, p.Omega, tol)
	assert.InDelta(t, 100, p.Magnitude, tol, "series RLC at ω₀ is purely resistive")

	parallel := rlc(t, network.KindParallel)
	pts, err = sweep.Sweep(parallel, r, 5, sweep.Log)
	require.NoError(t, err)
	p, err = sweep.Resonance(parallel, pts)
	require.NoError(t, err)
	assert.InDelta(t, 1000, p.Omega, tol)
	assert.InDelta(t, 100, p.Magnitude, 1e-3, "parallel RLC peaks at R")

	_, err = sweep.Resonance(series, []sweep.Point{{Err: network.ErrDegenerateImpedance}})
	assert.ErrorIs(t, err, sweep.ErrNoValidPoint)
}

// TestParseScale pins the accepted tokens.
func TestParseScale(t *testing.T) {
	for in, want := range map[string]sweep.Scale{"": sweep.Linear, "LIN": sweep.Linear, "log": sweep.Log, "logarithmic": sweep.Log} {
		got, err := sweep.ParseScale(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := sweep.ParseScale("cubic")
	assert.ErrorIs(t, err, sweep.ErrBadRange)
	assert.Equal(t, "log", sweep.Log.String())
}
