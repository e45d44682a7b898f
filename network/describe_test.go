package network_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/acnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDescribe_Nested pins the nested, non-verbose layout.
func TestDescribe_Nested(t *testing.T) {
	tree := network.NewSeries(
		mustResistor(t, R10),
		network.NewParallel(mustInductor(t, L1m)),
	)
	want := strings.Join([]string{
		"Series Circuit with elements:",
		"-Resistor: 10 Ohms",
		"-Parallel Circuit with elements:",
		"--Inductor: 0.001 H",
		"//////////end of circuit/////////////",
		"//////////end of circuit/////////////",
		"",
	}, "\n")
	assert.Equal(t, want, network.Describe(tree, Omega1k, false))
}

// TestDescribe_Verbose pins magnitude/phase output and the undefined case.
func TestDescribe_Verbose(t *testing.T) {
	assert.Equal(t,
		"Resistor: 10 Ohms; impedance magnitude: 10, phase: 0\n",
		network.Describe(mustResistor(t, R10), 1, true))
	assert.Equal(t,
		"Capacitor: 1e-06 F; impedance undefined\n",
		network.Describe(mustCapacitor(t, C1u), 0, true))

	s := network.NewSeries(mustResistor(t, 3), mustInductor(t, 4))
	assert.Equal(t,
		"Series Circuit with impedance magnitude 5 and phase 0.927295. It has elements:\n"+
			"-Resistor: 3 Ohms; impedance magnitude: 3, phase: 0\n"+
			"-Inductor: 4 H; impedance magnitude: 4, phase: 1.5708\n"+
			"//////////end of circuit/////////////\n",
		network.Describe(s, 1, true))

	assert.Equal(t,
		"Parallel Circuit with impedance undefined. It has elements:\n//////////end of circuit/////////////\n",
		network.Describe(network.NewParallel(), 1, true))
}

// TestList pins the numbered inventory listing.
func TestList(t *testing.T) {
	inv := network.NewCollection(mustResistor(t, R10), mustCapacitor(t, C1u))
	var sb strings.Builder
	require.NoError(t, network.List(&sb, inv, Omega1k, false))
	assert.Equal(t,
		"Current frequency is 1000 rad/s\n1. Resistor: 10 Ohms\n2. Capacitor: 1e-06 F\n",
		sb.String())
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

// TestWriteDescription_Errors covers nil nodes and writer failures.
func TestWriteDescription_Errors(t *testing.T) {
	assert.ErrorIs(t, network.WriteDescription(&strings.Builder{}, nil, 1, 0, false), network.ErrNilNode)
	assert.ErrorIs(t, network.WriteDescription(failingWriter{}, mustResistor(t, 1), 0, 0, false), errSink)
	assert.ErrorIs(t, network.List(failingWriter{}, network.NewCollection(), 0, false), errSink)
}
