package network_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/acnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSharedFrequency checks the global accessor pair.
func TestSharedFrequency(t *testing.T) {
	withSharedFrequency(t, 0)
	assert.Equal(t, 0.0, network.GetFrequency())

	network.SetFrequency(-3) // not validated
	assert.Equal(t, -3.0, network.GetFrequency())
	assert.Same(t, network.SharedFrequency(), network.SharedFrequency())

	l := mustInductor(t, 2)
	z, err := network.Impedance(l)
	require.NoError(t, err)
	assert.Equal(t, complex(0, -6), z, "negative ω flips the reactance")
}

// TestFrequency_Context checks an explicit, non-shared frequency.
func TestFrequency_Context(t *testing.T) {
	f := network.NewFrequency(Omega1k)
	z, err := f.Impedance(mustCapacitor(t, C1u))
	require.NoError(t, err)
	requireComplexNear(t, complex(0, -1000), z, "explicit context")

	_, err = f.Impedance(nil)
	assert.ErrorIs(t, err, network.ErrNilNode)
}

// TestFrequency_Concurrent runs readers against writers; meaningful under -race.
func TestFrequency_Concurrent(t *testing.T) {
	f := network.NewFrequency(0)
	inv := network.NewCollection()
	const workers = 50

	var wg sync.WaitGroup
	wg.Add(3 * workers)
	for i := 0; i < workers; i++ {
		go func(w float64) {
			defer wg.Done()
			f.Set(w)
		}(float64(i + 1))
		go func() {
			defer wg.Done()
			_ = f.Get()
		}()
		go func() {
			defer wg.Done()
			r, _ := network.NewResistor(1)
			_ = inv.Append(r)
		}()
	}
	wg.Wait()

	assert.Greater(t, f.Get(), 0.0)
	assert.Equal(t, workers, inv.Len())
}
