// Package ising_test - configuration surface: silent rejection of
// out-of-domain values, setup invalidation, observables, status dump.
package ising_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lankagege/HausdorffIsingModel/ising"
	"github.com/lankagege/HausdorffIsingModel/lattice"
)

// TestSetters_SilentlyRejectInvalid: out-of-domain values leave the
// previous valid value unchanged and mutate nothing.
func TestSetters_SilentlyRejectInvalid(t *testing.T) {
	m := ising.NewModel()
	m.SetNumThreads(4)
	m.SetNumMCSteps(500)
	m.SetLatticeDepth(2)
	m.SetHausdorffDimension(1.5)
	m.SetHausdorffSlices(3)
	m.SetHausdorffScale(0.25)
	m.SetTemperature(2)
	m.SetMCMethod(ising.Hybrid)

	m.SetNumThreads(0)
	m.SetNumThreads(-3)
	m.SetNumMCSteps(0)
	m.SetLatticeDepth(0)
	m.SetHausdorffDimension(0)
	m.SetHausdorffDimension(-2)
	m.SetHausdorffSlices(1)
	m.SetHausdorffScale(0)
	m.SetHausdorffScale(1.5)
	m.SetTemperature(-1)
	m.SetMCMethod(ising.MCMethod(99))
	m.SetHausdorffMethod(lattice.Method(99))

	assert.Equal(t, 4, m.NumThreads())
	assert.Equal(t, 500, m.NumMCSteps())
	assert.Equal(t, 2, m.LatticeDepth())
	assert.Equal(t, 1.5, m.HausdorffDimension())
	assert.Equal(t, 3, m.HausdorffSlices())
	assert.Equal(t, 0.25, m.HausdorffScale())
	assert.Equal(t, 2.0, m.Temperature())
	assert.Equal(t, ising.Hybrid, m.Method())
	assert.Equal(t, lattice.MethodScaling, m.HausdorffMethod())
}

// TestSetters_InvalidateSetup: any accepted setting forces a rebuild.
func TestSetters_InvalidateSetup(t *testing.T) {
	m := newChain(t, 1)
	require.True(t, m.IsSetup())

	m.SetTemperature(2)
	assert.False(t, m.IsSetup())
	assert.ErrorIs(t, m.RunMonteCarlo(), ising.ErrNotSetup)

	require.NoError(t, m.Setup())
	assert.True(t, m.IsSetup())

	// A rejected value must not invalidate anything.
	m.SetTemperature(-1)
	assert.True(t, m.IsSetup())
}

// TestSetup_InvalidScale: the structural failure propagates the
// lattice sentinel and leaves the model unusable.
func TestSetup_InvalidScale(t *testing.T) {
	m := ising.NewModel()
	m.SetHausdorffMethod(lattice.MethodSplitting)
	m.SetHausdorffScale(0.35)

	assert.ErrorIs(t, m.Setup(), lattice.ErrInvalidScale)
	assert.False(t, m.IsSetup())
	assert.ErrorIs(t, m.RunMonteCarlo(), ising.ErrNotSetup)
}

// TestObservables_MagnetizationAndSpinArray covers the spin-state
// views and the direction helpers.
func TestObservables_MagnetizationAndSpinArray(t *testing.T) {
	m := newChain(t, 1)

	assert.Equal(t, 4, m.Magnetization())
	assert.Equal(t, []int{1, 1, 1, 1}, m.SpinArray())

	m.SetAllSpins(-1)
	assert.Equal(t, -4, m.Magnetization())
	assert.Equal(t, []int{-1, -1, -1, -1}, m.SpinArray())

	flipped := m.RandomizeSpins()
	assert.GreaterOrEqual(t, flipped, 0)
	assert.LessOrEqual(t, flipped, 4)
}

// TestStatus dumps settings and flags an unbuilt model.
func TestStatus(t *testing.T) {
	m := ising.NewModel()

	var sb strings.Builder
	require.NoError(t, m.Status(&sb))
	out := sb.String()

	assert.Contains(t, out, "Magnetization")
	assert.Contains(t, out, "METROPOLIS")
	assert.Contains(t, out, "WARNING")

	require.NoError(t, m.Setup())
	sb.Reset()
	require.NoError(t, m.Status(&sb))
	assert.NotContains(t, sb.String(), "WARNING")
}

// TestParseMCMethod round-trips the canonical names.
func TestParseMCMethod(t *testing.T) {
	for _, method := range []ising.MCMethod{ising.Metropolis, ising.HeatBath, ising.Hybrid} {
		parsed, err := ising.ParseMCMethod(method.String())
		require.NoError(t, err)
		assert.Equal(t, method, parsed)
	}

	_, err := ising.ParseMCMethod("SIMULATED_ANNEALING")
	assert.ErrorIs(t, err, ising.ErrUnknownMethod)
}
