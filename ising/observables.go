// Package ising - observables and diagnostics derived from the
// lattice state.
package ising

import (
	"fmt"
	"io"
)

// Magnetization returns the sum of active spin states and refreshes
// the cached observable. Zero before Setup.
func (m *Model) Magnetization() int {
	mag := 0
	if m.lat != nil {
		for i := range m.lat.Spins {
			if m.lat.Spins[i].Active {
				mag += m.lat.Spins[i].S
			}
		}
	}
	m.magnetization = mag

	return mag
}

// SpinArray returns the spin states in lattice order: ±1 for active
// sites, 0 for inactive placeholders. The slice is a copy.
func (m *Model) SpinArray() []int {
	if m.lat == nil {
		return nil
	}

	out := make([]int, len(m.lat.Spins))
	for i := range m.lat.Spins {
		if m.lat.Spins[i].Active {
			out[i] = m.lat.Spins[i].S
		}
	}

	return out
}

// LatticeDimensions returns a copy of the per-axis addressable site
// counts. Nil before Setup.
func (m *Model) LatticeDimensions() []int {
	if m.lat == nil {
		return nil
	}

	out := make([]int, len(m.lat.Dims))
	copy(out, m.lat.Dims)

	return out
}

// ConvergenceSeries returns the per-sweep accepted-|ΔE| totals
// accumulated by the last runs, excluding the first (warm-up) entry,
// ready for external plotting as sweep index → ΔE sum. The slice is a
// copy.
func (m *Model) ConvergenceSeries() []float64 {
	if len(m.convergence) <= 1 {
		return nil
	}

	out := make([]float64, len(m.convergence)-1)
	copy(out, m.convergence[1:])

	return out
}

// RandomizeSpins reverses each spin with probability 1/2, using an
// auxiliary stream derived from the model seed so the main simulation
// stream is untouched. Does not necessarily produce zero
// magnetization. Returns the number of reversed spins.
func (m *Model) RandomizeSpins() int {
	if m.lat == nil {
		return 0
	}

	rng := deriveRNG(m.seed, randomizeStream)
	flipped := 0
	for i := range m.lat.Spins {
		if rng.Float64() < 0.5 {
			m.lat.Spins[i].S = -m.lat.Spins[i].S
			flipped++
		}
	}

	return flipped
}

// randomizeStream identifies the RandomizeSpins substream.
const randomizeStream uint64 = 0x5249

// SetAllSpins aligns every spin with the sign of direction
// (non-positive means down).
func (m *Model) SetAllSpins(direction int) {
	if m.lat == nil {
		return
	}

	s := -1
	if direction > 0 {
		s = 1
	}
	for i := range m.lat.Spins {
		m.lat.Spins[i].S = s
	}
}

// Status writes a human-readable dump of the current settings and
// derived quantities. Purely informational; the write error is
// returned for callers that care.
func (m *Model) Status(w io.Writer) error {
	effH := 0.0
	if m.hasBeenSetup {
		effH, _ = m.EffHamiltonian()
	}

	_, err := fmt.Fprintf(w,
		"| Magnetization:   %d\n"+
			"| Eff. energy:     %g\n"+
			"| Hausdorff dim.:  %g\n"+
			"| Lattice method:  %s\n"+
			"| Lattice copies:  %d\n"+
			"| Lattice scaling: %g\n"+
			"| Lattice depth:   %d\n"+
			"| Number of spins: %d\n"+
			"| MC method:       %s\n"+
			"| Number MC steps: %d\n"+
			"| Number threads:  %d\n"+
			"| Beta * Hamiltonian: -1/%g * (%g/|r_i-r_j|^%g * S_i*S_j + %g*S_i)\n",
		m.Magnetization(), effH,
		m.hausdorffDim, m.hausdorffMethod, m.hausdorffSlices,
		m.hausdorffScale, m.latticeDepth, m.NumSpins(),
		m.mcMethod, m.nMCSteps, m.nThreads,
		m.kbT, m.couplingJ, m.interactionSigma, m.couplingH)
	if err != nil {
		return err
	}

	if !m.hasBeenSetup {
		_, err = fmt.Fprintln(w, "WARNING: model has not been set up")
	}

	return err
}
