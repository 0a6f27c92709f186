// Package ising - the Monte Carlo engine: Metropolis, heat-bath and
// adaptive-group ("hybrid") sweeps.
package ising

import (
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// RunMonteCarlo performs exactly NumMCSteps full-lattice sweeps with
// the configured update rule. There is no early termination and no
// cancellation: a run either completes or fails structurally.
//
// Per sweep, the previous sweep's accepted |ΔE| values are summed into
// the convergence history (lagged by one sweep, matching the
// diagnostics contract), the hybrid group size is re-adapted, and the
// sweep is dispatched. The tracked current Hamiltonian is sequential:
// each accepted proposal immediately becomes the baseline for the
// next, within and across sweeps.
//
// Errors: ErrNotSetup before a successful Setup.
func (m *Model) RunMonteCarlo() error {
	if !m.hasBeenSetup || m.lat == nil {
		return ErrNotSetup
	}

	rng := rngFromSeed(m.seed)

	e, err := m.EffHamiltonian()
	if err != nil {
		return err
	}
	m.currentEffH = e

	n := m.lat.NumSpins()
	m.groupSize = n / m.nThreads
	if m.groupSize < 1 {
		m.groupSize = 1
	}

	// Warm-up marker: the pre-first-sweep "previous sum" is -1 so the
	// first real sum is never compared against a phantom sweep.
	prevSum := -1.0

	for step := 0; step < m.nMCSteps; step++ {
		newSum := 0.0
		for _, d := range m.sweepDeltas {
			newSum += d
		}
		m.sweepDeltas = m.sweepDeltas[:0]

		switch m.mcMethod {
		case Metropolis:
			err = m.metropolisSweep(rng)
		case HeatBath:
			err = m.heatBathSweep(rng)
		case Hybrid:
			m.groupSize = adaptGroupSize(m.groupSize, newSum, prevSum, m.Magnetization(), n)
			err = m.hybridSweep(rng)
		}
		if err != nil {
			return err
		}

		if prevSum >= 0 {
			m.convergence = append(m.convergence, prevSum)
		}
		prevSum = newSum
	}

	return nil
}

// metropolisSweep proposes one flip per spin, in index order. The
// acceptance draw is consumed only when ΔE >= 0, so accept-by-descent
// never perturbs the random stream.
func (m *Model) metropolisSweep(rng *rand.Rand) error {
	for i := range m.lat.Spins {
		tE, err := m.EffHamiltonian(i)
		if err != nil {
			return err
		}

		delta := tE - m.currentEffH
		accept := delta < 0
		if !accept {
			accept = rng.Float64() < math.Exp(-delta)
		}
		if accept {
			m.lat.Spins[i].S = -m.lat.Spins[i].S
			m.sweepDeltas = append(m.sweepDeltas, math.Abs(delta))
			m.currentEffH = tE
		}
	}

	return nil
}

// heatBathSweep is the same sweep with the logistic acceptance
// exp(-ΔE)/(exp(ΔE)+exp(-ΔE)). An infinite unnormalized ratio
// (ΔE → −∞) forces acceptance before normalization can produce NaN.
func (m *Model) heatBathSweep(rng *rand.Rand) error {
	for i := range m.lat.Spins {
		tE, err := m.EffHamiltonian(i)
		if err != nil {
			return err
		}

		ratio := math.Exp(m.currentEffH - tE)
		accept := false
		switch {
		case math.IsInf(ratio, 1):
			accept = true
		case ratio > 0:
			ratio /= math.Exp(tE-m.currentEffH) + math.Exp(m.currentEffH-tE)
			accept = rng.Float64() < ratio
		}
		if accept {
			m.lat.Spins[i].S = -m.lat.Spins[i].S
			m.sweepDeltas = append(m.sweepDeltas, math.Abs(tE-m.currentEffH))
			m.currentEffH = tE
		}
	}

	return nil
}

// adaptGroupSize applies the hybrid granularity heuristic. Checked in
// this order (the tie-break matters): when the group can still shrink
// and the sweep diverged (sum more than doubled), converged (did not
// grow) or stagnated (zero change), halve the group (floor 1); else
// grow it when the lattice is still disordered (|magnetization| below
// half the spin count).
func adaptGroupSize(size int, newSum, prevSum float64, magnetization, nSpins int) int {
	if size < 1 {
		size = 1
	}

	if size > 1 && (newSum > prevSum*2 || newSum <= prevSum || newSum == 0) {
		size /= 2
		if size < 1 {
			size = 1
		}
	} else if intAbs(magnetization) < nSpins/2 {
		size *= 2
	}

	return size
}

// groupProposal is one hybrid joint-flip candidate. The uniform draw
// is taken at partition time so acceptance order never depends on how
// proposals were evaluated.
type groupProposal struct {
	flips  []int
	u      float64
	energy float64
}

// hybridSweep partitions all spin indices into random groups of the
// current adaptive size (sampled without replacement; the remainder
// forms the final group), then evaluates and applies the group
// proposals.
//
// Proposal energies are evaluated on an errgroup worker pool bounded
// by the thread count, in batches; acceptance is applied strictly in
// submission order against the shared Hamiltonian baseline, and any
// proposal whose evaluation predates an acceptance in its batch is
// re-evaluated first. Results are therefore bit-identical to a fully
// sequential sweep for every thread count.
func (m *Model) hybridSweep(rng *rand.Rand) error {
	n := m.lat.NumSpins()

	pop := make([]int, n)
	for i := range pop {
		pop[i] = i
	}

	var groups []groupProposal
	for len(pop) > 0 {
		var g []int
		if m.groupSize > len(pop) {
			g = append(g, pop...)
			pop = pop[:0]
		} else {
			g = make([]int, 0, m.groupSize)
			for j := 0; j < m.groupSize; j++ {
				idx := rng.Intn(len(pop))
				g = append(g, pop[idx])
				pop = append(pop[:idx], pop[idx+1:]...)
			}
		}
		groups = append(groups, groupProposal{flips: g, u: rng.Float64()})
	}

	for start := 0; start < len(groups); start += m.nThreads {
		end := start + m.nThreads
		if end > len(groups) {
			end = len(groups)
		}
		batch := groups[start:end]

		if m.nThreads > 1 && len(batch) > 1 {
			if err := m.applyBatchParallel(batch); err != nil {
				return err
			}
			continue
		}
		for i := range batch {
			e, err := m.EffHamiltonian(batch[i].flips...)
			if err != nil {
				return err
			}
			batch[i].energy = e
			m.applyGroup(&batch[i])
		}
	}

	return nil
}

// applyBatchParallel evaluates a batch of group proposals concurrently
// against the current lattice (read-only during the evaluation phase),
// then applies acceptance sequentially in submission order. Once any
// group in the batch is accepted, the lattice has changed and every
// later proposal is stale, so it is re-evaluated synchronously before
// its acceptance test.
func (m *Model) applyBatchParallel(batch []groupProposal) error {
	var eg errgroup.Group
	eg.SetLimit(m.nThreads)
	for i := range batch {
		i := i
		eg.Go(func() error {
			e, err := m.EffHamiltonian(batch[i].flips...)
			batch[i].energy = e

			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	stale := false
	for i := range batch {
		if stale {
			e, err := m.EffHamiltonian(batch[i].flips...)
			if err != nil {
				return err
			}
			batch[i].energy = e
		}
		if m.applyGroup(&batch[i]) {
			stale = true
		}
	}

	return nil
}

// applyGroup runs the Metropolis acceptance test for one group
// proposal against the shared baseline and, on acceptance, flips the
// whole group atomically, records |ΔE| and advances the baseline.
func (m *Model) applyGroup(p *groupProposal) bool {
	delta := p.energy - m.currentEffH
	if delta >= 0 && p.u >= math.Exp(-delta) {
		return false
	}

	for _, i := range p.flips {
		m.lat.Spins[i].S = -m.lat.Spins[i].S
	}
	m.sweepDeltas = append(m.sweepDeltas, math.Abs(delta))
	m.currentEffH = p.energy

	return true
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
