// Package ising - effective-Hamiltonian evaluator.
package ising

import (
	"math"

	"github.com/lankagege/HausdorffIsingModel/lattice"
)

// Lattice coordinates live in the closed unit hypercube; the boundary
// guards in the neighbor sums compare against these exact values.
const (
	xmin = 0.0
	xmax = 1.0
)

// EffHamiltonian returns the effective (dimensionless,
// temperature-scaled) Hamiltonian of the current configuration, with
// every spin listed in flips hypothetically reversed:
//
//	E = −Σ_i h·S_i·f_i − Σ_{i<j adj} K·d(i,j)^(−σ)·S_i·S_j·f_i·f_j
//
// where h = H/kbT, K = J/kbT, f_i = −1 for flipped spins, and d(i,j)
// is the squared Euclidean distance (treated as 1 when σ=0 or when
// the sites coincide). Only active spins contribute. Adjacency is
// index-stride arithmetic over the sorted lattice: for axis j the
// stride is Dims[j]^(p−1−j), with candidates excluded at the axis
// boundaries (no periodic wrap) or when the stride crosses an axis
// seam. Each pair contribution is halved because the sum visits both
// endpoints.
//
// Errors: ErrNotSetup before a successful Setup; ErrSpinIndex for a
// flip index outside [0, NumSpins).
//
// Complexity: O(N·p·f), f = len(flips).
func (m *Model) EffHamiltonian(flips ...int) (float64, error) {
	if !m.hasBeenSetup || m.lat == nil {
		return 0, ErrNotSetup
	}

	var (
		spins = m.lat.Spins
		dims  = m.lat.Dims
		n     = len(spins)
		p     = len(dims)
		h     = m.H()
		k     = m.K()
	)
	for _, f := range flips {
		if f < 0 || f >= n {
			return 0, ErrSpinIndex
		}
	}

	energy := 0.0
	for i := 0; i < n; i++ {
		s := &spins[i]
		if !s.Active {
			continue
		}
		fi := flipSign(flips, i)

		energy -= h * float64(s.S) * fi

		// Nearest-neighbor sum, open boundary conditions.
		for j := 0; j < p; j++ {
			stride := intPow(dims[j], p-1-j)

			// Neighbor below along axis j.
			if i >= stride && s.Coords[j] != xmin && spins[i-stride].Coords[j] != xmax {
				energy -= m.pairTerm(spins, flips, i, i-stride, k, fi)
			}
			// Neighbor above along axis j.
			if i+stride < n && s.Coords[j] != xmax && spins[i+stride].Coords[j] != xmin {
				energy -= m.pairTerm(spins, flips, i, i+stride, k, fi)
			}
		}
	}

	return energy, nil
}

// pairTerm is the halved coupling contribution of the (i, nb) bond as
// seen from i. Inactive neighbors contribute nothing.
func (m *Model) pairTerm(spins []lattice.Spin, flips []int, i, nb int, k, fi float64) float64 {
	if !spins[nb].Active {
		return 0
	}
	fnb := flipSign(flips, nb)

	return k * m.pairWeight(&spins[i], &spins[nb]) *
		float64(spins[i].S) * float64(spins[nb].S) * fi * fnb / 2
}

// pairWeight is the long-range interaction weight d^(−σ) with d the
// squared Euclidean distance; coincident sites and σ=0 both weigh 1.
func (m *Model) pairWeight(a, b *lattice.Spin) float64 {
	if m.interactionSigma == 0 {
		return 1
	}
	d := 0.0
	for c := range a.Coords {
		diff := a.Coords[c] - b.Coords[c]
		d += diff * diff
	}
	if d == 0 {
		return 1
	}

	return math.Pow(d, -m.interactionSigma)
}

// flipSign returns −1 when i is in the flip set, +1 otherwise. Flip
// sets are small (a hybrid group at most), so a linear scan beats any
// map in practice.
func flipSign(flips []int, i int) float64 {
	for _, f := range flips {
		if f == i {
			return -1
		}
	}

	return 1
}

// intPow is integer exponentiation for the small stride bases used in
// neighbor addressing.
func intPow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}

	return out
}
