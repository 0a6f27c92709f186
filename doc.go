// Package hausdorffising builds self-similar (fractal) Ising spin
// lattices of configurable Hausdorff dimension and simulates their
// thermodynamics with Monte Carlo spin-flip dynamics.
//
// 🚀 What does it do?
//
//	A pure-Go library that brings together:
//		• Fractal geometry: recursive hypercube placement at any
//		  Hausdorff dimension, built from mixed-radix odometers
//		• Effective Hamiltonian: nearest-neighbor + power-law
//		  long-range Ising couplings, temperature-scaled
//		• Exact validation: brute-force 2^N partition-function
//		  enumeration for small lattices
//		• Monte Carlo: Metropolis, heat-bath and adaptive group
//		  ("hybrid") update rules with deterministic seeding
//
// ✨ Why choose it?
//
//   - Deterministic – fixed seeds reproduce runs bit-for-bit,
//     including the multi-worker hybrid mode
//   - Embeddable – no CLI, no plotting, no hidden globals; drivers
//     consume configuration setters and query observables
//   - Validated – closed-form spin counts, symmetry invariants and
//     exact partition sums back the stochastic engine
//
// Everything is organized under three subpackages:
//
//	lattice/ — Spin and Lattice types, fractal hypercube builder
//	ising/   — energy evaluator, partition function, Monte Carlo engine
//	config/  — YAML run configuration with validation
//
// Quick sketch (dimension 1, slices 2, depth 1):
//
//	●──●   ●──●
//	0  r   1-r 1
//
//	two self-similar copies of the unit interval, spins at the
//	endpoints of each copy.
//
// Dive into the package docs for contracts, complexity notes and
// worked examples.
package hausdorffising
