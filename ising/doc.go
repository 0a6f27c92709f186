// Package ising evaluates and simulates the nearest-neighbor (plus
// power-law long-range) Ising Hamiltonian on fractal lattices built by
// package lattice.
//
// What:
//
//   - Model owns the configuration, the built lattice, and every
//     diagnostic accumulator; there is no ambient/static state.
//   - EffHamiltonian returns the effective (temperature-scaled) energy
//     of the current or a hypothetically flipped spin configuration.
//   - PartitionFunction enumerates all 2^N flip subsets exactly, for
//     validating the stochastic engine on small lattices.
//   - RunMonteCarlo performs a fixed number of full-lattice sweeps
//     with one of three update rules: single-spin Metropolis,
//     single-spin heat-bath, or adaptive group ("hybrid") updates.
//
// Determinism:
//
//   - All randomness flows from one seeded source; seed 0 selects a
//     fixed default. Hybrid group proposals may be evaluated on a
//     worker pool sized by SetNumThreads, but acceptance is applied in
//     submission order with stale proposals re-evaluated, so results
//     are bit-identical for every thread count.
//
// Workflow:
//
//	m := ising.NewModel()
//	m.SetHausdorffDimension(1.58)
//	m.SetTemperature(2.0)
//	if err := m.Setup(); err != nil { ... }   // builds the lattice
//	if err := m.RunMonteCarlo(); err != nil { ... }
//	mag := m.Magnetization()
//
// Setters silently ignore out-of-domain values (the previous valid
// value is kept); structural failures surface as sentinel errors from
// Setup and RunMonteCarlo and are not recoverable; callers must treat
// them as fatal.
//
// Complexity:
//
//   - EffHamiltonian: O(N·p·f) with N spins, p axes, f flip-set size.
//   - PartitionFunction: O(2^N · N·p) — validation lattices only.
//   - One sweep: O(N^2·p) (every proposal re-evaluates the lattice).
//
// Errors:
//
//   - ErrNotSetup: evaluation or simulation before a successful Setup.
//   - ErrSpinIndex: a flip index outside [0, NumSpins).
//   - ErrEnumTooLarge: partition enumeration beyond 62 free spins.
//   - lattice sentinels (ErrInvalidScale, …) forwarded by Setup.
package ising
