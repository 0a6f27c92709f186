// Package lattice constructs self-similar (fractal) Ising spin
// lattices of configurable Hausdorff dimension.
//
// What:
//
//   - Spin is a single site: state ±1, an active flag, and a
//     coordinate vector inside the unit hypercube.
//   - Lattice is the ordered site collection plus per-axis dimension
//     counts; spins are sorted lexicographically by coordinate so that
//     neighbor lookups reduce to index-stride arithmetic.
//   - Build places spins recursively: at each depth the unit hypercube
//     splits into Slices self-similar copies per axis, every copy
//     position enumerated by a mixed-radix odometer, and one spin is
//     created at every corner of each smallest sub-hypercube.
//
// Why:
//
//   - Fractal spin systems interpolate between integer dimensions,
//     letting phase-transition behavior be studied as a function of a
//     continuous Hausdorff dimension.
//
// Geometry:
//
//   - MethodScaling derives the shrink ratio r from the dimension D
//     and slice count s via r = exp(−⌈D⌉·ln s / D).
//   - MethodSplitting goes the other way: a fixed r determines s.
//   - Copies overlapping (r > 1/s) is structurally invalid and
//     rejected with ErrInvalidScale.
//   - Adjacent copies share corners; coincident duplicate spins are
//     retained on purpose (deduplication would change every
//     downstream spin count and energy).
//
// Complexity:
//
//   - Build: O(M·p·d + M·log M) time, O(M) space, where p = ⌈D⌉,
//     d = depth and M = 2^p · s^(p·d) is the spin count.
//
// Errors:
//
//   - ErrDimension, ErrSlices, ErrDepth, ErrScale, ErrMethod:
//     out-of-domain Params fields.
//   - ErrInvalidScale: the derived geometry would overlap copies.
package lattice
