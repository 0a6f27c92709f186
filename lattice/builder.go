// Package lattice - recursive fractal hypercube placement.
package lattice

import (
	"math"
	"slices"
)

// Build constructs the fractal spin lattice for p inside the unit
// hypercube of ⌈D⌉ axes.
//
// Contract:
//   - Every spin is created active with S=+1.
//   - Adjacent sub-cubes share corners; the coincident duplicates are
//     kept as distinct entries.
//   - The returned lattice is sorted in non-decreasing lexicographic
//     coordinate order, so stride-based neighbor addressing holds.
//
// Errors: Params sentinels plus ErrInvalidScale for geometries whose
// self-similar copies would overlap.
//
// Complexity: O(M·p·d) placement + O(M·log M·p) sort,
// M = 2^p · slices^(p·d).
func Build(p Params) (*Lattice, error) {
	nSlices, scale, err := p.derive()
	if err != nil {
		return nil, err
	}

	var (
		axes  = int(math.Ceil(p.HausdorffDim))
		depth = p.Depth
	)

	// Addressable sites along each axis: two corners per smallest cube,
	// slices^depth cubes per generating direction.
	dims := make([]int, axes)
	for i := range dims {
		dims[i] = 2 * intPow(nSlices, depth)
	}

	lat := &Lattice{
		Dims:   dims,
		Slices: nSlices,
		Scale:  scale,
		Depth:  depth,
	}
	if n, perr := PredictSpinCount(p); perr == nil {
		lat.Spins = make([]Spin, 0, n)
	}

	// Inter-copy spacing: copies of width scale^k are separated so that
	// slices copies plus gaps tile the parent exactly.
	spacing := 1 + (1/scale-float64(nSlices))/float64(nSlices-1)

	// cubeSide is the edge length of the smallest sub-hypercube.
	cubeSide := math.Pow(scale, float64(depth))

	// One digit per (axis, depth) pair, radix = slices; each state is
	// the lower corner of one smallest sub-hypercube.
	pos := newOdometer(axes*depth, nSlices)
	corner := make([]float64, axes)
	for more := true; more; more = pos.next() {
		// Lower-corner coordinate by geometric-series accumulation
		// across depths.
		for axis := 0; axis < axes; axis++ {
			c := 0.0
			for lvl := 0; lvl < depth; lvl++ {
				digit := pos.digits[axis*depth+lvl]
				c += spacing * math.Pow(scale, float64(depth-lvl)) * float64(digit)
			}
			corner[axis] = c
		}

		// Place one spin at every corner of the sub-hypercube:
		// for axes=2 the inner odometer walks (0,0),(1,0),(0,1),(1,1).
		cube := newOdometer(axes, 2)
		for cmore := true; cmore; cmore = cube.next() {
			s := Spin{S: 1, Active: true, Coords: make([]float64, axes)}
			for axis := 0; axis < axes; axis++ {
				s.Coords[axis] = float64(cube.digits[axis])*cubeSide + corner[axis]
			}
			lat.Spins = append(lat.Spins, s)
		}
	}

	slices.SortFunc(lat.Spins, func(a, b Spin) int {
		return slices.Compare(a.Coords, b.Coords)
	})

	return lat, nil
}

// intPow is integer exponentiation by repeated multiplication; fine
// for the small bases and exponents lattice construction needs.
func intPow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}

	return out
}
