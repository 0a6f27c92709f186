// Package lattice - core types, construction parameters, and sentinel
// errors for fractal spin-lattice geometry.
package lattice

import (
	"errors"
	"math"
)

// Sentinel errors for lattice construction.
var (
	// ErrDimension indicates a non-positive Hausdorff dimension.
	ErrDimension = errors.New("lattice: Hausdorff dimension must be > 0")
	// ErrSlices indicates a slice count below 2.
	ErrSlices = errors.New("lattice: slice count must be >= 2")
	// ErrDepth indicates a recursion depth below 1.
	ErrDepth = errors.New("lattice: recursion depth must be >= 1")
	// ErrScale indicates a scale factor outside (0,1).
	ErrScale = errors.New("lattice: scale factor must lie in (0,1)")
	// ErrMethod indicates an unknown construction method.
	ErrMethod = errors.New("lattice: unknown Hausdorff construction method")
	// ErrInvalidScale indicates a derived geometry with overlapping
	// self-similar copies (scale > 1/slices). Structurally fatal:
	// no lattice can be built from such parameters.
	ErrInvalidScale = errors.New("lattice: invalid Hausdorff scaling (copies overlap)")
)

// overlapSlack absorbs exp/log rounding when a derived scale lands on
// the exact tiling boundary 1/slices.
const overlapSlack = 1e-9

// Method selects how the self-similarity relation is closed.
type Method int

const (
	// MethodScaling fixes the slice count and derives the shrink ratio.
	MethodScaling Method = iota
	// MethodSplitting fixes the shrink ratio and derives the slice count.
	MethodSplitting
)

// String returns the canonical spelling used in configuration files.
func (m Method) String() string {
	switch m {
	case MethodScaling:
		return "SCALING"
	case MethodSplitting:
		return "SPLITTING"
	default:
		return "UNKNOWN"
	}
}

// Spin is a single lattice site.
//
// Inactive spins are bookkeeping placeholders and must be excluded
// from every sum and from neighbor lookups.
type Spin struct {
	// S is the spin state, +1 or -1.
	S int
	// Active reports whether the site participates in the model.
	Active bool
	// Coords is the site position, one entry per spatial axis,
	// each in [0,1].
	Coords []float64
}

// Lattice is the built fractal geometry: spins sorted in
// non-decreasing lexicographic coordinate order, plus the per-axis
// count of addressable sites. It is exclusively owned by its model;
// external aliasing is not permitted.
type Lattice struct {
	// Spins is the ordered site sequence.
	Spins []Spin
	// Dims records, per axis, the number of addressable sites.
	Dims []int
	// Slices is the (possibly derived) self-similar copy count.
	Slices int
	// Scale is the (possibly derived) shrink ratio per depth.
	Scale float64
	// Depth is the recursion depth the lattice was built to.
	Depth int
}

// NumSpins returns the number of sites, duplicates included.
func (l *Lattice) NumSpins() int { return len(l.Spins) }

// AxisCount returns the number of spatial axes, ⌈D⌉.
func (l *Lattice) AxisCount() int { return len(l.Dims) }

// Params are the immutable construction inputs.
type Params struct {
	// HausdorffDim is the target fractal dimension, > 0.
	HausdorffDim float64
	// Slices is the number of self-similar copies per subdivision, >= 2.
	// Ignored (derived) under MethodSplitting.
	Slices int
	// Scale is the shrink ratio per depth, in (0,1).
	// Ignored (derived) under MethodScaling.
	Scale float64
	// Depth is the recursion depth, >= 1.
	Depth int
	// Method closes the self-similarity relation.
	Method Method
}

// Validate checks Params domains without deriving the geometry.
// Complexity: O(1).
func (p Params) Validate() error {
	if p.HausdorffDim <= 0 {
		return ErrDimension
	}
	if p.Depth < 1 {
		return ErrDepth
	}
	switch p.Method {
	case MethodScaling:
		if p.Slices < 2 {
			return ErrSlices
		}
	case MethodSplitting:
		if p.Scale <= 0 || p.Scale >= 1 {
			return ErrScale
		}
	default:
		return ErrMethod
	}

	return nil
}

// derive closes the self-similarity relation r = s^(−⌈D⌉/D) and
// returns the effective (slices, scale) pair, rejecting overlapping
// geometries.
func (p Params) derive() (int, float64, error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}

	var (
		axes   = math.Ceil(p.HausdorffDim)
		slices = p.Slices
		scale  = p.Scale
	)
	switch p.Method {
	case MethodScaling:
		scale = math.Exp(-axes * math.Log(float64(slices)) / p.HausdorffDim)
	case MethodSplitting:
		slices = int(math.Round(math.Exp(-p.HausdorffDim * math.Log(scale) / axes)))
		if slices < 2 {
			return 0, 0, ErrSlices
		}
	}

	// Copies of width scale must fit side by side: scale <= 1/slices.
	// Integer dimensions land exactly on the boundary (scale = 1/slices),
	// so the comparison must tolerate the rounding of the exp/log
	// derivation.
	if scale*float64(slices) > 1+overlapSlack {
		return 0, 0, ErrInvalidScale
	}

	return slices, scale, nil
}

// PredictSpinCount returns the closed-form number of spins Build will
// produce for p: 2^p_axes · slices^(p_axes·depth), duplicates at shared
// corners included. It fails with the same sentinels as Build.
// Complexity: O(1).
func PredictSpinCount(p Params) (int, error) {
	slices, _, err := p.derive()
	if err != nil {
		return 0, err
	}
	axes := int(math.Ceil(p.HausdorffDim))

	count := 1
	for i := 0; i < axes; i++ {
		count *= 2
	}
	for i := 0; i < axes*p.Depth; i++ {
		count *= slices
	}

	return count, nil
}
