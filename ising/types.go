// Package ising - Model type, settings, enums, and sentinel errors.
package ising

import (
	"errors"

	"github.com/lankagege/HausdorffIsingModel/lattice"
)

// Sentinel errors for simulation operations.
var (
	// ErrNotSetup indicates Setup has not succeeded since the last
	// invalidation; evaluation and simulation are undefined without a
	// built lattice.
	ErrNotSetup = errors.New("ising: model has not been set up")
	// ErrSpinIndex indicates a flip index outside [0, NumSpins).
	ErrSpinIndex = errors.New("ising: spin index out of range")
	// ErrEnumTooLarge indicates a partition-function enumeration over
	// more than 62 free spins, which cannot be represented as a subset
	// bitmask (and would not terminate in this universe anyway).
	ErrEnumTooLarge = errors.New("ising: partition enumeration too large")
	// ErrUnknownMethod indicates an unrecognized Monte Carlo method name.
	ErrUnknownMethod = errors.New("ising: unknown Monte Carlo method")
)

// MCMethod selects the Monte Carlo update rule. It is fixed for the
// duration of a run.
type MCMethod int

const (
	// Metropolis proposes single-spin flips with the classic
	// min(1, exp(-ΔE)) acceptance.
	Metropolis MCMethod = iota
	// HeatBath proposes single-spin flips with logistic acceptance
	// exp(-ΔE)/(exp(ΔE)+exp(-ΔE)).
	HeatBath
	// Hybrid proposes joint flips of adaptively sized random spin
	// groups, accepted or rejected atomically by the Metropolis rule.
	Hybrid
)

// String returns the canonical spelling used in configuration files.
func (m MCMethod) String() string {
	switch m {
	case Metropolis:
		return "METROPOLIS"
	case HeatBath:
		return "HEATBATH"
	case Hybrid:
		return "HYBRID"
	default:
		return "UNKNOWN"
	}
}

// ParseMCMethod maps a canonical method name to its MCMethod value.
func ParseMCMethod(name string) (MCMethod, error) {
	switch name {
	case "METROPOLIS":
		return Metropolis, nil
	case "HEATBATH":
		return HeatBath, nil
	case "HYBRID":
		return Hybrid, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// Model is a fractal-lattice Ising simulation. The zero value is not
// usable; construct with NewModel. Model is not safe for concurrent
// use; the hybrid worker pool is an internal detail with exclusive
// lattice access during evaluation phases.
type Model struct {
	// Settings. Mutating any of them invalidates a previous Setup.
	nThreads         int
	nMCSteps         int
	latticeDepth     int
	hausdorffDim     float64
	hausdorffMethod  lattice.Method
	hausdorffSlices  int
	hausdorffScale   float64
	interactionSigma float64
	kbT              float64
	couplingH        float64
	couplingJ        float64
	mcMethod         MCMethod
	seed             int64

	// State.
	lat          *lattice.Lattice
	hasBeenSetup bool

	// Observables and diagnostics, owned by the Model and cleared
	// exactly by Reset.
	magnetization int
	currentEffH   float64
	sweepDeltas   []float64 // |ΔE| per accepted flip, current sweep
	convergence   []float64 // lagged per-sweep ΣΔE history
	groupSize     int       // adaptive hybrid group size
}

// NewModel returns a Model with the reference defaults: a 1-D lattice
// of depth 1 split in two slices, σ=1, kbT=H=J=1, 10000 Metropolis
// sweeps on a single thread.
func NewModel() *Model {
	return &Model{
		nThreads:         1,
		nMCSteps:         10000,
		latticeDepth:     1,
		hausdorffDim:     1,
		hausdorffMethod:  lattice.MethodScaling,
		hausdorffSlices:  2,
		hausdorffScale:   1.0 / 3.0,
		interactionSigma: 1,
		kbT:              1,
		couplingH:        1,
		couplingJ:        1,
		mcMethod:         Metropolis,
	}
}

// Setters. Each silently rejects out-of-domain values (the previous
// valid value is kept, no state mutation) and otherwise invalidates
// the current setup, forcing a rebuild before the next simulation.

// SetNumThreads sets the hybrid worker-pool size (>= 1).
func (m *Model) SetNumThreads(num int) {
	if num < 1 {
		return
	}
	m.nThreads = num
	m.hasBeenSetup = false
}

// SetNumMCSteps sets the number of Monte Carlo sweeps to run (>= 1).
func (m *Model) SetNumMCSteps(num int) {
	if num < 1 {
		return
	}
	m.nMCSteps = num
	m.hasBeenSetup = false
}

// SetLatticeDepth sets the fractal recursion depth (>= 1).
func (m *Model) SetLatticeDepth(num int) {
	if num < 1 {
		return
	}
	m.latticeDepth = num
	m.hasBeenSetup = false
}

// SetHausdorffDimension sets the target fractal dimension (> 0).
func (m *Model) SetHausdorffDimension(dim float64) {
	if dim <= 0 {
		return
	}
	m.hausdorffDim = dim
	m.hasBeenSetup = false
}

// SetHausdorffMethod selects how the self-similarity relation is
// closed: lattice.MethodScaling derives the shrink ratio from the
// slice count, lattice.MethodSplitting derives the slice count from
// the shrink ratio.
func (m *Model) SetHausdorffMethod(method lattice.Method) {
	if method != lattice.MethodScaling && method != lattice.MethodSplitting {
		return
	}
	m.hausdorffMethod = method
	m.hasBeenSetup = false
}

// SetHausdorffSlices sets the number of self-similar copies per
// subdivision (>= 2). Derived, not read, under MethodSplitting.
func (m *Model) SetHausdorffSlices(num int) {
	if num < 2 {
		return
	}
	m.hausdorffSlices = num
	m.hasBeenSetup = false
}

// SetHausdorffScale sets the per-depth shrink ratio, in (0,1).
// Derived, not read, under MethodScaling.
func (m *Model) SetHausdorffScale(scale float64) {
	if scale <= 0 || scale >= 1 {
		return
	}
	m.hausdorffScale = scale
	m.hasBeenSetup = false
}

// SetInteractionSigma sets the long-range distance exponent σ.
func (m *Model) SetInteractionSigma(sigma float64) {
	m.interactionSigma = sigma
	m.hasBeenSetup = false
}

// SetTemperature sets kbT (>= 0). Zero is accepted: the β-scaled
// couplings become infinite and the T→0 acceptance limits apply.
func (m *Model) SetTemperature(kbT float64) {
	if kbT < 0 {
		return
	}
	m.kbT = kbT
	m.hasBeenSetup = false
}

// SetCouplingConsts sets the field coupling H and neighbor coupling J.
func (m *Model) SetCouplingConsts(h, j float64) {
	m.couplingH = h
	m.couplingJ = j
	m.hasBeenSetup = false
}

// SetMCMethod selects the update rule for subsequent runs.
func (m *Model) SetMCMethod(method MCMethod) {
	if method != Metropolis && method != HeatBath && method != Hybrid {
		return
	}
	m.mcMethod = method
	m.hasBeenSetup = false
}

// SetRandomSeed fixes the pseudo-random source. Seed 0 selects the
// package default, keeping runs reproducible either way.
func (m *Model) SetRandomSeed(seed int64) {
	m.seed = seed
	m.hasBeenSetup = false
}

// Getters.

// NumThreads returns the hybrid worker-pool size.
func (m *Model) NumThreads() int { return m.nThreads }

// NumMCSteps returns the configured sweep count.
func (m *Model) NumMCSteps() int { return m.nMCSteps }

// LatticeDepth returns the fractal recursion depth.
func (m *Model) LatticeDepth() int { return m.latticeDepth }

// HausdorffDimension returns the target fractal dimension.
func (m *Model) HausdorffDimension() float64 { return m.hausdorffDim }

// HausdorffMethod returns the configured construction method.
func (m *Model) HausdorffMethod() lattice.Method { return m.hausdorffMethod }

// HausdorffSlices returns the (possibly derived) slice count.
func (m *Model) HausdorffSlices() int { return m.hausdorffSlices }

// HausdorffScale returns the (possibly derived) shrink ratio.
func (m *Model) HausdorffScale() float64 { return m.hausdorffScale }

// InteractionSigma returns the long-range distance exponent.
func (m *Model) InteractionSigma() float64 { return m.interactionSigma }

// Temperature returns kbT.
func (m *Model) Temperature() float64 { return m.kbT }

// Method returns the selected Monte Carlo update rule.
func (m *Model) Method() MCMethod { return m.mcMethod }

// NumSpins returns the spin count of the built lattice (0 before Setup).
func (m *Model) NumSpins() int {
	if m.lat == nil {
		return 0
	}

	return m.lat.NumSpins()
}

// K returns the β-scaled neighbor coupling J/kbT.
func (m *Model) K() float64 { return m.couplingJ / m.kbT }

// H returns the β-scaled field coupling H/kbT.
func (m *Model) H() float64 { return m.couplingH / m.kbT }

// IsSetup reports whether Setup has succeeded since the last
// setting change or Reset.
func (m *Model) IsSetup() bool { return m.hasBeenSetup }

// latticeParams assembles the builder inputs from the current settings.
func (m *Model) latticeParams() lattice.Params {
	return lattice.Params{
		HausdorffDim: m.hausdorffDim,
		Slices:       m.hausdorffSlices,
		Scale:        m.hausdorffScale,
		Depth:        m.latticeDepth,
		Method:       m.hausdorffMethod,
	}
}

// Setup builds the fractal lattice from the current settings. Lattice
// sentinels (structural failures such as lattice.ErrInvalidScale) are
// returned as-is; the model stays unusable until a Setup succeeds.
func (m *Model) Setup() error {
	lat, err := lattice.Build(m.latticeParams())
	if err != nil {
		return err
	}

	m.lat = lat
	// Record the derived side of the self-similarity relation so the
	// getters and Status report the geometry actually built.
	m.hausdorffSlices = lat.Slices
	m.hausdorffScale = lat.Scale
	m.hasBeenSetup = true

	return nil
}

// Reset restores the model to its unbuilt state: lattice, observables
// and every diagnostic buffer are cleared. Settings are kept.
func (m *Model) Reset() {
	m.lat = nil
	m.sweepDeltas = nil
	m.convergence = nil
	m.magnetization = 0
	m.currentEffH = 0
	m.groupSize = 0
	m.hasBeenSetup = false
}
