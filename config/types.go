// Package config - typed run configuration and validation.
package config

import (
	"github.com/lankagege/HausdorffIsingModel/ising"
	"github.com/lankagege/HausdorffIsingModel/lattice"
)

// LatticeConfig describes the fractal geometry of a run.
type LatticeConfig struct {
	// Dimension is the target Hausdorff dimension, > 0.
	Dimension float64 `yaml:"dimension"`
	// Method is "SCALING" or "SPLITTING".
	Method string `yaml:"method"`
	// Slices is the self-similar copy count (>= 2); read under SCALING.
	Slices int `yaml:"slices"`
	// Scale is the shrink ratio in (0,1); read under SPLITTING.
	Scale float64 `yaml:"scale"`
	// Depth is the recursion depth, >= 1.
	Depth int `yaml:"depth"`
}

// CouplingConfig describes the Hamiltonian couplings.
type CouplingConfig struct {
	// H is the magnetic field coupling.
	H float64 `yaml:"h"`
	// J is the neighbor coupling.
	J float64 `yaml:"j"`
	// Sigma is the long-range distance exponent.
	Sigma float64 `yaml:"sigma"`
}

// Config is one complete run description.
type Config struct {
	// Threads sizes the hybrid worker pool, >= 1.
	Threads int `yaml:"threads"`
	// Steps is the Monte Carlo sweep count, >= 1.
	Steps int `yaml:"steps"`
	// Seed fixes the random stream; 0 selects the library default.
	Seed int64 `yaml:"seed"`
	// Lattice is the fractal geometry.
	Lattice LatticeConfig `yaml:"lattice"`
	// Couplings are the Hamiltonian constants.
	Couplings CouplingConfig `yaml:"couplings"`
	// Temperature is kbT, >= 0.
	Temperature float64 `yaml:"temperature"`
	// MCMethod is "METROPOLIS", "HEATBATH" or "HYBRID".
	MCMethod string `yaml:"mc_method"`
}

// DefaultConfig mirrors ising.NewModel's reference defaults.
func DefaultConfig() *Config {
	return &Config{
		Threads: 1,
		Steps:   10000,
		Lattice: LatticeConfig{
			Dimension: 1,
			Method:    lattice.MethodScaling.String(),
			Slices:    2,
			Scale:     1.0 / 3.0,
			Depth:     1,
		},
		Couplings: CouplingConfig{
			H:     1,
			J:     1,
			Sigma: 1,
		},
		Temperature: 1,
		MCMethod:    ising.Metropolis.String(),
	}
}

// Validate checks every field against the domains the ising setters
// enforce, returning the first violation's sentinel.
func (c *Config) Validate() error {
	if c.Threads < 1 {
		return ErrInvalidThreads
	}
	if c.Steps < 1 {
		return ErrInvalidSteps
	}
	if c.Lattice.Dimension <= 0 {
		return ErrInvalidDimension
	}
	method, err := ParseMethod(c.Lattice.Method)
	if err != nil {
		return err
	}
	switch method {
	case lattice.MethodScaling:
		if c.Lattice.Slices < 2 {
			return ErrInvalidSlices
		}
	case lattice.MethodSplitting:
		if c.Lattice.Scale <= 0 || c.Lattice.Scale >= 1 {
			return ErrInvalidScale
		}
	}
	if c.Lattice.Depth < 1 {
		return ErrInvalidDepth
	}
	if c.Temperature < 0 {
		return ErrInvalidTemperature
	}
	if _, err = ising.ParseMCMethod(c.MCMethod); err != nil {
		return ErrInvalidMCMethod
	}

	return nil
}

// Apply configures a fresh ising.Model from c. Validate runs first so
// a hand-built Config can never half-configure a model.
func (c *Config) Apply() (*ising.Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	method, _ := ParseMethod(c.Lattice.Method)
	mcMethod, _ := ising.ParseMCMethod(c.MCMethod)

	m := ising.NewModel()
	m.SetNumThreads(c.Threads)
	m.SetNumMCSteps(c.Steps)
	m.SetRandomSeed(c.Seed)
	m.SetHausdorffDimension(c.Lattice.Dimension)
	m.SetHausdorffMethod(method)
	if c.Lattice.Slices >= 2 {
		m.SetHausdorffSlices(c.Lattice.Slices)
	}
	if c.Lattice.Scale > 0 && c.Lattice.Scale < 1 {
		m.SetHausdorffScale(c.Lattice.Scale)
	}
	m.SetLatticeDepth(c.Lattice.Depth)
	m.SetCouplingConsts(c.Couplings.H, c.Couplings.J)
	m.SetInteractionSigma(c.Couplings.Sigma)
	m.SetTemperature(c.Temperature)
	m.SetMCMethod(mcMethod)

	return m, nil
}

// ParseMethod maps a canonical construction-method name to its
// lattice.Method value.
func ParseMethod(name string) (lattice.Method, error) {
	switch name {
	case "SCALING":
		return lattice.MethodScaling, nil
	case "SPLITTING":
		return lattice.MethodSplitting, nil
	default:
		return 0, ErrInvalidMethod
	}
}
