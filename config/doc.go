// Package config loads and validates simulation run configurations
// from YAML files, decoupling driver programs from the ising package's
// setter surface.
//
// A configuration file describes one run:
//
//	threads: 4
//	steps: 10000
//	seed: 42
//	lattice:
//	  dimension: 1.58
//	  method: SCALING
//	  slices: 2
//	  depth: 3
//	couplings:
//	  h: 0.0
//	  j: 1.0
//	  sigma: 0.0
//	temperature: 2.27
//	mc_method: HYBRID
//
// Load resolves a path (or searches the default locations), fills in
// defaults for omitted fields, and validates every field against the
// same domains the ising setters enforce, so Apply never silently
// drops a value.
package config
