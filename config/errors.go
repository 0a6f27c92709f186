// Package config - sentinel errors for loading and validation.
package config

import "errors"

// Validation errors.
var (
	ErrInvalidThreads     = errors.New("config: threads must be >= 1")
	ErrInvalidSteps       = errors.New("config: steps must be >= 1")
	ErrInvalidDimension   = errors.New("config: lattice dimension must be > 0")
	ErrInvalidMethod      = errors.New("config: unknown lattice method")
	ErrInvalidSlices      = errors.New("config: lattice slices must be >= 2")
	ErrInvalidScale       = errors.New("config: lattice scale must lie in (0,1)")
	ErrInvalidDepth       = errors.New("config: lattice depth must be >= 1")
	ErrInvalidTemperature = errors.New("config: temperature must be >= 0")
	ErrInvalidMCMethod    = errors.New("config: unknown Monte Carlo method")
)

// Loading errors.
var (
	ErrFileNotFound = errors.New("config: configuration file not found")
	ErrParse        = errors.New("config: configuration parse error")
)
