package ising_test

import (
	"fmt"

	"github.com/lankagege/HausdorffIsingModel/ising"
)

// ExampleModel builds the smallest fractal chain and reads its
// observables before any simulation.
func ExampleModel() {
	m := ising.NewModel()
	m.SetHausdorffDimension(1)
	m.SetHausdorffSlices(2)
	m.SetLatticeDepth(1)
	m.SetInteractionSigma(0)
	m.SetCouplingConsts(1, 1)
	m.SetTemperature(1)

	if err := m.Setup(); err != nil {
		fmt.Println("setup:", err)
		return
	}

	e, _ := m.EffHamiltonian()
	fmt.Println("spins:", m.NumSpins())
	fmt.Println("dims: ", m.LatticeDimensions())
	fmt.Println("mag:  ", m.Magnetization())
	fmt.Println("effH: ", e)
	// Output:
	// spins: 4
	// dims:  [4]
	// mag:   4
	// effH:  -7
}

// ExampleModel_partitionFunction validates the evaluator on a lattice
// small enough to enumerate exactly.
func ExampleModel_partitionFunction() {
	m := ising.NewModel()
	m.SetHausdorffDimension(1)
	m.SetHausdorffSlices(2)
	m.SetLatticeDepth(1)
	m.SetInteractionSigma(0)
	m.SetCouplingConsts(0, 1)
	m.SetTemperature(1)
	if err := m.Setup(); err != nil {
		fmt.Println("setup:", err)
		return
	}

	z, err := m.Z()
	if err != nil {
		fmt.Println("enumerate:", err)
		return
	}
	fmt.Printf("Z over %d configurations: %.4f\n", 1<<m.NumSpins(), z)
	// Output:
	// Z over 16 configurations: 58.7876
}
