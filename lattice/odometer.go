// Package lattice - mixed-radix odometer used to enumerate fractal
// copy positions and hypercube corners.
package lattice

// odometer is a fixed-radix digit counter. digits[0] is the
// lowest-order digit; incrementing carries upward, exactly like a
// mechanical odometer. The zero state is the first valid state.
type odometer struct {
	digits []int
	radix  int
}

// newOdometer returns an odometer of n digits in the given radix,
// positioned at the all-zero state.
func newOdometer(n, radix int) *odometer {
	return &odometer{digits: make([]int, n), radix: radix}
}

// next advances to the following state. It reports true while a valid
// state was produced and false once the counter has wrapped past its
// highest digit (the tagged "exhausted" result; the digit vector is
// back at all-zero and must not be consumed further).
// Complexity: amortized O(1), worst case O(n).
func (o *odometer) next() bool {
	for i := range o.digits {
		if o.digits[i] < o.radix-1 {
			o.digits[i]++
			return true
		}
		o.digits[i] = 0
	}

	return false
}
