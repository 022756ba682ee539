//go:build !fastmath

package character

import "math"

// tanhPositive computes tanh(x) for x >= 0 using the standard library.
func tanhPositive(x float64) float64 {
	return math.Tanh(x)
}
