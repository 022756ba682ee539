//go:build fastmath

package character

import (
	"github.com/meko-christian/algo-approx"
)

// tanhSaturated is the argument beyond which tanh equals 1 in float64.
const tanhSaturated = 19.0

// tanhPositive computes tanh(x) for x >= 0 using a fast exponential.
// Uses the identity: tanh(x) = (1 - e^(-2x)) / (1 + e^(-2x))
func tanhPositive(x float64) float64 {
	if x >= tanhSaturated {
		return 1
	}

	e := approx.FastExp(-2 * x)
	return (1 - e) / (1 + e)
}
