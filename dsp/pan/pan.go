// Package pan maps a pan position to a pair of channel gains.
//
// Positions run from -1 (hard left) through 0 (center) to +1 (hard right).
// The constant-power law keeps left² + right² = 1 across the whole range, so
// the center position is -3 dB on each side rather than unity.
package pan

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-strip/dsp/core"
)

// Law selects a panning curve.
type Law int

const (
	// LawConstantPower uses the sine/cosine quarter-circle curve.
	LawConstantPower Law = iota
	// LawLinear crossfades gains linearly; the center is -6 dB per side.
	LawLinear
)

var lawNames = map[Law]string{
	LawConstantPower: "constant-power",
	LawLinear:        "linear",
}

// String returns the law name.
func (l Law) String() string {
	if name, ok := lawNames[l]; ok {
		return name
	}

	return "unknown"
}

// ParseLaw returns the law with the given name.
func ParseLaw(name string) (Law, error) {
	for l, n := range lawNames {
		if n == name {
			return l, nil
		}
	}

	return 0, fmt.Errorf("pan: unknown law %q", name)
}

// Angle maps pos to the quarter-circle angle θ in [0, π/2].
// Out-of-range positions are clamped; NaN is treated as center.
func Angle(pos float64) float64 {
	return (position(pos) + 1) * math.Pi / 4
}

func position(pos float64) float64 {
	if math.IsNaN(pos) {
		return 0
	}

	return core.Clamp(pos, -1, 1)
}

// ConstantPower returns the constant-power gains for pos.
func ConstantPower(pos float64) (left, right float64) {
	theta := Angle(pos)
	return math.Cos(theta), math.Sin(theta)
}

// Linear returns linear crossfade gains for pos.
func Linear(pos float64) (left, right float64) {
	g := (position(pos) + 1) / 2
	return 1 - g, g
}

// Gains returns the channel gains for pos under law. Unknown laws are
// silent.
func Gains(law Law, pos float64) (left, right float64) {
	switch law {
	case LawConstantPower:
		return ConstantPower(pos)
	case LawLinear:
		return Linear(pos)
	default:
		return 0, 0
	}
}
