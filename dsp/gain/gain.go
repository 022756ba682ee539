// Package gain composes fader, mute, and pan gains and applies them to
// sample blocks.
//
// The per-sample rule is out = in · fader · mute · pan. Block helpers take a
// precomputed gain curve (one gain per sample, while parameters ramp) or a
// single constant (once every parameter has settled) and use algo-vecmath
// kernels for the multiply.
package gain

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Sample returns x scaled by the composed gain.
func Sample(x, fader, mute, pan float64) float64 {
	return x * Compose(fader, mute, pan)
}

// Compose returns the total linear gain for one sample.
func Compose(fader, mute, pan float64) float64 {
	return fader * mute * pan
}

// ApplyCurve multiplies buf by curve element-wise in place.
// curve must be at least as long as buf.
func ApplyCurve(buf, curve []float64) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, curve[:len(buf)])
}

// ApplyConstant scales buf by g in place. Unity is a no-op and zero clears
// the block so muted output is exactly silent.
func ApplyConstant(buf []float64, g float64) {
	switch g {
	case 1:
		return
	case 0:
		clear(buf)
	default:
		vecmath.ScaleBlockInPlace(buf, g)
	}
}
