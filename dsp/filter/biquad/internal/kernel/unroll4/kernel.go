// Package unroll4 registers a four-way unrolled biquad kernel for CPUs
// with wide vector units. The recursion is serial, so the unrolling only
// hoists coefficient loads and bounds checks.
package unroll4

import "github.com/cwbudde/algo-strip/dsp/filter/biquad/internal/kernel/registry"

// ProcessBlock filters buf in place four samples per iteration.
func ProcessBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	n := len(buf)
	i := 0
	for ; i+3 < n; i += 4 {
		s := buf[i : i+4 : i+4]

		y := b0*s[0] + d0
		d0 = b1*s[0] - a1*y + d1
		d1 = b2*s[0] - a2*y
		s[0] = y

		y = b0*s[1] + d0
		d0 = b1*s[1] - a1*y + d1
		d1 = b2*s[1] - a2*y
		s[1] = y

		y = b0*s[2] + d0
		d0 = b1*s[2] - a1*y + d1
		d1 = b2*s[2] - a2*y
		s[2] = y

		y = b0*s[3] + d0
		d0 = b1*s[3] - a1*y + d1
		d1 = b2*s[3] - a2*y
		s[3] = y
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
