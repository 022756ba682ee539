package character

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-strip/dsp/core"
	"github.com/cwbudde/algo-strip/dsp/filter/biquad"
	"github.com/cwbudde/algo-strip/dsp/filter/design"
)

// NumStages is the number of biquads in the chain.
const NumStages = 3

// Stage table.
const (
	HighpassHz = 20.0
	HighpassQ  = 0.707

	LowShelfHz     = 200.0
	LowShelfQ      = 0.7
	LowShelfGainDB = 0.5

	HighShelfHz     = 10000.0
	HighShelfQ      = 0.7
	HighShelfGainDB = 0.3
)

// maxStageFraction bounds stage frequencies relative to the sample rate so
// low rates still produce stable sections.
const maxStageFraction = 0.45

// Chain is the three-stage character filter for up to core.MaxChannels
// channels.
type Chain struct {
	sampleRate float64
	coeffs     [NumStages]biquad.Coefficients
	sections   [core.MaxChannels][NumStages]biquad.Section
}

// NewChain returns a chain designed for sampleRate.
func NewChain(sampleRate float64) (*Chain, error) {
	c := &Chain{}
	if err := c.Design(sampleRate); err != nil {
		return nil, err
	}

	return c, nil
}

// Design computes stage coefficients for sampleRate and installs them in
// every channel. Delay-line state is left untouched. On error the chain is
// unchanged.
func (c *Chain) Design(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("character: sample rate must be positive and finite: %f", sampleRate)
	}

	limit := maxStageFraction * sampleRate
	coeffs := [NumStages]biquad.Coefficients{
		design.Highpass(math.Min(HighpassHz, limit), HighpassQ, sampleRate),
		design.LowShelf(math.Min(LowShelfHz, limit), LowShelfGainDB, LowShelfQ, sampleRate),
		design.HighShelf(math.Min(HighShelfHz, limit), HighShelfGainDB, HighShelfQ, sampleRate),
	}

	for i, k := range coeffs {
		if k.IsZero() || !k.Stable() {
			return fmt.Errorf("character: stage %d design failed at %f Hz", i, sampleRate)
		}
	}

	c.sampleRate = sampleRate
	c.coeffs = coeffs
	for ch := range c.sections {
		for i := range c.sections[ch] {
			c.sections[ch][i].Coefficients = coeffs[i]
		}
	}

	return nil
}

// Designed reports whether coefficients are installed.
func (c *Chain) Designed() bool {
	return c.sampleRate > 0
}

// SampleRate returns the rate of the last successful Design.
func (c *Chain) SampleRate() float64 {
	return c.sampleRate
}

// Coefficients returns the stage coefficients in processing order.
func (c *Chain) Coefficients() [NumStages]biquad.Coefficients {
	return c.coeffs
}

// ProcessChannel filters buf in place through all stages using channel
// ch's delay lines. Out-of-range channels are ignored.
func (c *Chain) ProcessChannel(ch int, buf []float64) {
	if ch < 0 || ch >= core.MaxChannels {
		return
	}

	for i := range c.sections[ch] {
		c.sections[ch][i].ProcessBlock(buf)
	}
}

// ProcessSample runs one sample through channel ch's stages.
func (c *Chain) ProcessSample(ch int, x float64) float64 {
	if ch < 0 || ch >= core.MaxChannels {
		return x
	}

	for i := range c.sections[ch] {
		x = c.sections[ch][i].ProcessSample(x)
	}

	return x
}

// Reset clears every delay line and keeps the coefficients.
func (c *Chain) Reset() {
	for ch := range c.sections {
		for i := range c.sections[ch] {
			c.sections[ch][i].Reset()
		}
	}
}

// FlushDenormals zeroes delay-line values in the denormal range.
func (c *Chain) FlushDenormals() {
	for ch := range c.sections {
		for i := range c.sections[ch] {
			c.sections[ch][i].FlushDenormals()
		}
	}
}

// State returns channel ch's delay lines, one [d0, d1] per stage.
func (c *Chain) State(ch int) [NumStages][2]float64 {
	var st [NumStages][2]float64
	if ch < 0 || ch >= core.MaxChannels {
		return st
	}

	for i := range c.sections[ch] {
		st[i] = c.sections[ch][i].State()
	}

	return st
}

// Response returns the combined complex response at freqHz.
func (c *Chain) Response(freqHz float64) complex128 {
	h := complex(1, 0)
	for i := range c.coeffs {
		h *= c.coeffs[i].Response(freqHz, c.sampleRate)
	}

	return h
}

// MagnitudeDB returns the combined magnitude response at freqHz in dB.
// It is taken from the complex cascade response, which stays accurate near
// DC where the high-pass attenuates strongly.
func (c *Chain) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz)))
}
