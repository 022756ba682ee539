// Package thd measures harmonic distortion of a sine response.
//
// The signal is windowed, transformed with algo-fft and reduced to
// per-harmonic amplitudes. Each amplitude is the root of the power summed
// over the window's main lobe, so leakage does not bias the ratios.
package thd

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-strip/dsp/window"
)

const (
	defaultRangeLowerHz = 20.0
	defaultRangeUpperHz = 20000.0
	defaultMaxHarmonics = 9
)

// Config holds analysis parameters. Zero fields take defaults.
type Config struct {
	SampleRate float64
	// FFTSize defaults to the next power of two of the signal length.
	FFTSize int
	// FundamentalFreq, when zero, is taken from the strongest bin in range.
	FundamentalFreq float64
	RangeLowerFreq  float64
	RangeUpperFreq  float64
	// CaptureBins is the half width summed around each harmonic; zero uses
	// the window main-lobe width.
	CaptureBins  int
	MaxHarmonics int
	// WindowType defaults to Hann; the rectangular window is not used.
	WindowType window.Type
}

// Result holds distortion ratios relative to the fundamental amplitude.
type Result struct {
	FundamentalFreq  float64
	FundamentalLevel float64
	THD              float64
	THDN             float64
	OddHD            float64
	EvenHD           float64

	// Harmonics holds H2, H3, ... relative amplitudes.
	Harmonics []float64

	// FundamentalAmplitude is the fundamental's peak amplitude in signal
	// units, corrected for window gain. Set by Analyze only.
	FundamentalAmplitude float64
}

// THDdB returns THD in dB.
func (r Result) THDdB() float64 {
	return ratioToDB(r.THD)
}

// SINAD returns the signal to noise-and-distortion ratio in dB.
func (r Result) SINAD() float64 {
	if r.THDN <= 0 {
		return math.Inf(1)
	}

	return -ratioToDB(r.THDN)
}

var errEmptySignal = errors.New("thd: signal is empty")

// Analyzer runs repeated analyses with one configuration.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer validates cfg and applies defaults.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return nil, fmt.Errorf("thd: sample rate must be positive and finite: %f", cfg.SampleRate)
	}

	if cfg.FFTSize < 0 || (cfg.FFTSize > 0 && cfg.FFTSize&(cfg.FFTSize-1) != 0) {
		return nil, fmt.Errorf("thd: fft size must be a power of two: %d", cfg.FFTSize)
	}

	if cfg.FundamentalFreq < 0 || cfg.FundamentalFreq >= cfg.SampleRate/2 {
		return nil, fmt.Errorf("thd: fundamental must be in [0, nyquist): %f", cfg.FundamentalFreq)
	}

	return &Analyzer{cfg: normalizeConfig(cfg)}, nil
}

// AnalyzeSignal performs one-shot analysis of signal.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return Result{}, err
	}

	return a.Analyze(signal)
}

// Analyze windows signal, transforms it and evaluates distortion.
func (a *Analyzer) Analyze(signal []float64) (Result, error) {
	if len(signal) == 0 {
		return Result{}, errEmptySignal
	}

	fftSize := a.cfg.FFTSize
	if fftSize == 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	n := min(len(signal), fftSize)
	coeffs := window.Generate(a.cfg.WindowType, n, window.WithPeriodic())

	frame := make([]float64, n)
	copy(frame, signal)

	if err := window.ApplyCoefficientsInPlace(frame, coeffs); err != nil {
		return Result{}, fmt.Errorf("thd: window: %w", err)
	}

	enbw, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Result{}, fmt.Errorf("thd: window: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("thd: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("thd: fft: %w", err)
	}

	power := make([]float64, fftSize/2+1)
	for i := range power {
		power[i] = real(out[i])*real(out[i]) + imag(out[i])*imag(out[i])
	}

	res := a.FromPower(power, fftSize)

	// One-sided lobe power of a windowed sine of amplitude A is
	// A^2 * fftSize * n * ENBW * CG^2 / 4.
	scale := window.CoherentGain(coeffs) * math.Sqrt(float64(fftSize)*float64(n)*enbw)
	if scale > 0 {
		res.FundamentalAmplitude = 2 * res.FundamentalLevel / scale
	}

	return res, nil
}

// FromPower evaluates distortion from a one-sided power spectrum of an
// fftSize-point transform.
func (a *Analyzer) FromPower(power []float64, fftSize int) Result {
	if len(power) < 2 || fftSize < 2 {
		return Result{}
	}

	cfg := a.cfg
	maxBin := len(power) - 1
	binHz := cfg.SampleRate / float64(fftSize)

	lowerBin := clampInt(int(math.Round(cfg.RangeLowerFreq/binHz)), 1, maxBin)
	upperBin := clampInt(int(math.Round(cfg.RangeUpperFreq/binHz)), lowerBin, maxBin)

	f0 := cfg.FundamentalFreq
	fundamentalBin := 0
	if f0 > 0 {
		fundamentalBin = clampInt(int(math.Round(f0/binHz)), lowerBin, upperBin)
	} else {
		fundamentalBin = strongestBin(power, lowerBin, upperBin)
		f0 = float64(fundamentalBin) * binHz
	}

	capture := cfg.CaptureBins
	if capture == 0 {
		capture = window.Info(cfg.WindowType).FirstMinimumBins
	}

	capture = min(capture, fundamentalBin/2)

	fundamental := lobeAmplitude(power, fundamentalBin, capture)
	if fundamental <= 0 {
		return Result{FundamentalFreq: f0}
	}

	var harmonicPower, oddPower, evenPower float64

	harmonics := make([]float64, 0, cfg.MaxHarmonics)
	for k := 2; k <= cfg.MaxHarmonics+1; k++ {
		bin := int(math.Round(float64(k) * f0 / binHz))
		if bin > upperBin {
			break
		}

		amp := lobeAmplitude(power, bin, capture)
		harmonics = append(harmonics, amp/fundamental)

		harmonicPower += amp * amp
		if k%2 == 0 {
			evenPower += amp * amp
		} else {
			oddPower += amp * amp
		}
	}

	totalPower := 0.0
	for i := lowerBin; i <= upperBin; i++ {
		totalPower += power[i]
	}

	restPower := math.Max(totalPower-fundamental*fundamental, 0)

	return Result{
		FundamentalFreq:  f0,
		FundamentalLevel: fundamental,
		THD:              math.Sqrt(harmonicPower) / fundamental,
		THDN:             math.Sqrt(restPower) / fundamental,
		OddHD:            math.Sqrt(oddPower) / fundamental,
		EvenHD:           math.Sqrt(evenPower) / fundamental,
		Harmonics:        harmonics,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.RangeLowerFreq <= 0 {
		cfg.RangeLowerFreq = defaultRangeLowerHz
	}

	if cfg.RangeUpperFreq <= 0 {
		cfg.RangeUpperFreq = math.Min(defaultRangeUpperHz, cfg.SampleRate/2)
	}

	if cfg.RangeUpperFreq < cfg.RangeLowerFreq {
		cfg.RangeUpperFreq = cfg.RangeLowerFreq
	}

	if cfg.WindowType == window.TypeRectangular {
		cfg.WindowType = window.TypeHann
	}

	if cfg.CaptureBins < 0 {
		cfg.CaptureBins = 0
	}

	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	return cfg
}

// lobeAmplitude returns sqrt of the power summed over bin +- capture.
func lobeAmplitude(power []float64, bin, capture int) float64 {
	if bin < 0 || bin >= len(power) {
		return 0
	}

	lo := max(bin-capture, 0)
	hi := min(bin+capture, len(power)-1)

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += power[i]
	}

	return math.Sqrt(sum)
}

func strongestBin(power []float64, lo, hi int) int {
	best := lo
	for i := lo + 1; i <= hi; i++ {
		if power[i] > power[best] {
			best = i
		}
	}

	return best
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

func clampInt(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
