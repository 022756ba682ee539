package strip

import (
	"fmt"
	"math"
	"sync/atomic"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-strip/dsp/character"
	"github.com/cwbudde/algo-strip/dsp/core"
	"github.com/cwbudde/algo-strip/dsp/gain"
	"github.com/cwbudde/algo-strip/dsp/pan"
	"github.com/cwbudde/algo-strip/dsp/smooth"
)

// State is the engine lifecycle state.
type State int32

const (
	// StateUninitialized is the state before Prepare and after Reset.
	// ProcessBlock does nothing.
	StateUninitialized State = iota
	// StatePrepared follows a successful Prepare.
	StatePrepared
	// StateProcessing is entered by the first processed block.
	StateProcessing
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePrepared:
		return "prepared"
	case StateProcessing:
		return "processing"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// MaxSample bounds sample magnitude after the gain stage. Finite input of
// any size stays finite through the fader and the character filters.
const MaxSample = 1e100

// Engine is one channel strip.
type Engine struct {
	controls *Controls
	rampTime float64
	law      pan.Law

	chain     character.Chain
	saturator *character.Saturator

	fader smooth.Linear // linear gain
	pan   smooth.Linear // position
	mute  smooth.Linear // 1 open, 0 muted

	state        atomic.Int32
	sampleRate   float64
	maxBlockSize int
	numChannels  int

	// per-sample gain curves, sized at Prepare
	leftCurve  []float64
	rightCurve []float64

	peaks [core.MaxChannels]atomic.Uint64 // float64 bits
}

// NewEngine returns an unprepared engine.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	sat, err := character.NewSaturator(cfg.drive)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	controls := cfg.controls
	if controls == nil {
		controls = NewControls(DefaultControlState())
	}

	e := &Engine{
		controls:  controls,
		rampTime:  cfg.rampTime,
		law:       pan.LawConstantPower,
		saturator: sat,
	}

	s := controls.Snapshot()
	e.fader.SetImmediate(core.DBToLinear(s.FaderDB))
	e.pan.SetImmediate(s.Pan)
	e.mute.SetImmediate(muteGain(s.Muted))

	return e, nil
}

// Prepare validates the processing format, designs the character filters
// for sampleRate and allocates scratch for blocks of up to maxBlockSize
// samples. Smoothers snap to the current control values and filter state
// is cleared. On error the engine is left uninitialized.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize, numChannels int) error {
	e.state.Store(int32(StateUninitialized))

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	if maxBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, maxBlockSize)
	}

	if numChannels < 1 || numChannels > core.MaxChannels {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidChannelCount, numChannels, core.MaxChannels)
	}

	if !e.chain.Designed() || e.chain.SampleRate() != sampleRate {
		if err := e.chain.Design(sampleRate); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSampleRate, err)
		}
	}

	if cap(e.leftCurve) < maxBlockSize {
		e.leftCurve = make([]float64, maxBlockSize)
		e.rightCurve = make([]float64, maxBlockSize)
	}

	e.leftCurve = e.leftCurve[:maxBlockSize]
	e.rightCurve = e.rightCurve[:maxBlockSize]

	e.sampleRate = sampleRate
	e.maxBlockSize = maxBlockSize
	e.numChannels = numChannels

	s := e.controls.Snapshot()
	e.fader.Reset(e.rampTime, sampleRate)
	e.fader.SetImmediate(core.DBToLinear(s.FaderDB))
	e.pan.Reset(e.rampTime, sampleRate)
	e.pan.SetImmediate(s.Pan)
	e.mute.Reset(e.rampTime, sampleRate)
	e.mute.SetImmediate(muteGain(s.Muted))

	e.chain.Reset()
	e.clearPeaks()

	e.state.Store(int32(StatePrepared))

	return nil
}

// Reset clears the filter delay lines and returns the engine to
// StateUninitialized. Coefficients are kept, so preparing again at the same
// sample rate skips the filter design.
func (e *Engine) Reset() {
	e.chain.Reset()
	e.clearPeaks()
	e.state.Store(int32(StateUninitialized))
}

// ProcessBlock processes block in place, one slice per channel. It is a
// no-op until Prepare succeeds. Blocks longer than the prepared maximum
// are processed in chunks. Channels beyond the prepared count are cleared,
// as are samples past the end of the shortest active channel.
func (e *Engine) ProcessBlock(block [][]float64) {
	if State(e.state.Load()) == StateUninitialized || len(block) == 0 {
		return
	}

	active := min(len(block), e.numChannels)

	n := len(block[0])
	for ch := 1; ch < active; ch++ {
		n = min(n, len(block[ch]))
	}

	s := e.controls.Snapshot()
	e.fader.SetTarget(core.DBToLinear(s.FaderDB))
	e.pan.SetTarget(s.Pan)
	e.mute.SetTarget(muteGain(s.Muted))

	for off := 0; off < n; off += e.maxBlockSize {
		end := min(off+e.maxBlockSize, n)
		if active == 1 {
			e.gainMono(block[0][off:end])
		} else {
			e.gainStereo(block[0][off:end], block[1][off:end])
		}
	}

	for ch := range active {
		limit(block[ch][:n])
		clear(block[ch][n:])
	}

	if s.EmulationEnabled {
		for ch := range active {
			buf := block[ch][:n]
			e.chain.ProcessChannel(ch, buf)
			e.saturator.ProcessInPlace(buf)
		}

		e.chain.FlushDenormals()
	}

	for ch := active; ch < len(block); ch++ {
		clear(block[ch])
	}

	for ch := range e.peaks {
		peak := 0.0
		if ch < active && n > 0 {
			peak = vecmath.MaxAbs(block[ch][:n])
		}

		e.peaks[ch].Store(math.Float64bits(peak))
	}

	e.state.Store(int32(StateProcessing))
}

func (e *Engine) settled() bool {
	return !e.fader.IsSmoothing() && !e.pan.IsSmoothing() && !e.mute.IsSmoothing()
}

func (e *Engine) gainStereo(left, right []float64) {
	if e.settled() {
		l, r := pan.Gains(e.law, e.pan.Current())
		g := e.fader.Current() * e.mute.Current()
		gain.ApplyConstant(left, g*l)
		gain.ApplyConstant(right, g*r)

		return
	}

	lc := e.leftCurve[:len(left)]
	rc := e.rightCurve[:len(right)]
	for i := range lc {
		f := e.fader.Next()
		l, r := pan.Gains(e.law, e.pan.Next())
		m := e.mute.Next()
		lc[i] = gain.Compose(f, m, l)
		rc[i] = gain.Compose(f, m, r)
	}

	gain.ApplyCurve(left, lc)
	gain.ApplyCurve(right, rc)
}

// gainMono applies fader and mute with unity pan. The pan smoother still
// advances so a later stereo block starts from the right position.
func (e *Engine) gainMono(buf []float64) {
	e.pan.Skip(len(buf))

	if e.settled() {
		gain.ApplyConstant(buf, e.fader.Current()*e.mute.Current())
		return
	}

	c := e.leftCurve[:len(buf)]
	for i := range c {
		c[i] = gain.Compose(e.fader.Next(), e.mute.Next(), 1)
	}

	gain.ApplyCurve(buf, c)
}

func (e *Engine) clearPeaks() {
	for ch := range e.peaks {
		e.peaks[ch].Store(0)
	}
}

func limit(buf []float64) {
	for i, v := range buf {
		buf[i] = core.Clamp(v, -MaxSample, MaxSample)
	}
}

func muteGain(muted bool) float64 {
	if muted {
		return 0
	}

	return 1
}

// SetEnabled toggles the character emulation. Takes effect at the next
// block.
func (e *Engine) SetEnabled(enabled bool) { e.controls.SetEmulationEnabled(enabled) }

// Enabled reports whether the character emulation is on.
func (e *Engine) Enabled() bool { return e.controls.EmulationEnabled() }

// SetFaderDB sets the fader level in dB.
func (e *Engine) SetFaderDB(db float64) { e.controls.SetFaderDB(db) }

// FaderDB returns the fader level in dB.
func (e *Engine) FaderDB() float64 { return e.controls.FaderDB() }

// SetPan sets the pan position in [-1, 1].
func (e *Engine) SetPan(pos float64) { e.controls.SetPan(pos) }

// Pan returns the pan position.
func (e *Engine) Pan() float64 { return e.controls.Pan() }

// SetMuted mutes or unmutes the strip.
func (e *Engine) SetMuted(muted bool) { e.controls.SetMuted(muted) }

// Muted reports whether the strip is muted.
func (e *Engine) Muted() bool { return e.controls.Muted() }

// Controls returns the engine's control values for the controller side.
func (e *Engine) Controls() *Controls { return e.controls }

// Peaks returns the per-channel absolute output peak of the last block.
// Safe to call from any goroutine.
func (e *Engine) Peaks() [core.MaxChannels]float64 {
	var out [core.MaxChannels]float64
	for ch := range e.peaks {
		out[ch] = math.Float64frombits(e.peaks[ch].Load())
	}

	return out
}

// State returns the lifecycle state.
func (e *Engine) State() State { return State(e.state.Load()) }

// SampleRate returns the prepared sample rate, or 0.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// MaxBlockSize returns the prepared maximum block size.
func (e *Engine) MaxBlockSize() int { return e.maxBlockSize }

// NumChannels returns the prepared channel count.
func (e *Engine) NumChannels() int { return e.numChannels }

// FilterState returns channel ch's character filter delay lines.
func (e *Engine) FilterState(ch int) [character.NumStages][2]float64 {
	return e.chain.State(ch)
}

// Chain returns the character filter chain for analysis.
func (e *Engine) Chain() *character.Chain { return &e.chain }
