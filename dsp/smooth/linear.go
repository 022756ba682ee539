package smooth

import "math"

// DefaultRampTime is the ramp duration in seconds used by the channel strip
// for fader, pan, and mute transitions.
const DefaultRampTime = 0.05

// Linear is a linearly smoothed value.
//
// The zero value holds 0 and has no ramp configured, so SetTarget snaps
// until Reset is called with a positive ramp time and sample rate.
type Linear struct {
	current float64
	target  float64
	step    float64

	countdown     int
	stepsToTarget int
}

// NewLinear returns a smoother resting at initial.
func NewLinear(initial float64) *Linear {
	return &Linear{current: initial, target: initial}
}

// Reset configures the ramp length for rampSeconds at sampleRate and snaps
// the current value to the target. Non-positive or non-finite arguments
// disable ramping.
func (l *Linear) Reset(rampSeconds, sampleRate float64) {
	steps := 0.0
	if rampSeconds > 0 && sampleRate > 0 {
		steps = math.Floor(rampSeconds * sampleRate)
	}

	if math.IsNaN(steps) || math.IsInf(steps, 0) || steps > math.MaxInt32 {
		steps = 0
	}

	l.stepsToTarget = int(steps)
	l.SetImmediate(l.target)
}

// SetTarget sets a new destination. The current value is left untouched and
// the next call to Next starts moving toward target.
func (l *Linear) SetTarget(target float64) {
	if target == l.target {
		return
	}

	if l.stepsToTarget <= 0 {
		l.SetImmediate(target)
		return
	}

	l.target = target
	l.countdown = l.stepsToTarget
	l.step = (l.target - l.current) / float64(l.countdown)
}

// SetImmediate snaps both the current value and the target to v.
func (l *Linear) SetImmediate(v float64) {
	l.current = v
	l.target = v
	l.step = 0
	l.countdown = 0
}

// Next advances one sample and returns the updated current value.
// The last step of a ramp lands on the target exactly.
func (l *Linear) Next() float64 {
	if l.countdown <= 0 {
		return l.target
	}

	l.countdown--
	if l.countdown > 0 {
		l.current += l.step
	} else {
		l.current = l.target
	}

	return l.current
}

// Skip advances n samples at once and returns the resulting value.
func (l *Linear) Skip(n int) float64 {
	if n <= 0 || l.countdown <= 0 {
		return l.current
	}

	if n >= l.countdown {
		l.SetImmediate(l.target)
		return l.current
	}

	l.current += l.step * float64(n)
	l.countdown -= n

	return l.current
}

// Current returns the value most recently produced by Next.
func (l *Linear) Current() float64 { return l.current }

// Target returns the destination value.
func (l *Linear) Target() float64 { return l.target }

// IsSmoothing reports whether a ramp is in progress.
func (l *Linear) IsSmoothing() bool { return l.countdown > 0 }

// RemainingSteps returns the number of samples left in the current ramp.
func (l *Linear) RemainingSteps() int { return l.countdown }

// RampSteps returns the number of samples a full ramp takes.
func (l *Linear) RampSteps() int { return l.stepsToTarget }
