package smooth

import (
	"math"
	"testing"
)

const sampleRate = 48000.0

func newRamped(initial float64) *Linear {
	l := NewLinear(initial)
	l.Reset(DefaultRampTime, sampleRate)
	return l
}

func TestResetStepCount(t *testing.T) {
	tests := []struct {
		ramp, rate float64
		want       int
	}{
		{0.05, 48000, 2400},
		{0.05, 44100, 2205},
		{0.05, 96000, 4800},
		{0, 48000, 0},
		{0.05, 0, 0},
		{-1, 48000, 0},
		{math.NaN(), 48000, 0},
	}

	for _, tt := range tests {
		l := NewLinear(0)
		l.Reset(tt.ramp, tt.rate)
		if got := l.RampSteps(); got != tt.want {
			t.Errorf("Reset(%v, %v): steps = %d, want %d", tt.ramp, tt.rate, got, tt.want)
		}
	}
}

func TestSetTargetReachesTargetExactly(t *testing.T) {
	for _, target := range []float64{0, 1, -1, 0.123456789, 3.16227766} {
		l := newRamped(0.5)
		l.SetTarget(target)

		var v float64
		for range l.RampSteps() {
			v = l.Next()
		}

		if v != target || l.Current() != target {
			t.Fatalf("target %v: got %v after full ramp", target, v)
		}
		if l.IsSmoothing() {
			t.Fatalf("target %v: still smoothing after full ramp", target)
		}
		if got := l.Next(); got != target {
			t.Fatalf("target %v: Next after ramp = %v", target, got)
		}
	}
}

func TestRampIsMonotonicAndContinuous(t *testing.T) {
	l := newRamped(1)
	l.SetTarget(0)

	maxStep := 1.0 / float64(l.RampSteps())
	prev := l.Current()
	for i := range l.RampSteps() {
		v := l.Next()
		if v > prev {
			t.Fatalf("sample %d: value increased from %v to %v", i, prev, v)
		}
		if d := math.Abs(v - prev); d > maxStep+1e-12 {
			t.Fatalf("sample %d: step %v exceeds %v", i, d, maxStep)
		}
		prev = v
	}
}

func TestRetargetDuringRampStaysContinuous(t *testing.T) {
	l := newRamped(0)
	l.SetTarget(1)

	prev := l.Current()
	bound := math.Abs(l.Target()-prev)/float64(l.RampSteps()) + 1e-12
	targets := []float64{1, -0.5, 0.25, 2, 0}
	for i := range 5 * l.RampSteps() {
		if i%700 == 0 {
			l.SetTarget(targets[(i/700)%len(targets)])
			bound = math.Abs(l.Target()-prev)/float64(l.RampSteps()) + 1e-12
		}

		v := l.Next()
		if d := math.Abs(v - prev); d > bound {
			t.Fatalf("sample %d: jump %v exceeds %v", i, d, bound)
		}
		prev = v
	}
}

func TestSetTargetSameValueKeepsRamp(t *testing.T) {
	l := newRamped(0)
	l.SetTarget(1)
	for range 100 {
		l.Next()
	}

	remaining := l.RemainingSteps()
	l.SetTarget(1)
	if l.RemainingSteps() != remaining {
		t.Fatalf("remaining steps changed from %d to %d", remaining, l.RemainingSteps())
	}
}

func TestSetImmediate(t *testing.T) {
	l := newRamped(0)
	l.SetTarget(1)
	l.Next()
	l.SetImmediate(0.25)

	if l.Current() != 0.25 || l.Target() != 0.25 || l.IsSmoothing() {
		t.Fatalf("SetImmediate: current=%v target=%v smoothing=%v", l.Current(), l.Target(), l.IsSmoothing())
	}
	if got := l.Next(); got != 0.25 {
		t.Fatalf("Next after SetImmediate = %v, want 0.25", got)
	}
}

func TestZeroRampSnaps(t *testing.T) {
	var l Linear
	l.SetTarget(0.75)
	if l.Current() != 0.75 || l.IsSmoothing() {
		t.Fatalf("zero value smoother did not snap: current=%v", l.Current())
	}
}

func TestResetSnapsToTarget(t *testing.T) {
	l := newRamped(0)
	l.SetTarget(1)
	l.Next()

	l.Reset(DefaultRampTime, 96000)
	if l.Current() != 1 || l.IsSmoothing() {
		t.Fatalf("Reset: current=%v smoothing=%v, want 1 and settled", l.Current(), l.IsSmoothing())
	}
}

func TestSkipMatchesNext(t *testing.T) {
	a := newRamped(0)
	b := newRamped(0)
	a.SetTarget(1)
	b.SetTarget(1)

	for range 128 {
		a.Next()
	}
	b.Skip(128)

	if math.Abs(a.Current()-b.Current()) > 1e-12 {
		t.Fatalf("Skip(128) = %v, want %v", b.Current(), a.Current())
	}

	b.Skip(1 << 20)
	if b.Current() != 1 || b.IsSmoothing() {
		t.Fatalf("Skip past ramp end: current=%v smoothing=%v", b.Current(), b.IsSmoothing())
	}
}
