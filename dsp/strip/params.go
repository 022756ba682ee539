package strip

import (
	"math"

	"github.com/cwbudde/algo-strip/dsp/core"
)

// Range describes a control's bounds and default.
type Range struct {
	Min, Max, Default float64
}

// Clamp limits v to the range. NaN maps to Default.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Default
	}

	return core.Clamp(v, r.Min, r.Max)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Control ranges.
var (
	FaderRange     = Range{Min: -60, Max: 10, Default: 0}
	PanRange       = Range{Min: -1, Max: 1, Default: 0}
	ChannelIDRange = Range{Min: 1, Max: 32, Default: 1}
)

// ControlState is a point-in-time copy of every control value.
//
// Soloed, Selected, AutoRec and ChannelID are carried for the controller;
// the engine does not act on them.
type ControlState struct {
	FaderDB          float64
	Pan              float64
	Muted            bool
	EmulationEnabled bool

	Soloed    bool
	Selected  bool
	AutoRec   bool
	ChannelID int
}

// DefaultControlState returns the power-on control values.
func DefaultControlState() ControlState {
	return ControlState{
		FaderDB:   FaderRange.Default,
		Pan:       PanRange.Default,
		ChannelID: int(ChannelIDRange.Default),
	}
}
