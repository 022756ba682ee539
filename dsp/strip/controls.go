package strip

import (
	"math"
	"sync/atomic"
)

// Controls holds the strip's control values as independent atomics.
// Setters clamp to their ranges. The zero value is ready to use and equals
// DefaultControlState.
type Controls struct {
	faderDB   atomic.Uint64 // float64 bits
	pan       atomic.Uint64 // float64 bits
	muted     atomic.Bool
	emulation atomic.Bool
	soloed    atomic.Bool
	selected  atomic.Bool
	autoRec   atomic.Bool
	channelID atomic.Int32
}

// NewControls returns controls initialized from s.
func NewControls(s ControlState) *Controls {
	c := &Controls{}
	c.Store(s)

	return c
}

// SetFaderDB sets the fader level in dB, clamped to FaderRange.
func (c *Controls) SetFaderDB(db float64) {
	c.faderDB.Store(math.Float64bits(FaderRange.Clamp(db)))
}

// FaderDB returns the fader level in dB.
func (c *Controls) FaderDB() float64 {
	return math.Float64frombits(c.faderDB.Load())
}

// SetPan sets the pan position, clamped to PanRange.
func (c *Controls) SetPan(pos float64) {
	c.pan.Store(math.Float64bits(PanRange.Clamp(pos)))
}

// Pan returns the pan position.
func (c *Controls) Pan() float64 {
	return math.Float64frombits(c.pan.Load())
}

// SetMuted mutes or unmutes the strip. The change ramps over the smoothing
// time.
func (c *Controls) SetMuted(v bool) { c.muted.Store(v) }

// Muted reports whether the strip is muted.
func (c *Controls) Muted() bool { return c.muted.Load() }

// SetEmulationEnabled switches the console character stage.
func (c *Controls) SetEmulationEnabled(v bool) { c.emulation.Store(v) }

// EmulationEnabled reports whether the character stage is on.
func (c *Controls) EmulationEnabled() bool { return c.emulation.Load() }

// SetSoloed sets the solo flag. It is stored for the host and does not
// change the audio.
func (c *Controls) SetSoloed(v bool) { c.soloed.Store(v) }

// Soloed returns the solo flag.
func (c *Controls) Soloed() bool { return c.soloed.Load() }

// SetSelected sets the select flag. Host state only.
func (c *Controls) SetSelected(v bool) { c.selected.Store(v) }

// Selected returns the select flag.
func (c *Controls) Selected() bool { return c.selected.Load() }

// SetAutoRec sets the automation record flag. Host state only.
func (c *Controls) SetAutoRec(v bool) { c.autoRec.Store(v) }

// AutoRec returns the automation record flag.
func (c *Controls) AutoRec() bool { return c.autoRec.Load() }

// SetChannelID sets the console channel number, clamped to ChannelIDRange.
func (c *Controls) SetChannelID(id int) {
	c.channelID.Store(int32(ChannelIDRange.Clamp(float64(id))))
}

// ChannelID returns the console channel number.
func (c *Controls) ChannelID() int {
	id := int(c.channelID.Load())
	if id < int(ChannelIDRange.Min) {
		return int(ChannelIDRange.Default)
	}

	return id
}

// Snapshot reads every field once. Fields are individually consistent;
// the snapshot as a whole is not atomic.
func (c *Controls) Snapshot() ControlState {
	return ControlState{
		FaderDB:          c.FaderDB(),
		Pan:              c.Pan(),
		Muted:            c.Muted(),
		EmulationEnabled: c.EmulationEnabled(),
		Soloed:           c.Soloed(),
		Selected:         c.Selected(),
		AutoRec:          c.AutoRec(),
		ChannelID:        c.ChannelID(),
	}
}

// Store writes every field of s.
func (c *Controls) Store(s ControlState) {
	c.SetFaderDB(s.FaderDB)
	c.SetPan(s.Pan)
	c.SetMuted(s.Muted)
	c.SetEmulationEnabled(s.EmulationEnabled)
	c.SetSoloed(s.Soloed)
	c.SetSelected(s.Selected)
	c.SetAutoRec(s.AutoRec)
	c.SetChannelID(s.ChannelID)
}
