// Package strip implements a single mixing-console channel strip.
//
// An [Engine] takes one mono or stereo block per call and applies, in
// order, the gain stage (fader, mute and constant-power pan, each smoothed
// over 50 ms) and, when emulation is enabled, the console character chain
// followed by tanh saturation.
//
// Control values live in [Controls]. Each field is an independent atomic
// scalar, so a control thread may write while the audio thread calls
// [Engine.ProcessBlock]; the engine reads one snapshot per block.
// [Engine.Prepare] and [Engine.Reset] must not run concurrently with
// ProcessBlock.
//
// ProcessBlock is real-time safe: it does not allocate, lock, log or return
// errors.
package strip
