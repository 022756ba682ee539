// Package smooth provides click-free parameter trajectories for real-time
// processing.
//
// A [Linear] value ramps from its current value toward a target in a fixed
// number of equal steps derived from a wall-clock ramp time, so the audible
// transition length does not depend on the sample rate. Retargeting during a
// ramp restarts the ramp from the current value; the trajectory never jumps.
//
// All methods are allocation-free and intended to be called once per sample
// from the audio thread.
package smooth
