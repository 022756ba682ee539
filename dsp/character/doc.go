// Package character implements the console colour stage of a channel strip:
// a fixed three-band filter [Chain] followed by a tanh [Saturator].
//
// The chain runs, in order, a 20 Hz high-pass (Q 0.707), a +0.5 dB low
// shelf at 200 Hz (Q 0.7) and a +0.3 dB high shelf at 10 kHz (Q 0.7).
// Coefficients are designed once per sample rate; each channel keeps its
// own delay lines. Neither type allocates while processing.
package character
