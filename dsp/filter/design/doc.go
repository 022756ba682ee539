// Package design provides RBJ cookbook coefficient designers for the
// filter shapes the character chain uses.
//
// Designers return zero [biquad.Coefficients] when the frequency is not
// strictly between 0 and Nyquist or the sample rate is invalid. A
// non-positive or non-finite Q falls back to 1/sqrt(2).
package design
