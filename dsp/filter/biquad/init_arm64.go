//go:build arm64 && !purego

package biquad

import (
	_ "github.com/cwbudde/algo-strip/dsp/filter/biquad/internal/kernel/generic" // register generic backend
	_ "github.com/cwbudde/algo-strip/dsp/filter/biquad/internal/kernel/unroll4" // register NEON-class backend
)
