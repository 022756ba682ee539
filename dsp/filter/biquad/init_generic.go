//go:build (!amd64 && !arm64) || purego

package biquad

import (
	_ "github.com/cwbudde/algo-strip/dsp/filter/biquad/internal/kernel/generic" // register generic backend
)
