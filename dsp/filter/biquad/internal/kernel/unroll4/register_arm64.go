//go:build arm64 && !purego

package unroll4

import (
	"github.com/cwbudde/algo-strip/dsp/filter/biquad/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Entry{
		Name:         "neon",
		SIMDLevel:    cpu.SIMDNEON,
		Priority:     15,
		ProcessBlock: ProcessBlock,
	})
}
