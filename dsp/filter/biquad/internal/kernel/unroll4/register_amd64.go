//go:build amd64 && !purego

package unroll4

import (
	"github.com/cwbudde/algo-strip/dsp/filter/biquad/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Entry{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: ProcessBlock,
	})
}
