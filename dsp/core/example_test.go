package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-strip/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
		core.WithChannels(1),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d channels=%d\n", cfg.SampleRate, cfg.BlockSize, cfg.Channels)

	// Output:
	// sampleRate=44100 blockSize=256 channels=1
}

func ExampleDBToLinear() {
	fmt.Printf("%.4f %.4f\n", core.DBToLinear(0), core.DBToLinear(-6))

	// Output:
	// 1.0000 0.5012
}
