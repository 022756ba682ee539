package strip_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-strip/dsp/strip"
)

func ExampleEngine() {
	e, err := strip.NewEngine()
	if err != nil {
		panic(err)
	}

	if err := e.Prepare(48000, 480, 2); err != nil {
		panic(err)
	}

	left := make([]float64, 480)
	right := make([]float64, 480)
	for i := range left {
		left[i] = 0.5 * math.Sin(2*math.Pi*1000*float64(i)/48000)
		right[i] = left[i]
	}

	e.ProcessBlock([][]float64{left, right})

	peaks := e.Peaks()
	fmt.Printf("state=%s L=%.3f R=%.3f\n", e.State(), peaks[0], peaks[1])
	// Output: state=processing L=0.354 R=0.354
}
