package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-strip/dsp/smooth"
)

func ExampleLinear() {
	gain := smooth.NewLinear(1)
	gain.Reset(0.001, 4000) // four-sample ramp

	gain.SetTarget(0)
	for range 5 {
		fmt.Printf("%.2f ", gain.Next())
	}
	fmt.Println()

	// Output:
	// 0.75 0.50 0.25 0.00 0.00
}
