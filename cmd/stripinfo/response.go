package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-strip/dsp/character"
)

var auditFrequencies = []float64{10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 15000, 20000}

func newResponseCmd() *cobra.Command {
	var rate float64

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the character filter magnitude and phase response",
		Long: `Print the combined response of the three character filter stages at
common audit frequencies below Nyquist.

Example:
  stripinfo response --rate 96000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chain, err := character.NewChain(rate)
			if err != nil {
				return err
			}

			for i, c := range chain.Coefficients() {
				logger.Debug("stage", "index", i, "b0", c.B0, "b1", c.B1, "b2", c.B2, "a1", c.A1, "a2", c.A2)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "Freq (Hz)\tMagnitude (dB)\tPhase (deg)\t")

			for _, f := range auditFrequencies {
				if f >= rate/2 {
					break
				}

				phase := cmplx.Phase(chain.Response(f)) * 180 / math.Pi
				fmt.Fprintf(w, "%.0f\t%+.3f\t%+.2f\t\n", f, chain.MagnitudeDB(f), phase)
			}

			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 48000, "Sample rate in Hz")

	return cmd
}
