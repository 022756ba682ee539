package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-strip/dsp/core"
	"github.com/cwbudde/algo-strip/dsp/pan"
)

func newPanCmd() *cobra.Command {
	var (
		steps   int
		lawName string
	)

	cmd := &cobra.Command{
		Use:   "pan",
		Short: "Print a pan law table",
		Long: `Print left/right gains for evenly spaced pan positions from -1 to +1.
The strip itself always pans with the constant-power law.

Examples:
  stripinfo pan --steps 4
  stripinfo pan --law linear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be >= 1: %d", steps)
			}

			law, err := pan.ParseLaw(lawName)
			if err != nil {
				return err
			}

			logger.Debug("pan table", "law", law.String(), "steps", steps)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "Position\tLeft\tRight\tLeft dB\tRight dB\tPower\t")

			for i := 0; i <= steps; i++ {
				pos := -1 + 2*float64(i)/float64(steps)
				l, r := pan.Gains(law, pos)
				fmt.Fprintf(w, "%+.3f\t%.4f\t%.4f\t%s\t%s\t%.6f\t\n",
					pos, l, r, formatDB(l), formatDB(r), l*l+r*r)
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 8, "Number of intervals between hard left and hard right")
	cmd.Flags().StringVar(&lawName, "law", pan.LawConstantPower.String(), "Pan law (constant-power, linear)")

	return cmd
}

func formatDB(linear float64) string {
	if linear < 1e-9 {
		return "-inf"
	}

	db := core.LinearToDB(linear)
	if math.Abs(db) < 5e-3 {
		db = 0
	}

	return fmt.Sprintf("%.2f", db)
}
