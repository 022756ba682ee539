package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-strip/dsp/core"
	"github.com/cwbudde/algo-strip/dsp/strip"
	"github.com/cwbudde/algo-strip/dsp/window"
	"github.com/cwbudde/algo-strip/measure/thd"
)

const analysisSize = 16384

type thdOptions struct {
	rate      float64
	freq      float64
	amp       float64
	pan       float64
	faderDB   float64
	emulation bool
	block     int
	window    string
}

func newTHDCmd() *cobra.Command {
	var opts thdOptions

	cmd := &cobra.Command{
		Use:   "thd",
		Short: "Render a sine through the engine and measure distortion",
		Long: `Render a sine tone through a stereo channel strip and report THD,
THD+N and the odd/even harmonic split per channel.

Examples:
  stripinfo thd --amp 0.5 --emulation
  stripinfo thd --freq 100 --pan -0.5 --fader -6
  stripinfo thd --window blackman-harris`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTHD(cmd, opts)
		},
	}

	cfg := core.DefaultProcessorConfig()
	cmd.Flags().Float64Var(&opts.rate, "rate", cfg.SampleRate, "Sample rate in Hz")
	cmd.Flags().IntVar(&opts.block, "block", cfg.BlockSize, "Processing block size")
	cmd.Flags().Float64Var(&opts.freq, "freq", 1000, "Test tone frequency in Hz")
	cmd.Flags().Float64Var(&opts.amp, "amp", 0.5, "Test tone amplitude")
	cmd.Flags().Float64Var(&opts.pan, "pan", 0, "Pan position in [-1, 1]")
	cmd.Flags().Float64Var(&opts.faderDB, "fader", 0, "Fader level in dB")
	cmd.Flags().BoolVar(&opts.emulation, "emulation", false, "Enable console character emulation")
	cmd.Flags().StringVar(&opts.window, "window", window.TypeHann.String(), "Analysis window (hann, blackman-harris, flattop)")

	return cmd
}

func runTHD(cmd *cobra.Command, opts thdOptions) error {
	wt, err := window.Parse(opts.window)
	if err != nil {
		return err
	}

	if wt == window.TypeRectangular {
		return fmt.Errorf("window %q leaks too much for harmonic analysis", opts.window)
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(opts.rate),
		core.WithBlockSize(opts.block),
		core.WithChannels(2),
	)

	engine, err := strip.NewEngine()
	if err != nil {
		return err
	}

	engine.SetFaderDB(opts.faderDB)
	engine.SetPan(opts.pan)
	engine.SetEnabled(opts.emulation)

	if err := engine.Prepare(cfg.SampleRate, cfg.BlockSize, cfg.Channels); err != nil {
		return err
	}

	logger.Debug("engine prepared",
		"rate", cfg.SampleRate, "block", cfg.BlockSize, "channels", cfg.Channels,
		"fader", engine.FaderDB(), "pan", engine.Pan(), "emulation", engine.Enabled())

	// Render two analysis frames and measure the second so ramps and
	// filter transients have settled.
	n := 2 * analysisSize
	out := [2][]float64{make([]float64, n), make([]float64, n)}
	step := 2 * math.Pi * opts.freq / cfg.SampleRate

	for i := range n {
		out[0][i] = opts.amp * math.Sin(step*float64(i))
		out[1][i] = out[0][i]
	}

	block := make([][]float64, 2)
	for off := 0; off < n; off += cfg.BlockSize {
		end := min(off+cfg.BlockSize, n)
		block[0], block[1] = out[0][off:end], out[1][off:end]
		engine.ProcessBlock(block)
	}

	analyzer, err := thd.NewAnalyzer(thd.Config{
		SampleRate:      cfg.SampleRate,
		FundamentalFreq: opts.freq,
		WindowType:      wt,
	})
	if err != nil {
		return err
	}

	frames := [2][]float64{out[0][analysisSize:], out[1][analysisSize:]}

	var results [2]thd.Result

	var g errgroup.Group
	for ch := range frames {
		g.Go(func() error {
			res, err := analyzer.Analyze(frames[ch])
			results[ch] = res

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Channel\tPeak\tFundamental\tTHD (%)\tTHD (dB)\tTHD+N (%)\tOdd (%)\tEven (%)\t")

	for ch, name := range []string{"L", "R"} {
		res := results[ch]
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.1f\t%.4f\t%.4f\t%.4f\t\n",
			name, vecmath.MaxAbs(frames[ch]), res.FundamentalAmplitude,
			100*res.THD, res.THDdB(), 100*res.THDN, 100*res.OddHD, 100*res.EvenHD)
	}

	return w.Flush()
}
