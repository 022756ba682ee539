// Command stripinfo prints diagnostic tables for the channel strip DSP.
//
// Usage:
//
//	stripinfo pan [--steps N]
//	stripinfo response [--rate R]
//	stripinfo thd [--rate R] [--freq F] [--amp A] [--pan P] [--fader dB] [--emulation]
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.1.0"

var (
	verbose bool
	logger  = newLogger(slog.LevelInfo)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stripinfo",
		Short: "Print channel strip diagnostics",
		Long: `stripinfo prints tables describing the channel strip DSP core.

Examples:
  stripinfo pan --steps 8
  stripinfo response --rate 44100
  stripinfo thd --amp 0.5 --emulation`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			logger = newLogger(level)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(newPanCmd())
	root.AddCommand(newResponseCmd())
	root.AddCommand(newTHDCmd())

	return root
}

// newLogger writes text to an interactive stderr and JSON otherwise.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
