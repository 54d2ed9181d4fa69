// Command synthparams inspects the synthesizer parameter core.
//
// Usage:
//
//	synthparams <command> [flags]
//
// Examples:
//
//	synthparams params
//	synthparams params --set 0=1 --set 23=0.5
//	synthparams ease "filter freq" --steps 11
//	synthparams envelope --attack 20 --decay 200 --sustain -12 --release 400
//	synthparams bend 1@32 0@64 --samples 96 --every 8
//	synthparams audition --note 57 --bend 1@500
//
// Settings default to SYNTH_SAMPLE_RATE, SYNTH_BLOCK_SIZE, SYNTH_LOG_LEVEL
// and SYNTH_BEND_RANGE; flags override them.
package main

import (
	"os"

	"github.com/pion/logging"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/dsp/units"
	"github.com/cwbudde/algo-synth/internal/config"
)

var version = "0.1.0"

var (
	cfg        = config.Load()
	logFactory logging.LoggerFactory
	log        logging.LeveledLogger
	sampleRate units.SampleRate
)

var rootCmd = &cobra.Command{
	Use:   "synthparams",
	Short: "Inspect synthesizer knob curves, envelopes and pitch-bend streams",
	Long: `synthparams renders the parameter core of the synthesizer to text.

It prints how host knobs ease into units, draws envelopes, expands
pitch-bend events into per-sample streams and plays test tones.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.Float64Var(&cfg.SampleRate, "sample-rate", cfg.SampleRate, "sample rate in Hz")
	f.IntVar(&cfg.BlockSize, "block-size", cfg.BlockSize, "render block size in samples")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: error, warn, info, debug, trace")
	f.Float64Var(&cfg.BendRange, "bend-range", cfg.BendRange, "pitch-bend range in semitones")

	rootCmd.AddCommand(paramsCmd, easeCmd, envelopeCmd, bendCmd, auditionCmd)
}

func setup(_ *cobra.Command, _ []string) error {
	f, err := cfg.LoggerFactory()
	if err != nil {
		return err
	}
	logFactory = f
	log = f.NewLogger("synthparams")

	sampleRate, err = cfg.Rate()
	if err != nil {
		return err
	}
	log.Debugf("sample rate %s, block size %d", sampleRate, cfg.Processor().BlockSize)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
