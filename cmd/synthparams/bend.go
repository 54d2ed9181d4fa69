package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/dsp/pitchbend"
	"github.com/cwbudde/algo-synth/dsp/units"
)

var bendFlags struct {
	samples int
	prev    float64
	every   int
	zeroOne bool
	note    uint8
}

var bendCmd = &cobra.Command{
	Use:   "bend [value@offset ...]",
	Short: "Expand pitch-bend events into a per-sample stream",
	Long: `Interpolate pitch-bend events across one buffer, the way a voice sees them.

Each event is value@offset with value in [-1, 1] (or [0, 1] with --zero-one)
and offset in samples. Events must be in offset order; offsets outside the
buffer are clamped.
  synthparams bend 1@32 0@64 --samples 96 --every 8`,
	RunE: runBend,
}

func init() {
	f := bendCmd.Flags()
	f.IntVar(&bendFlags.samples, "samples", 64, "buffer length in samples")
	f.Float64Var(&bendFlags.prev, "prev", 0, "bend value carried from the previous buffer")
	f.IntVar(&bendFlags.every, "every", 1, "print every n-th sample")
	f.BoolVar(&bendFlags.zeroOne, "zero-one", false, "read values as wheel positions in [0, 1]")
	f.Uint8Var(&bendFlags.note, "note", 69, "MIDI note used for the Hz column")
}

func runBend(cmd *cobra.Command, args []string) error {
	events, err := parseBendEvents(args, bendFlags.zeroOne, func(pos float64) int {
		return int(math.Round(pos))
	})
	if err != nil {
		return err
	}
	if err := pitchbend.Validate(events, bendFlags.samples); err != nil {
		log.Warnf("%v", err)
	}

	prev := pitchbend.NormalizedPitchbend(bendFlags.prev)
	if bendFlags.zeroOne {
		prev = pitchbend.FromZeroOneRange(bendFlags.prev)
	}

	gen, last := pitchbend.ToPitchEnvelope(events, prev, bendFlags.samples)
	if err := printBend(cmd.OutOrStdout(), gen, units.Note(bendFlags.note), cfg.BendRange, bendFlags.every); err != nil {
		return err
	}
	log.Infof("next buffer starts at %.4f", float64(last))
	return nil
}

func printBend(w io.Writer, gen *pitchbend.Generator, note units.Note, rangeSemis float64, every int) error {
	every = max(every, 1)
	base := units.PitchFromNote(note)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Sample\tBend\tSemitones\tHz\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t---------\t--\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; ; i++ {
		b, ok := gen.Next()
		if !ok {
			break
		}
		if i%every != 0 {
			continue
		}
		hz := base.Add(b.Pitch(rangeSemis)).Hertz()
		if _, err := fmt.Fprintf(tw, "%d\t%+.4f\t%+.3f\t%.2f\n", i, float64(b), b.Semitones(rangeSemis), hz.Float64()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
