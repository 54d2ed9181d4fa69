package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/dsp/units"
	"github.com/cwbudde/algo-synth/params"
)

var auditionFlags struct {
	note     uint8
	velocity uint8
	gate     float64
	tail     float64
	bend     []string
	set      []string
}

var auditionCmd = &cobra.Command{
	Use:   "audition",
	Short: "Play a test note through the parameter core",
	Long: `Render one note with the default patch, or host writes given with --set,
and play it on the default audio device.

Bend events are value@ms:
  synthparams audition --note 48 --bend 0@0 --bend 1@400 --set 23=0.6`,
	Args: cobra.NoArgs,
	RunE: runAudition,
}

func init() {
	f := auditionCmd.Flags()
	f.Uint8Var(&auditionFlags.note, "note", 57, "MIDI note")
	f.Uint8Var(&auditionFlags.velocity, "velocity", 100, "MIDI velocity")
	f.Float64Var(&auditionFlags.gate, "gate", 800, "note length in ms")
	f.Float64Var(&auditionFlags.tail, "tail", 1200, "time rendered after note-off in ms")
	f.StringArrayVar(&auditionFlags.bend, "bend", nil, "pitch-bend event value@ms (repeatable)")
	f.StringArrayVar(&auditionFlags.set, "set", nil, "host write index=raw (repeatable)")
}

func runAudition(cmd *cobra.Command, _ []string) error {
	store := params.NewStore(params.WithLoggerFactory(logFactory))
	for _, s := range auditionFlags.set {
		index, raw, err := parseAssignment(s)
		if err != nil {
			return err
		}
		if err := store.SetFromHost(index, raw); err != nil {
			return err
		}
	}
	p, err := store.Parameters()
	if err != nil {
		return err
	}

	toSamples := func(ms float64) int {
		s, err := units.Milliseconds(ms)
		if err != nil {
			return 0
		}
		return sampleRate.ToSamples(s)
	}
	events, err := parseBendEvents(auditionFlags.bend, false, toSamples)
	if err != nil {
		return err
	}

	gate := toSamples(auditionFlags.gate)
	tn := tone{
		note:      units.Note(auditionFlags.note),
		vel:       units.VelFromMIDI(auditionFlags.velocity),
		gate:      gate,
		length:    gate + toSamples(auditionFlags.tail),
		events:    events,
		bendRange: cfg.BendRange,
		blockSize: cfg.Processor().BlockSize,
	}
	samples := renderTone(sampleRate, &p, tn)
	log.Infof("rendered %d samples of note %d (%.2f Hz)", len(samples), tn.note, tn.note.Hertz().Float64())

	length := time.Duration(float64(len(samples)) / sampleRate.Hz() * float64(time.Second))
	if err := play(samples, int(sampleRate.Hz()), length); err != nil {
		return fmt.Errorf("audition: %w", err)
	}
	return nil
}
