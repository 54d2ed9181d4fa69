package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/units"
)

var envFlags struct {
	kind     string
	attack   float64
	hold     float64
	decay    float64
	sustain  float64
	release  float64
	multiply float64
	gate     float64
	tail     float64
	width    int
	height   int
}

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Plot an envelope",
	Long: `Render an envelope through note-on, gate and release and plot it.

Times are in milliseconds. For --kind vol the sustain is in dB and the
plot shows linear gain; for mod it is a fraction of the peak.
  synthparams envelope --attack 10 --decay 300 --sustain -12 --release 500`,
	Args: cobra.NoArgs,
	RunE: runEnvelope,
}

func init() {
	f := envelopeCmd.Flags()
	f.StringVar(&envFlags.kind, "kind", "vol", "envelope kind: vol, mod, filter")
	f.Float64Var(&envFlags.attack, "attack", 10, "attack in ms")
	f.Float64Var(&envFlags.hold, "hold", 0, "hold in ms")
	f.Float64Var(&envFlags.decay, "decay", 200, "decay in ms")
	f.Float64Var(&envFlags.sustain, "sustain", -12, "sustain level")
	f.Float64Var(&envFlags.release, "release", 300, "release in ms")
	f.Float64Var(&envFlags.multiply, "multiply", 1, "multiply amount (mod, filter)")
	f.Float64Var(&envFlags.gate, "gate", 500, "note length in ms")
	f.Float64Var(&envFlags.tail, "tail", 400, "time rendered after note-off in ms")
	f.IntVar(&envFlags.width, "width", 0, "plot width, 0 for terminal width")
	f.IntVar(&envFlags.height, "height", 16, "plot height")
}

func runEnvelope(cmd *cobra.Command, _ []string) error {
	attack, err := units.Milliseconds(envFlags.attack)
	if err != nil {
		return fmt.Errorf("attack: %w", err)
	}
	hold, err := units.Milliseconds(envFlags.hold)
	if err != nil {
		return fmt.Errorf("hold: %w", err)
	}
	decay, err := units.Milliseconds(envFlags.decay)
	if err != nil {
		return fmt.Errorf("decay: %w", err)
	}
	release, err := units.Milliseconds(envFlags.release)
	if err != nil {
		return fmt.Errorf("release: %w", err)
	}
	gate, err := units.Milliseconds(envFlags.gate)
	if err != nil {
		return fmt.Errorf("gate: %w", err)
	}
	tail, err := units.Milliseconds(envFlags.tail)
	if err != nil {
		return fmt.Errorf("tail: %w", err)
	}

	on := sampleRate.ToSamples(gate)
	total := on + sampleRate.ToSamples(tail)

	var values []float64
	switch envFlags.kind {
	case "vol":
		p := envelope.VolEnvParams{
			AttackTime:   attack,
			HoldTime:     hold,
			DecayTime:    decay,
			SustainLevel: units.Decibel(envFlags.sustain),
			ReleaseTime:  release,
		}
		values = renderGate(envelope.New[units.Decibel](sampleRate), p, on, total, units.Decibel.Amp)
	case "mod":
		p := envelope.GeneralEnvParams{
			AttackTime:     attack,
			HoldTime:       hold,
			DecayTime:      decay,
			SustainLevel:   envelope.Ratio(envFlags.sustain),
			ReleaseTime:    release,
			MultiplyAmount: envFlags.multiply,
		}
		values = renderGate(envelope.New[envelope.Ratio](sampleRate), p, on, total, ratioValue)
	case "filter":
		p := envelope.FilterEnvParams{
			AttackTime:     attack,
			HoldTime:       hold,
			DecayTime:      decay,
			MultiplyAmount: envFlags.multiply,
		}
		values = renderGate(envelope.New[envelope.Ratio](sampleRate), p, on, total, ratioValue)
	default:
		return fmt.Errorf("unknown envelope kind %q (want vol, mod or filter)", envFlags.kind)
	}
	log.Debugf("rendered %d samples, note-off at %d", len(values), on)

	out := cmd.OutOrStdout()
	width := envFlags.width
	if width <= 0 {
		width = terminalWidth(out, 80)
	}
	return plot(out, values, width, envFlags.height)
}

func ratioValue(r envelope.Ratio) float64 {
	return float64(r)
}

// renderGate holds the note for on samples and renders total samples.
func renderGate[T envelope.Value[T]](e *envelope.Envelope[T], p envelope.Params[T], on, total int, conv func(T) float64) []float64 {
	buf := make([]T, total)
	e.NoteOn()
	e.Fill(buf[:min(on, total)], p)
	e.NoteOff()
	if on < total {
		e.Fill(buf[on:], p)
	}

	values := make([]float64, total)
	for i, v := range buf {
		values[i] = conv(v)
	}
	return values
}

func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 16 {
		return fallback
	}
	return width - 8
}

// plot draws values as columns of '#' under a '*' trace. Each column shows
// the peak of the samples it covers.
func plot(w io.Writer, values []float64, width, height int) error {
	if len(values) == 0 || width <= 0 || height <= 1 {
		return nil
	}
	width = min(width, len(values))

	cols := make([]float64, width)
	for c := range cols {
		start := c * len(values) / width
		end := max((c+1)*len(values)/width, start+1)
		peak := math.Inf(-1)
		for _, v := range values[start:end] {
			peak = max(peak, v)
		}
		cols[c] = peak
	}

	lo, hi := 0.0, 1.0
	for _, v := range cols {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	levels := make([]int, width)
	for c, v := range cols {
		levels[c] = int(math.Round((v - lo) / (hi - lo) * float64(height-1)))
	}

	var sb strings.Builder
	for row := height - 1; row >= 0; row-- {
		label := lo + (hi-lo)*float64(row)/float64(height-1)
		fmt.Fprintf(&sb, "%6.2f |", label)
		for _, l := range levels {
			switch {
			case l == row:
				sb.WriteByte('*')
			case l > row:
				sb.WriteByte('#')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("       +")
	sb.WriteString(strings.Repeat("-", width))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
