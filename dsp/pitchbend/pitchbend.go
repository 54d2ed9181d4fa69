package pitchbend

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/units"
)

// ErrEventOrder is returned by Validate for events that are out of order or
// outside the buffer.
var ErrEventOrder = errors.New("pitchbend: events out of order")

// NormalizedPitchbend is a bend amount in [-1, 1]. 0 is no bend.
type NormalizedPitchbend float64

// FromZeroOneRange converts a wheel value where 0.5 is centered.
func FromZeroOneRange(v float64) NormalizedPitchbend {
	return NormalizedPitchbend(v*2 - 1)
}

// Semitones returns the bend as a semitone offset for a wheel range of
// rangeSemis semitones in either direction.
func (b NormalizedPitchbend) Semitones(rangeSemis float64) float64 {
	return float64(b) * rangeSemis
}

// Pitch returns the bend as a log2-frequency offset.
func (b NormalizedPitchbend) Pitch(rangeSemis float64) units.Pitch {
	return units.Pitch(b.Semitones(rangeSemis) / 12)
}

// Event is a bend value that takes effect at a sample offset within the
// current buffer.
type Event struct {
	Value  NormalizedPitchbend
	Offset int
}

// Validate checks that events are ordered by offset and lie in [0, numSamples].
// Generators accept any input; invalid offsets are clamped.
func Validate(events []Event, numSamples int) error {
	prev := 0
	for i, ev := range events {
		if ev.Offset < prev || ev.Offset > numSamples {
			return fmt.Errorf("%w: event %d at offset %d (previous %d, buffer %d)",
				ErrEventOrder, i, ev.Offset, prev, numSamples)
		}
		prev = ev.Offset
	}
	return nil
}

// Generator yields the interpolated stream for one buffer. It holds the event
// slice by reference and never allocates. The zero value yields nothing.
type Generator struct {
	events     []Event
	prev       NormalizedPitchbend
	last       NormalizedPitchbend
	numSamples int

	pos    int
	seg    int
	startV NormalizedPitchbend
	startT int
}

// NewGenerator returns a generator over events starting from prev.
func NewGenerator(events []Event, prev NormalizedPitchbend, numSamples int) *Generator {
	g := &Generator{}
	g.Init(events, prev, numSamples)
	return g
}

// ToPitchEnvelope returns the stream generator together with the value to
// carry into the next buffer.
func ToPitchEnvelope(events []Event, prev NormalizedPitchbend, numSamples int) (*Generator, NormalizedPitchbend) {
	g := NewGenerator(events, prev, numSamples)
	return g, g.Last()
}

// Init rearms g for a new buffer.
func (g *Generator) Init(events []Event, prev NormalizedPitchbend, numSamples int) {
	if numSamples < 0 {
		numSamples = 0
	}

	g.events = events
	g.prev = prev
	g.numSamples = numSamples

	g.last = prev
	if len(events) > 0 {
		g.last = events[len(events)-1].Value
	}

	g.Reset()
}

// Reset rewinds g to the first sample of its buffer.
func (g *Generator) Reset() {
	g.pos = 0
	g.seg = 0
	g.startV = g.prev
	g.startT = 0
}

// Len returns the number of samples in the stream.
func (g *Generator) Len() int {
	return g.numSamples
}

// Remaining returns the number of samples not yet produced.
func (g *Generator) Remaining() int {
	return g.numSamples - g.pos
}

// Last returns the value the stream ends on.
func (g *Generator) Last() NormalizedPitchbend {
	return g.last
}

// Next returns the next sample, or false once all samples were produced.
func (g *Generator) Next() (NormalizedPitchbend, bool) {
	if g.pos >= g.numSamples {
		return g.last, false
	}

	for {
		endV, endT := g.point(g.seg + 1)
		if endT < g.startT {
			endT = g.startT
		}

		if g.pos < endT {
			t := float64(g.pos-g.startT) / float64(endT-g.startT)
			v := core.Lerp(float64(g.startV), float64(endV), t)
			g.pos++
			return NormalizedPitchbend(v), true
		}

		g.seg++
		g.startV, g.startT = endV, endT
	}
}

// Fill writes up to len(dst) samples and returns how many were written.
func (g *Generator) Fill(dst []NormalizedPitchbend) int {
	n := 0
	for n < len(dst) {
		v, ok := g.Next()
		if !ok {
			break
		}
		dst[n] = v
		n++
	}
	return n
}

// point returns point i of (prev, 0), events..., (last, numSamples) with its
// offset clamped to the buffer.
func (g *Generator) point(i int) (NormalizedPitchbend, int) {
	switch {
	case i == 0:
		return g.prev, 0
	case i <= len(g.events):
		ev := g.events[i-1]
		return ev.Value, min(max(ev.Offset, 0), g.numSamples)
	default:
		return g.last, g.numSamples
	}
}

// Tracker carries the bend value of one voice from buffer to buffer.
type Tracker struct {
	prev NormalizedPitchbend
	gen  Generator
}

// Prev returns the value the next buffer starts from.
func (t *Tracker) Prev() NormalizedPitchbend {
	return t.prev
}

// Begin arms the tracker's generator for a buffer of numSamples and records
// the value to start the following buffer from. The returned generator is
// valid until the next call to Begin.
func (t *Tracker) Begin(events []Event, numSamples int) *Generator {
	t.gen.Init(events, t.prev, numSamples)
	t.prev = t.gen.Last()
	return &t.gen
}
