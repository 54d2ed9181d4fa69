package main

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter"
	"github.com/cwbudde/algo-synth/dsp/pitchbend"
	"github.com/cwbudde/algo-synth/dsp/units"
	"github.com/cwbudde/algo-synth/params"
)

const (
	pitchEnvSemis    = 12.0
	pitchLFOSemis    = 12.0
	cutoffEnvOctaves = 10.0
)

// tone describes one test note. Positions are in samples.
type tone struct {
	note      units.Note
	vel       units.Vel
	gate      int
	length    int
	events    []pitchbend.Event
	bendRange float64
	blockSize int
}

// voice is a single mono oscillator voice driven by a parameter snapshot.
type voice struct {
	sr units.SampleRate
	p  *params.Parameters
	tn *tone

	vol     *envelope.Envelope[units.Decibel]
	pitch   *envelope.Envelope[envelope.Ratio]
	cutoff  *envelope.Envelope[envelope.Ratio]
	bend    pitchbend.Tracker
	section *filter.Section
	rng     *rand.Rand

	phase float64
	clock int

	gains   []float64
	cut     []envelope.Ratio
	scratch []pitchbend.Event
}

func newVoice(sr units.SampleRate, p *params.Parameters, tn *tone) *voice {
	return &voice{
		sr:      sr,
		p:       p,
		tn:      tn,
		vol:     envelope.New[units.Decibel](sr),
		pitch:   envelope.New[envelope.Ratio](sr),
		cutoff:  envelope.New[envelope.Ratio](sr),
		section: filter.NewSection(filter.Passthrough()),
		rng:     rand.New(rand.NewSource(1)),
		phase:   p.Osc.Phase,
	}
}

func (v *voice) noteOn() {
	v.vol.NoteOn()
	v.pitch.NoteOn()
	v.cutoff.NoteOn()
}

func (v *voice) noteOff() {
	v.vol.NoteOff()
	v.pitch.NoteOff()
	v.cutoff.NoteOff()
}

// renderTone plays tn from note-on through its gate and tail.
func renderTone(sr units.SampleRate, p *params.Parameters, tn tone) []float64 {
	if tn.blockSize <= 0 {
		tn.blockSize = core.DefaultProcessorConfig().BlockSize
	}
	out := make([]float64, max(tn.length, 0))
	v := newVoice(sr, p, &tn)
	v.noteOn()

	for pos := 0; pos < len(out); {
		if pos == tn.gate {
			v.noteOff()
		}
		n := min(tn.blockSize, len(out)-pos)
		if pos < tn.gate {
			n = min(n, tn.gate-pos)
		}
		v.render(out[pos:pos+n], pos)
		pos += n
	}
	return out
}

// render writes one block starting at absolute sample pos.
func (v *voice) render(out []float64, pos int) {
	n := len(out)
	o := &v.p.Osc

	v.scratch = v.scratch[:0]
	for _, ev := range v.tn.events {
		if ev.Offset >= pos && ev.Offset < pos+n {
			v.scratch = append(v.scratch, pitchbend.Event{Value: ev.Value, Offset: ev.Offset - pos})
		}
	}
	gen := v.bend.Begin(v.scratch, n)

	v.gains = core.EnsureLen(v.gains, n)
	v.cut = core.EnsureLen(v.cut, n)
	envelope.RenderGain(v.gains, v.vol, o.VolEnv)
	v.cutoff.Fill(v.cut, o.FilterEnv)

	base := units.PitchFromNote(v.tn.note)
	level := o.Volume.Amp() * v.p.MasterVol.Amp()
	hz := v.sr.Hz()

	for i := range out {
		b, _ := gen.Next()
		t := float64(v.clock) / hz

		semis := o.Tuning() +
			float64(v.pitch.Next(o.PitchEnv))*pitchEnvSemis +
			o.PitchLFO.Amplitude*pitchLFOSemis*lfo(t, o.PitchLFO)
		f := base.Semitones(semis).Add(b.Pitch(v.tn.bendRange)).Hertz()

		out[i] = v.osc(o.Shape) * level * tremolo(t, o.VolLFO)

		v.phase += f.Float64() / hz
		v.phase -= math.Floor(v.phase)
		v.clock++
	}

	fp := o.Filter
	fp.Freq = filter.Sweep(fp.Freq, float64(v.cut[0])*cutoffEnvOctaves*v.tn.vel.Eased)
	v.section.SetCoefficients(filter.Design(fp, v.sr))
	v.section.ProcessBlock(out)

	envelope.ApplyBlock(out, v.gains)
}

func (v *voice) osc(s params.NoteShape) float64 {
	ph := v.phase
	switch s.Kind {
	case params.Skewtooth:
		w := core.Clamp(s.Warp, 1e-3, 1-1e-3)
		if ph < w {
			return 2*ph/w - 1
		}
		return 1 - 2*(ph-w)/(1-w)
	case params.Square:
		if ph < s.Warp {
			return 1
		}
		return -1
	case params.Noise:
		return v.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * ph)
	}
}

func lfo(t float64, l params.LFO) float64 {
	if l.Period.IsZero() {
		return 0
	}
	return math.Sin(2 * math.Pi * t / l.Period.Float64())
}

func tremolo(t float64, l params.LFO) float64 {
	return 1 - l.Amplitude*0.5*(1-lfo(t, l))
}
