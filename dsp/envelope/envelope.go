package envelope

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/units"
)

var (
	_ Value[units.Decibel] = units.Decibel(0)
	_ Value[Ratio]         = Ratio(0)

	_ Params[units.Decibel] = VolEnvParams{}
	_ Params[Ratio]         = GeneralEnvParams{}
	_ Params[Ratio]         = FilterEnvParams{}
)

// State is the stage an envelope is in.
type State uint8

const (
	// Idle means the envelope is inactive and outputs Zero.
	Idle State = iota
	Attack
	Hold
	Decay
	Sustain
	Release
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Attack:
		return "attack"
	case Hold:
		return "hold"
	case Decay:
		return "decay"
	case Sustain:
		return "sustain"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Envelope is the per-voice stage machine. It is owned by the render thread
// and is not safe for concurrent use.
type Envelope[T Value[T]] struct {
	sampleRate units.SampleRate

	state     State
	elapsed   int
	from      T
	current   T
	retrigger bool
}

// New returns an idle envelope clocked at sampleRate, which should come from
// units.NewSampleRate. An invalid rate such as the zero SampleRate is
// replaced by the default processor rate.
func New[T Value[T]](sampleRate units.SampleRate) *Envelope[T] {
	e := &Envelope[T]{}
	e.SetSampleRate(sampleRate)
	e.Reset()
	return e
}

// Reset returns the envelope to Idle without a release ramp.
func (e *Envelope[T]) Reset() {
	var v T
	e.state = Idle
	e.elapsed = 0
	e.current = v.Zero()
	e.from = e.current
	e.retrigger = false
}

// SetSampleRate changes the clock used to convert stage durations. An
// invalid rate falls back to the default processor rate.
func (e *Envelope[T]) SetSampleRate(sampleRate units.SampleRate) {
	if !sampleRate.Valid() {
		sampleRate = units.MustSampleRate(core.DefaultProcessorConfig().SampleRate)
	}
	e.sampleRate = sampleRate
}

// SampleRate returns the clock used to convert stage durations.
func (e *Envelope[T]) SampleRate() units.SampleRate {
	return e.sampleRate
}

// State returns the current stage.
func (e *Envelope[T]) State() State {
	return e.state
}

// Active reports whether the envelope produces anything but Zero.
func (e *Envelope[T]) Active() bool {
	return e.state != Idle
}

// Value returns the last unscaled stage value.
func (e *Envelope[T]) Value() T {
	return e.current
}

// NoteOn starts the attack. On an active envelope this is a retrigger: the
// attack ramps from the live value instead of restarting from Zero, which
// would click.
func (e *Envelope[T]) NoteOn() {
	if e.state == Idle {
		var v T
		e.from = v.Zero()
		e.retrigger = false
	} else {
		e.from = e.current
		e.retrigger = true
	}
	e.enter(Attack)
}

// NoteOff starts the release from the live value.
func (e *Envelope[T]) NoteOff() {
	if e.state == Idle || e.state == Release {
		return
	}
	e.from = e.current
	e.enter(Release)
}

// Next advances one sample and returns the stage value scaled by
// p.Multiply().
func (e *Envelope[T]) Next(p Params[T]) T {
	return e.step(p).Scale(p.Multiply())
}

// Fill writes len(dst) consecutive samples.
func (e *Envelope[T]) Fill(dst []T, p Params[T]) {
	m := p.Multiply()
	if e.state == Idle {
		var v T
		e.current = v.Zero()
		core.Fill(dst, e.current.Scale(m))
		return
	}
	for i := range dst {
		dst[i] = e.step(p).Scale(m)
	}
}

func (e *Envelope[T]) enter(s State) {
	e.state = s
	e.elapsed = 0
}

func (e *Envelope[T]) stageLen(d units.Seconds) int {
	if d.IsZero() {
		return 0
	}
	return e.sampleRate.ToSamples(d)
}

// step returns the unscaled value of the next sample. Each stage check falls
// through to the next stage once its duration has elapsed, so any run of
// zero-length stages resolves within one call.
func (e *Envelope[T]) step(p Params[T]) T {
	var v T
	zero, one := v.Zero(), v.One()

	for {
		switch e.state {
		case Attack:
			n := e.stageLen(p.Attack())
			if e.elapsed >= n {
				e.enter(Hold)
				continue
			}
			t := float64(e.elapsed) / float64(n)
			if e.retrigger {
				e.current = e.from.LerpRetrigger(one, t)
			} else {
				e.current = e.from.LerpAttack(one, t)
			}

		case Hold:
			if e.elapsed >= e.stageLen(p.Hold()) {
				e.enter(Decay)
				continue
			}
			e.current = one

		case Decay:
			n := e.stageLen(p.Decay())
			if e.elapsed >= n {
				e.enter(Sustain)
				continue
			}
			e.current = one.LerpDecay(p.Sustain(), float64(e.elapsed)/float64(n))

		case Sustain:
			e.current = p.Sustain()
			return e.current

		case Release:
			n := e.stageLen(p.Release())
			if e.elapsed >= n {
				e.enter(Idle)
				continue
			}
			e.current = e.from.LerpRelease(zero, float64(e.elapsed)/float64(n))

		default:
			e.current = zero
			return e.current
		}

		e.elapsed++
		return e.current
	}
}
