package units

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/ease"
)

// Hertz is a frequency.
type Hertz float64

// LerpOctave interpolates from start to end in log2-frequency space, so equal
// steps in t are equal musical intervals. Both ends must be positive.
func LerpOctave(start, end Hertz, t float64) Hertz {
	p := core.Lerp(math.Log2(float64(start)), math.Log2(float64(end)), t)
	return Hertz(math.Exp2(p))
}

// HertzExp returns an exponential knob curve over frequencies.
func HertzExp(start, end Hertz) ease.Easing[Hertz] {
	return ease.NewExponential(start, end)
}

// Float64 returns the frequency in Hz.
func (h Hertz) Float64() float64 {
	return float64(h)
}

// Clamp limits h to [min, max].
func (h Hertz) Clamp(min, max Hertz) Hertz {
	return Hertz(core.Clamp(float64(h), float64(min), float64(max)))
}

// Mul scales h by f.
func (h Hertz) Mul(f float64) Hertz {
	return Hertz(float64(h) * f)
}

// Div returns the ratio h/o.
func (h Hertz) Div(o Hertz) float64 {
	return float64(h) / float64(o)
}

// Biquad returns h as a filter design frequency. Biquad designers reject
// negative frequencies, so those clamp to 0.
func (h Hertz) Biquad() float64 {
	return math.Max(float64(h), 0)
}

// Pitch converts h to log2 space.
func (h Hertz) Pitch() Pitch {
	return PitchFromHertz(h)
}

// Period returns 1/h.
func (h Hertz) Period() Seconds {
	return seconds(1 / float64(h))
}

// OctaveEasing is a knob curve that interpolates from Start to End in
// log2-frequency space. Both ends must be positive.
type OctaveEasing struct {
	Start Hertz
	End   Hertz
}

// Ease evaluates the curve at raw in [0, 1].
func (o OctaveEasing) Ease(raw float64) Hertz {
	switch raw {
	case 0:
		return o.Start
	case 1:
		return o.End
	}
	return LerpOctave(o.Start, o.End, raw)
}
