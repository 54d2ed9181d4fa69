package units

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/ease"
)

// NegInfDBThreshold is the level at or below which a Decibel is silence.
// Treating it as amplitude 0 lets envelopes ramp from true silence without
// ever producing near-zero gains.
const NegInfDBThreshold = -70.0

// VolumeSplitAt is the knob position where decibel easings reach their
// nominal start level. Travel below it sweeps up from silence.
const VolumeSplitAt = 0.125

// Decibel is a level in dB, power convention. Arithmetic stays in dB space.
type Decibel float64

// NegInf returns the silence floor.
func NegInf() Decibel {
	return NegInfDBThreshold
}

// ZeroDB returns 0 dB (unity).
func ZeroDB() Decibel {
	return 0
}

// FromAmp converts a power amplitude to Decibel. Non-positive amplitudes map
// to the silence floor.
func FromAmp(amp float64) Decibel {
	if amp <= 0 {
		return NegInf()
	}
	return Decibel(core.LinearPowerToDB(amp))
}

// DB returns the dB value.
func (d Decibel) DB() float64 {
	return float64(d)
}

// IsSilent reports whether d is at or below the silence floor.
func (d Decibel) IsSilent() bool {
	return float64(d) <= NegInfDBThreshold
}

// Amp returns 10^(dB/10), or exactly 0 when d is silent.
func (d Decibel) Amp() float64 {
	if d.IsSilent() {
		return 0
	}
	return core.DBPowerToLinear(float64(d))
}

// Mul scales the dB value by f.
func (d Decibel) Mul(f float64) Decibel {
	return Decibel(float64(d) * f)
}

// Div returns the ratio of two dB values.
func (d Decibel) Div(o Decibel) float64 {
	return float64(d) / float64(o)
}

// LerpAmp interpolates linearly in amplitude space.
func LerpAmp(start, end Decibel, t float64) Decibel {
	return FromAmp(core.Lerp(start.Amp(), end.Amp(), t))
}

// LerpDB interpolates linearly in dB space.
func LerpDB(start, end Decibel, t float64) Decibel {
	return Decibel(core.Lerp(float64(start), float64(end), t))
}

// EaseDB returns a knob curve that sweeps silence to start over the bottom
// eighth of travel and start to end over the rest.
func EaseDB(start, end float64) ease.Easing[Decibel] {
	return ease.NewSplitLinear(NegInf(), Decibel(start), Decibel(end), VolumeSplitAt)
}

// Envelope policy: attack and retrigger ramps move in amplitude space so
// they rise evenly in loudness; decay and release move in dB space so they
// fall at a constant perceived rate.

// Zero returns the silence floor.
func (Decibel) Zero() Decibel { return NegInf() }

// One returns 0 dB.
func (Decibel) One() Decibel { return ZeroDB() }

// LerpAttack interpolates d to end in amplitude space.
func (d Decibel) LerpAttack(end Decibel, t float64) Decibel { return LerpAmp(d, end, t) }

// LerpDecay interpolates d to end in dB space.
func (d Decibel) LerpDecay(end Decibel, t float64) Decibel { return LerpDB(d, end, t) }

// LerpRelease interpolates d to end in dB space.
func (d Decibel) LerpRelease(end Decibel, t float64) Decibel { return LerpDB(d, end, t) }

// LerpRetrigger interpolates d to end in amplitude space.
func (d Decibel) LerpRetrigger(end Decibel, t float64) Decibel { return LerpAmp(d, end, t) }

// Scale applies an envelope multiply amount. Silence stays silent.
func (d Decibel) Scale(m float64) Decibel {
	if d.IsSilent() {
		return NegInf()
	}
	return d.Mul(m)
}

func (d Decibel) String() string {
	if d.IsSilent() {
		return "-inf dB"
	}
	return fmt.Sprintf("%+.2f dB", float64(d))
}
