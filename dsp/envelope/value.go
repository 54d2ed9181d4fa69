package envelope

import "github.com/cwbudde/algo-synth/dsp/core"

// Value is the capability set an envelope needs from its value type. Methods
// are called on the ramp's start value; Zero and One ignore their receiver.
type Value[T any] interface {
	Zero() T
	One() T
	LerpAttack(end T, t float64) T
	LerpDecay(end T, t float64) T
	LerpRelease(end T, t float64) T
	LerpRetrigger(end T, t float64) T
	Scale(m float64) T
}

// Ratio is a plain envelope value where 0 is rest and 1 is peak.
type Ratio float64

func (Ratio) Zero() Ratio { return 0 }
func (Ratio) One() Ratio  { return 1 }

func (r Ratio) LerpAttack(end Ratio, t float64) Ratio    { return r.lerp(end, t) }
func (r Ratio) LerpDecay(end Ratio, t float64) Ratio     { return r.lerp(end, t) }
func (r Ratio) LerpRelease(end Ratio, t float64) Ratio   { return r.lerp(end, t) }
func (r Ratio) LerpRetrigger(end Ratio, t float64) Ratio { return r.lerp(end, t) }

// Scale multiplies r by m.
func (r Ratio) Scale(m float64) Ratio { return Ratio(float64(r) * m) }

func (r Ratio) lerp(end Ratio, t float64) Ratio {
	return Ratio(core.Lerp(float64(r), float64(end), t))
}
