package params

import (
	"github.com/cwbudde/algo-synth/dsp/ease"
	"github.com/cwbudde/algo-synth/dsp/filter"
	"github.com/cwbudde/algo-synth/dsp/units"
)

// Easer holds the curve of every knob.
type Easer struct {
	MasterVol  ease.Easing[units.Decibel]
	OscVol     ease.Easing[units.Decibel]
	VolSustain ease.Easing[units.Decibel]

	Phase      ease.Easing[float64]
	Pan        ease.Easing[float64]
	Warp       ease.Easing[float64]
	Shape      ease.DiscreteLinear[ShapeKind]
	FineTune   ease.Easing[float64]
	CoarseTune ease.Easing[float64]

	EnvAttack   ease.Easing[float64]
	EnvHold     ease.Easing[float64]
	EnvDecay    ease.Easing[float64]
	EnvSustain  ease.Easing[float64]
	EnvRelease  ease.Easing[float64]
	EnvMultiply ease.Easing[float64]

	VolLFOAmp   ease.Easing[float64]
	PitchLFOAmp ease.Easing[float64]
	LFOPeriod   ease.Easing[float64]

	FilterType ease.DiscreteLinear[filter.Type]
	FilterFreq ease.Easer[units.Hertz]
	FilterQ    ease.Easing[float64]
	FilterGain ease.Easing[float64]
}

var (
	identity = ease.NewLinear(0.0, 1.0)
	bipolar  = ease.NewLinear(-1.0, 1.0)
)

// DefaultEaser is the curve set the host-visible knobs use.
var DefaultEaser = Easer{
	MasterVol:  units.EaseDB(-36, 12),
	OscVol:     units.EaseDB(-24, 12),
	VolSustain: units.EaseDB(-24, 0),

	Phase:      identity,
	Pan:        bipolar,
	Warp:       identity,
	Shape:      ease.NewDiscreteLinear(ShapeKinds...),
	FineTune:   ease.NewLinear(-100.0, 100.0),
	CoarseTune: ease.NewSteppedLinear(-24.0, 24.0, 49),

	EnvAttack:   ease.NewExponential(0.001, 2.0),
	EnvHold:     ease.NewExponential(0.0, 5.0),
	EnvDecay:    ease.NewExponential(0.001, 5.0),
	EnvSustain:  identity,
	EnvRelease:  ease.NewExponential(0.001, 5.0),
	EnvMultiply: bipolar,

	VolLFOAmp:   ease.NewExponential(0.0, 1.0),
	PitchLFOAmp: ease.NewExponential(0.0, 0.1),
	LFOPeriod:   ease.NewExponential(0.001, 10.0),

	FilterType: ease.NewDiscreteLinear(filter.KnobTypes...),
	FilterFreq: filter.CutoffEasing,
	FilterQ:    ease.NewLinear(0.01, 10.0),
	FilterGain: ease.NewLinear(-36.0, 36.0),
}
