package envelope

import "github.com/cwbudde/algo-synth/dsp/units"

// Params is the timing and target set of an envelope.
//
//   - Attack ramps Zero to One.
//   - Hold stays at One.
//   - Decay ramps One to Sustain.
//   - Sustain holds until note-off.
//   - Release ramps the current value to Zero.
//
// The stage output is then scaled by Multiply.
type Params[T any] interface {
	Attack() units.Seconds
	Hold() units.Seconds
	Decay() units.Seconds
	Sustain() T
	Release() units.Seconds
	Multiply() float64
}

// VolEnvParams drives a volume envelope. It has no multiply stage.
type VolEnvParams struct {
	AttackTime   units.Seconds
	HoldTime     units.Seconds
	DecayTime    units.Seconds
	SustainLevel units.Decibel
	ReleaseTime  units.Seconds
}

func (p VolEnvParams) Attack() units.Seconds  { return p.AttackTime }
func (p VolEnvParams) Hold() units.Seconds    { return p.HoldTime }
func (p VolEnvParams) Decay() units.Seconds   { return p.DecayTime }
func (p VolEnvParams) Sustain() units.Decibel { return p.SustainLevel }
func (p VolEnvParams) Release() units.Seconds { return p.ReleaseTime }
func (p VolEnvParams) Multiply() float64      { return 1 }

// GeneralEnvParams drives pitch and vibrato envelopes. Sustain is a fraction
// of the peak and MultiplyAmount is usually in [-1, 1].
type GeneralEnvParams struct {
	AttackTime     units.Seconds
	HoldTime       units.Seconds
	DecayTime      units.Seconds
	SustainLevel   Ratio
	ReleaseTime    units.Seconds
	MultiplyAmount float64
}

func (p GeneralEnvParams) Attack() units.Seconds  { return p.AttackTime }
func (p GeneralEnvParams) Hold() units.Seconds    { return p.HoldTime }
func (p GeneralEnvParams) Decay() units.Seconds   { return p.DecayTime }
func (p GeneralEnvParams) Sustain() Ratio         { return p.SustainLevel }
func (p GeneralEnvParams) Release() units.Seconds { return p.ReleaseTime }
func (p GeneralEnvParams) Multiply() float64      { return p.MultiplyAmount }

// FilterEnvParams drives the filter cutoff envelope. It always decays to
// zero and has no release stage.
type FilterEnvParams struct {
	AttackTime     units.Seconds
	HoldTime       units.Seconds
	DecayTime      units.Seconds
	MultiplyAmount float64
}

func (p FilterEnvParams) Attack() units.Seconds  { return p.AttackTime }
func (p FilterEnvParams) Hold() units.Seconds    { return p.HoldTime }
func (p FilterEnvParams) Decay() units.Seconds   { return p.DecayTime }
func (p FilterEnvParams) Sustain() Ratio         { return 0 }
func (p FilterEnvParams) Release() units.Seconds { return units.ZeroSeconds }
func (p FilterEnvParams) Multiply() float64      { return p.MultiplyAmount }
