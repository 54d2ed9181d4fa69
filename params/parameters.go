package params

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/ease"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter"
	"github.com/cwbudde/algo-synth/dsp/units"
)

// LFO is a low frequency oscillator setting.
type LFO struct {
	Amplitude float64
	Period    units.Seconds
}

// Freq returns the LFO rate.
func (l LFO) Freq() units.Hertz {
	return l.Period.ToHertz()
}

// OscParams is the eased state of one oscillator.
type OscParams struct {
	Volume     units.Decibel
	Shape      NoteShape
	Pan        float64 // -1 is hard left
	Phase      float64 // fraction of a cycle
	CoarseTune int     // semitones
	FineTune   float64 // cents
	VolEnv     envelope.VolEnvParams
	VolLFO     LFO
	PitchEnv   envelope.GeneralEnvParams
	PitchLFO   LFO
	Filter     filter.Params
	FilterEnv  envelope.FilterEnvParams
}

// Tuning returns the total detune in semitones.
func (o OscParams) Tuning() float64 {
	return float64(o.CoarseTune) + o.FineTune/100
}

// Parameters is a full eased snapshot.
type Parameters struct {
	MasterVol units.Decibel
	Osc       OscParams
}

// Parameters eases every slot of raw. It fails only when a duration slot
// holds NaN.
func (e *Easer) Parameters(raw *Raw) (Parameters, error) {
	d := durations{raw: raw}
	p := Parameters{
		MasterVol: e.MasterVol.Ease(raw[MasterVolume]),
		Osc: OscParams{
			Volume: e.OscVol.Ease(raw[OscVolume]),
			Shape: NoteShape{
				Kind: e.Shape.Ease(raw[OscShape]),
				Warp: e.Warp.Ease(raw[OscWarp]),
			},
			Pan:        e.Pan.Ease(raw[OscPan]),
			Phase:      e.Phase.Ease(raw[OscPhase]),
			CoarseTune: int(e.CoarseTune.Ease(raw[OscCoarseTune])),
			FineTune:   e.FineTune.Ease(raw[OscFineTune]),
			VolEnv: envelope.VolEnvParams{
				AttackTime:   d.get(e.EnvAttack, VolAttack),
				HoldTime:     d.get(e.EnvHold, VolHold),
				DecayTime:    d.get(e.EnvDecay, VolDecay),
				SustainLevel: e.VolSustain.Ease(raw[VolSustain]),
				ReleaseTime:  d.get(e.EnvRelease, VolRelease),
			},
			VolLFO: LFO{
				Amplitude: e.VolLFOAmp.Ease(raw[VolLFOAmplitude]),
				Period:    d.get(e.LFOPeriod, VolLFOPeriod),
			},
			PitchEnv: envelope.GeneralEnvParams{
				AttackTime:     d.get(e.EnvAttack, PitchAttack),
				HoldTime:       d.get(e.EnvHold, PitchHold),
				DecayTime:      d.get(e.EnvDecay, PitchDecay),
				SustainLevel:   envelope.Ratio(e.EnvSustain.Ease(raw[PitchSustain])),
				ReleaseTime:    d.get(e.EnvRelease, PitchRelease),
				MultiplyAmount: e.EnvMultiply.Ease(raw[PitchMultiply]),
			},
			PitchLFO: LFO{
				Amplitude: e.PitchLFOAmp.Ease(raw[PitchLFOAmplitude]),
				Period:    d.get(e.LFOPeriod, PitchLFOPeriod),
			},
			Filter: filter.Params{
				Type:   e.FilterType.Ease(raw[FilterType]),
				Freq:   e.FilterFreq.Ease(raw[FilterFreq]),
				Q:      e.FilterQ.Ease(raw[FilterQ]),
				GainDB: e.FilterGain.Ease(raw[FilterGain]),
			},
			FilterEnv: envelope.FilterEnvParams{
				AttackTime:     d.get(e.EnvAttack, FilterEnvAttack),
				HoldTime:       d.get(e.EnvHold, FilterEnvHold),
				DecayTime:      d.get(e.EnvDecay, FilterEnvDecay),
				MultiplyAmount: e.EnvMultiply.Ease(raw[FilterEnvMultiply]),
			},
		},
	}
	if d.err != nil {
		return Parameters{}, d.err
	}
	return p, nil
}

// durations eases time slots and keeps the first failure.
type durations struct {
	raw *Raw
	err error
}

func (d *durations) get(c ease.Easing[float64], id ID) units.Seconds {
	if d.err != nil {
		return units.ZeroSeconds
	}
	s, err := units.NewSeconds(c.Ease(d.raw[id]))
	if err != nil {
		d.err = fmt.Errorf("params: %s: %w", id, err)
		return units.ZeroSeconds
	}
	return s
}
