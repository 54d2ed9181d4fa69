package params

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/units"
)

// Placeholder texts for slots without a meaningful display.
const (
	Impossible    = "IMPOSSIBLE"
	NotApplicable = "N/A"
)

// Strings returns the display value and unit of id in p.
func (p *Parameters) Strings(id ID) (value, unit string, err error) {
	o := &p.Osc
	switch id {
	case MasterVolume:
		value, unit = volumeStrings(p.MasterVol)
	case OscVolume:
		value, unit = volumeStrings(o.Volume)
	case OscPhase:
		value, unit = fmt.Sprintf("%.2f", o.Phase*360), " deg"
	case OscPan:
		value, unit = panStrings(o.Pan)
	case OscShape:
		value = o.Shape.Kind.String()
	case OscWarp:
		if o.Shape.Kind.Warped() {
			value = fmt.Sprintf("%.2f", o.Shape.Warp)
		} else {
			value = NotApplicable
		}
	case OscFineTune:
		value, unit = fmt.Sprintf("%.2f", o.FineTune), " cents"
	case OscCoarseTune:
		value, unit = fmt.Sprintf("%d", o.CoarseTune), " semis"

	case VolAttack:
		value, unit = durationStrings(o.VolEnv.AttackTime)
	case VolHold:
		value, unit = durationStrings(o.VolEnv.HoldTime)
	case VolDecay:
		value, unit = durationStrings(o.VolEnv.DecayTime)
	case VolSustain:
		value, unit = volumeStrings(o.VolEnv.SustainLevel)
	case VolRelease:
		value, unit = durationStrings(o.VolEnv.ReleaseTime)
	case VolMultiply:
		value, unit = NotApplicable, Impossible
	case VolLFOAmplitude:
		value, unit = percentStrings(o.VolLFO.Amplitude)
	case VolLFOPeriod:
		value, unit = durationStrings(o.VolLFO.Period)

	case PitchAttack:
		value, unit = durationStrings(o.PitchEnv.AttackTime)
	case PitchHold:
		value, unit = durationStrings(o.PitchEnv.HoldTime)
	case PitchDecay:
		value, unit = durationStrings(o.PitchEnv.DecayTime)
	case PitchSustain:
		value, unit = percentStrings(float64(o.PitchEnv.SustainLevel))
	case PitchRelease:
		value, unit = durationStrings(o.PitchEnv.ReleaseTime)
	case PitchMultiply:
		value, unit = percentStrings(o.PitchEnv.MultiplyAmount)
	case PitchLFOAmplitude:
		value, unit = percentStrings(o.PitchLFO.Amplitude)
	case PitchLFOPeriod:
		value, unit = durationStrings(o.PitchLFO.Period)

	case FilterType:
		value = o.Filter.Type.String()
	case FilterFreq:
		value, unit = fmt.Sprintf("%.2f", o.Filter.Freq.Float64()), " Hz"
	case FilterQ:
		value = fmt.Sprintf("%.2f", o.Filter.Q)
	case FilterGain:
		if o.Filter.Type.HasGain() {
			value, unit = fmt.Sprintf("%.2f", o.Filter.GainDB), " dB"
		} else {
			value = NotApplicable
		}

	case FilterEnvAttack:
		value, unit = durationStrings(o.FilterEnv.AttackTime)
	case FilterEnvHold:
		value, unit = durationStrings(o.FilterEnv.HoldTime)
	case FilterEnvDecay:
		value, unit = durationStrings(o.FilterEnv.DecayTime)
	case FilterEnvMultiply:
		value, unit = percentStrings(o.FilterEnv.MultiplyAmount)

	default:
		return "", "", fmt.Errorf("%w: %d", ErrUnknownParameter, id)
	}
	return value, unit, nil
}

func durationStrings(s units.Seconds) (string, string) {
	if v := s.Float64(); v < 1 {
		return fmt.Sprintf("%.1f", v*1000), " ms"
	}
	return fmt.Sprintf("%.2f", s.Float64()), " sec"
}

func volumeStrings(d units.Decibel) (string, string) {
	switch {
	case d.IsSilent():
		return "-inf", " dB"
	case d < 0:
		return fmt.Sprintf("%.2f", d.DB()), " dB"
	default:
		return fmt.Sprintf("+%.2f", d.DB()), " dB"
	}
}

func panStrings(pan float64) (string, string) {
	switch {
	case pan < 0:
		return fmt.Sprintf("%.2f", -pan*100), "% L"
	case pan > 0:
		return fmt.Sprintf("%.2f", pan*100), "% R"
	default:
		return "", "% C"
	}
}

func percentStrings(f float64) (string, string) {
	return fmt.Sprintf("%.2f", f*100), "%"
}
