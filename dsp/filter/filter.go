package filter

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/units"
)

const (
	// MinCutoff and MaxCutoff bound the cutoff knob and envelope sweeps.
	MinCutoff units.Hertz = 20
	MaxCutoff units.Hertz = 20480

	defaultQ = 1 / math.Sqrt2
)

// CutoffEasing maps the cutoff knob onto MinCutoff..MaxCutoff, one octave per
// tenth of travel.
var CutoffEasing = units.OctaveEasing{Start: MinCutoff, End: MaxCutoff}

// Type selects the filter response.
type Type uint8

const (
	LowPass Type = iota
	HighPass
	PeakingEQ
	LowShelf
	HighShelf
	BandPass
	Notch
	AllPass
	SinglePoleLowPass
)

// KnobTypes is the order the filter type knob selects from.
var KnobTypes = []Type{LowPass, HighPass, PeakingEQ, LowShelf, HighShelf, BandPass, Notch, AllPass}

func (t Type) String() string {
	switch t {
	case LowPass:
		return "Low Pass"
	case HighPass:
		return "High Pass"
	case PeakingEQ:
		return "Peaking EQ"
	case LowShelf:
		return "Low Shelf"
	case HighShelf:
		return "High Shelf"
	case BandPass:
		return "Band Pass"
	case Notch:
		return "Notch Filter"
	case AllPass:
		return "All Pass"
	case SinglePoleLowPass:
		return "Single Pole Low Pass"
	default:
		return "Unknown"
	}
}

// HasGain reports whether the gain parameter affects t.
func (t Type) HasGain() bool {
	return t == PeakingEQ || t == LowShelf || t == HighShelf
}

// Params is an eased filter setting.
type Params struct {
	Type   Type
	Freq   units.Hertz
	Q      float64
	GainDB float64
}

// Sweep returns the cutoff moved by octaves, clamped to the knob range.
func Sweep(base units.Hertz, octaves float64) units.Hertz {
	p := base.Pitch() + units.Pitch(octaves)
	return p.Hertz().Clamp(MinCutoff, MaxCutoff)
}

// Coefficients holds a normalized biquad (a0 = 1) in Direct Form II
// Transposed sign convention.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Passthrough returns the identity filter.
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// Design computes coefficients for p at sampleRate. Frequencies outside
// (0, Nyquist) yield the passthrough filter.
func Design(p Params, sampleRate units.SampleRate) Coefficients {
	w0, ok := normalizedW0(p.Freq.Biquad(), sampleRate.Hz())
	if !ok {
		return Passthrough()
	}

	if p.Type == SinglePoleLowPass {
		x := math.Exp(-w0)
		return Coefficients{B0: 1 - x, A1: -x}
	}

	q := p.Q
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = defaultQ
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, p.GainDB/40)

	var b0, b1, b2, a0, a1, a2 float64
	switch p.Type {
	case HighPass:
		b0 = (1 + cw) / 2
		b1 = -(1 + cw)
		b2 = (1 + cw) / 2
		a0, a1, a2 = 1+alpha, -2*cw, 1-alpha
	case BandPass:
		b0, b1, b2 = alpha, 0, -alpha
		a0, a1, a2 = 1+alpha, -2*cw, 1-alpha
	case Notch:
		b0, b1, b2 = 1, -2*cw, 1
		a0, a1, a2 = 1+alpha, -2*cw, 1-alpha
	case AllPass:
		b0, b1, b2 = 1-alpha, -2*cw, 1+alpha
		a0, a1, a2 = 1+alpha, -2*cw, 1-alpha
	case PeakingEQ:
		b0, b1, b2 = 1+alpha*a, -2*cw, 1-alpha*a
		a0, a1, a2 = 1+alpha/a, -2*cw, 1-alpha/a
	case LowShelf:
		beta := 2 * math.Sqrt(a) * alpha
		b0 = a * ((a + 1) - (a-1)*cw + beta)
		b1 = 2 * a * ((a - 1) - (a+1)*cw)
		b2 = a * ((a + 1) - (a-1)*cw - beta)
		a0 = (a + 1) + (a-1)*cw + beta
		a1 = -2 * ((a - 1) + (a+1)*cw)
		a2 = (a + 1) + (a-1)*cw - beta
	case HighShelf:
		beta := 2 * math.Sqrt(a) * alpha
		b0 = a * ((a + 1) + (a-1)*cw + beta)
		b1 = -2 * a * ((a - 1) + (a+1)*cw)
		b2 = a * ((a + 1) + (a-1)*cw - beta)
		a0 = (a + 1) - (a-1)*cw + beta
		a1 = 2 * ((a - 1) - (a+1)*cw)
		a2 = (a + 1) - (a-1)*cw - beta
	default:
		b0 = (1 - cw) / 2
		b1 = 1 - cw
		b2 = (1 - cw) / 2
		a0, a1, a2 = 1+alpha, -2*cw, 1-alpha
	}

	return normalize(b0, b1, b2, a0, a1, a2)
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Passthrough()
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
