package units

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Note is a MIDI note number.
type Note uint8

// Hertz returns the equal-tempered frequency of n with A4 (69) at 440 Hz.
func (n Note) Hertz() Hertz {
	return Hertz(440 * math.Exp2((float64(n)-69)/12))
}

// Pitch is log2(Hz). Portamento and filter sweeps interpolate Pitch linearly,
// which is linear in octaves, without recomputing logarithms every sample.
type Pitch float64

// PitchFromHertz converts a positive frequency to Pitch.
func PitchFromHertz(h Hertz) Pitch {
	return Pitch(math.Log2(float64(h)))
}

// PitchFromNote returns the Pitch of a MIDI note.
func PitchFromNote(n Note) Pitch {
	return PitchFromHertz(n.Hertz())
}

// Hertz converts p back to a frequency.
func (p Pitch) Hertz() Hertz {
	return Hertz(math.Exp2(float64(p)))
}

// Add returns p+o. Adding 1 raises the pitch an octave.
func (p Pitch) Add(o Pitch) Pitch {
	return p + o
}

// Sub returns p-o.
func (p Pitch) Sub(o Pitch) Pitch {
	return p - o
}

// Mul scales p by f.
func (p Pitch) Mul(f float64) Pitch {
	return Pitch(float64(p) * f)
}

// Semitones returns p shifted by s equal-tempered semitones.
func (p Pitch) Semitones(s float64) Pitch {
	return p + Pitch(s/12)
}

// Lerp interpolates p to end.
func (p Pitch) Lerp(end Pitch, t float64) Pitch {
	return Pitch(core.Lerp(float64(p), float64(end), t))
}
