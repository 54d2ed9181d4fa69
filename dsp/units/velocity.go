package units

import "github.com/cwbudde/algo-synth/dsp/ease"

// Vel is a note velocity in [0, 1] together with its eased value. The
// ease-in-expo curve keeps soft notes from opening the filter much.
type Vel struct {
	Raw   float64
	Eased float64
}

// NewVel eases a raw velocity.
func NewVel(raw float64) Vel {
	return Vel{Raw: raw, Eased: ease.InExpo(raw)}
}

// VelFromMIDI converts a 7-bit MIDI velocity.
func VelFromMIDI(v uint8) Vel {
	if v > 127 {
		v = 127
	}
	return NewVel(float64(v) / 127)
}
