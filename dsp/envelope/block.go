package envelope

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/units"
)

// RenderGain advances a volume envelope len(dst) samples and writes the
// linear gain of each sample to dst.
func RenderGain(dst []float64, e *Envelope[units.Decibel], p Params[units.Decibel]) {
	m := p.Multiply()
	for i := range dst {
		dst[i] = e.step(p).Scale(m).Amp()
	}
}

// ApplyBlock multiplies buf by gains sample by sample. Only the overlapping
// prefix is processed when the lengths differ.
func ApplyBlock(buf, gains []float64) {
	n := min(len(buf), len(gains))
	if n == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf[:n], gains[:n])
}
