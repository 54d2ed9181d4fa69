package filter

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/units"
)

// MagnitudeSquared returns |H(f)|^2 in closed form.
func (c Coefficients) MagnitudeSquared(freq units.Hertz, sampleRate units.SampleRate) float64 {
	cw := 2 * math.Cos(2*math.Pi*float64(freq)/sampleRate.Hz())
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freq units.Hertz, sampleRate units.SampleRate) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freq, sampleRate))
}
