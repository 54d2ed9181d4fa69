package units

import (
	"fmt"
	"math"
)

// SampleTime counts samples from some reference point.
type SampleTime = int

// SampleRate is a playback rate in Hz. The zero value is invalid; use
// [NewSampleRate].
type SampleRate struct {
	hz float64
}

// NewSampleRate validates hz and returns a SampleRate.
func NewSampleRate(hz float64) (SampleRate, error) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return SampleRate{}, fmt.Errorf("%w: must be > 0 and finite: %f", ErrInvalidSampleRate, hz)
	}
	return SampleRate{hz: hz}, nil
}

// MustSampleRate is like NewSampleRate but panics on invalid input. It is
// meant for package-level constants and tests.
func MustSampleRate(hz float64) SampleRate {
	sr, err := NewSampleRate(hz)
	if err != nil {
		panic(err)
	}
	return sr
}

// Hz returns the rate in Hz.
func (sr SampleRate) Hz() float64 {
	return sr.hz
}

// Valid reports whether sr was constructed by NewSampleRate.
func (sr SampleRate) Valid() bool {
	return sr.hz > 0
}

// ToSeconds converts a sample count to a duration.
func (sr SampleRate) ToSeconds(samples SampleTime) Seconds {
	return seconds(float64(samples) / sr.hz)
}

// ToSamples converts a duration to the nearest whole sample count. Counts
// beyond the int range saturate, so an endless duration is math.MaxInt.
func (sr SampleRate) ToSamples(s Seconds) SampleTime {
	n := math.Round(s.v * sr.hz)
	switch {
	case math.IsNaN(n):
		return 0
	case n >= math.MaxInt:
		return math.MaxInt
	case n <= math.MinInt:
		return math.MinInt
	}
	return SampleTime(n)
}

// SamplePeriod returns the duration of one sample.
func (sr SampleRate) SamplePeriod() Seconds {
	return seconds(1 / sr.hz)
}

func (sr SampleRate) String() string {
	return fmt.Sprintf("%g Hz", sr.hz)
}
