// Package units provides the value types the synthesizer core computes with:
// sample rates, durations, decibels, frequencies, log-frequency pitch, MIDI
// notes and velocities.
//
// Types that can be invalid ([SampleRate], [Seconds]) are validated once at
// construction; arithmetic on constructed values does not re-check.
//
// [Decibel] uses the power convention (10*log10) and treats every level at or
// below [NegInfDBThreshold] as silence.
package units

import "errors"

var (
	// ErrInvalidSampleRate is returned for sample rates that are not finite and positive.
	ErrInvalidSampleRate = errors.New("units: invalid sample rate")
	// ErrNaN is returned when NaN is passed where an ordered value is required.
	ErrNaN = errors.New("units: NaN is not an ordered value")
)
