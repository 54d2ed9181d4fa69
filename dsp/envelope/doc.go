// Package envelope implements the hold-extended ADSR envelope shared by the
// volume, pitch, filter and vibrato modulators.
//
// An envelope is generic over its value type. A [Value] decides what silence
// ([Value.Zero]) and peak ([Value.One]) mean and how each stage interpolates:
// [units.Decibel] ramps attacks in amplitude space and decays in dB space,
// [Ratio] ramps linearly everywhere. Timing and targets come from a [Params]
// snapshot that may change between blocks.
//
// Stage order is Attack, Hold, Decay, Sustain, Release, Idle. Zero-length
// stages are skipped within the same sample.
package envelope
