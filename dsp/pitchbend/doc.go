// Package pitchbend turns the sparse pitch-bend events of one processing
// buffer into a dense, sample-accurate stream.
//
// The stream is built from the points
//
//	(prev, 0), events..., (last, numSamples)
//
// where last is the value of the final event, or prev if the buffer had no
// events. Consecutive points are joined by linear ramps, so the stream always
// has exactly numSamples values and reaches each event at its offset.
//
// The segment after the final event is held flat rather than extrapolated,
// because later events are not known yet.
package pitchbend
