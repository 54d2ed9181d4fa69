// Package ease maps normalized automation values in [0, 1] onto typed domain
// values along a fixed set of response curves.
//
// Available curves:
//
//   - [Linear]:        start + raw*(end-start)
//   - [Exponential]:   exponentially skewed, slow at the bottom of the knob travel
//   - [SteppedLinear]: linear, snapped to a grid of integer-valued steps
//   - [SplitLinear]:   two linear segments joined at SplitAt
//   - [DiscreteLinear]: N equal buckets selecting from an enumerated list
//
// Callers clamp raw values to [0, 1] before easing; no curve clamps its input.
// Every curve is a total, allocation-free function of raw on that interval.
package ease
