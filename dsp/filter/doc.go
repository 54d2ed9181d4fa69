// Package filter turns eased filter parameters into biquad coefficients.
//
// Only the parameter side lives here: [Design] produces RBJ-style
// [Coefficients] normalized to a0 = 1 and [Coefficients.MagnitudeDB] reports
// the resulting response for display. Running the difference equation is the
// job of the DSP kernel that consumes the coefficients.
package filter
