// Package params connects host automation slots to typed, eased synthesizer
// parameters.
//
// A [Store] holds one raw value in [0, 1] per parameter [ID]. Each slot is a
// single atomic word, so the control thread can write while the render thread
// reads without locks or allocation. The render thread copies the slots into
// a [Raw] array and eases it into a [Parameters] snapshot with an [Easer].
//
// Host-facing helpers address parameters by host index. Two slots exist only
// to complete the envelope parameter set and have no host index.
package params
