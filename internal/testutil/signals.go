package testutil

import (
	"math/rand"
)

// RawSweep returns n knob positions evenly spaced over [0, 1], both ends
// included.
func RawSweep(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	last := float64(n - 1)
	for i := range out {
		out[i] = float64(i) / last
	}
	out[n-1] = 1
	return out
}

// DeterministicRaw returns n knob positions in [0, 1) drawn from a fixed
// seed.
func DeterministicRaw(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// Ramp returns n values stepping linearly from from toward to, with
// Ramp(..)[k] = from + (to-from)*k/n. The endpoint is not included, which
// matches an envelope stage of n samples.
func Ramp(from, to float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n)
		out[i] = from*(1-t) + to*t
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
