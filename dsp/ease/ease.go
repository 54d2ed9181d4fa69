package ease

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// ExpSkew is the skew factor of the [Exponential] curve.
const ExpSkew = 6.0

// expNorm is the curve value at raw=1, used to normalize the exponential.
var expNorm = math.Expm1(ExpSkew)

// Kind selects the curve an [Easing] evaluates.
type Kind uint8

const (
	// Linear interpolates Start to End.
	Linear Kind = iota
	// Exponential interpolates Start to End with an exponential skew.
	Exponential
	// SteppedLinear snaps a linear interpolation to Steps integer points.
	SteppedLinear
	// SplitLinear interpolates Start to Mid below SplitAt and Mid to End above it.
	SplitLinear
)

// String returns the curve name.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	case SteppedLinear:
		return "stepped-linear"
	case SplitLinear:
		return "split-linear"
	default:
		return "unknown"
	}
}

// Number is the set of domain types an [Easing] can produce.
type Number interface {
	~float64
}

// Easer maps a raw normalized value onto a domain value.
type Easer[T any] interface {
	Ease(raw float64) T
}

// Easing is a tagged curve over a float-backed domain type. The zero value is
// a Linear curve from 0 to 0.
type Easing[T Number] struct {
	Kind    Kind
	Start   T
	Mid     T
	End     T
	SplitAt float64
	Steps   int
}

// NewLinear returns a linear curve from start to end.
func NewLinear[T Number](start, end T) Easing[T] {
	return Easing[T]{Kind: Linear, Start: start, End: end}
}

// NewExponential returns an exponentially skewed curve from start to end.
func NewExponential[T Number](start, end T) Easing[T] {
	return Easing[T]{Kind: Exponential, Start: start, End: end}
}

// NewSteppedLinear returns a linear curve from start to end snapped to steps
// equally spaced points. start and end should be integers.
func NewSteppedLinear[T Number](start, end T, steps int) Easing[T] {
	return Easing[T]{Kind: SteppedLinear, Start: start, End: end, Steps: steps}
}

// NewSplitLinear returns a two-segment curve: start to mid over [0, splitAt)
// and mid to end over [splitAt, 1].
func NewSplitLinear[T Number](start, mid, end T, splitAt float64) Easing[T] {
	return Easing[T]{Kind: SplitLinear, Start: start, Mid: mid, End: end, SplitAt: splitAt}
}

// Ease evaluates the curve at raw, which must already lie in [0, 1].
func (e Easing[T]) Ease(raw float64) T {
	start, end := float64(e.Start), float64(e.End)

	switch e.Kind {
	case Exponential:
		return T(core.Lerp(start, end, expCurve(raw)))
	case SteppedLinear:
		return T(stepped(start, end, e.Steps, raw))
	case SplitLinear:
		return T(split(start, float64(e.Mid), end, e.SplitAt, raw))
	default:
		return T(core.Lerp(start, end, raw))
	}
}

func expCurve(raw float64) float64 {
	switch raw {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Expm1(ExpSkew*raw) / expNorm
}

func stepped(start, end float64, steps int, raw float64) float64 {
	if steps <= 1 {
		return start
	}

	last := float64(steps - 1)
	t := math.Round(raw*last) / last

	return math.Round(core.Lerp(start, end, t))
}

func split(start, mid, end, splitAt, raw float64) float64 {
	if raw < splitAt {
		return core.Lerp(start, mid, raw/splitAt)
	}

	width := 1 - splitAt
	if width <= 0 {
		return end
	}

	return core.Lerp(mid, end, (raw-splitAt)/width)
}

// InExpo is the exponential ease-in curve 2^(10t-10), pinned to 0 at t=0.
func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Exp2(10*t - 10)
}
