package ease

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func sweep[T Number](e Easer[T], n int) []T {
	raws := testutil.RawSweep(n)
	out := make([]T, len(raws))
	for i, r := range raws {
		out[i] = e.Ease(r)
	}
	return out
}

func TestLinearEndpointsAndMonotonic(t *testing.T) {
	curves := []Easing[float64]{
		NewLinear(0.0, 1.0),
		NewLinear(-1.0, 1.0),
		NewLinear(0.01, 10.0),
		NewLinear(-100.0, 100.0),
	}

	for _, e := range curves {
		if got := e.Ease(0); got != e.Start {
			t.Errorf("%v: Ease(0) = %v, want %v", e, got, e.Start)
		}
		if got := e.Ease(1); got != e.End {
			t.Errorf("%v: Ease(1) = %v, want %v", e, got, e.End)
		}

		testutil.RequireMonotonic(t, sweep[float64](e, 1001), true)
	}
}

func TestExponential(t *testing.T) {
	e := NewExponential(0.001, 5.0)

	if got := e.Ease(0); got != 0.001 {
		t.Fatalf("Ease(0) = %v, want 0.001", got)
	}
	if got := e.Ease(1); got != 5.0 {
		t.Fatalf("Ease(1) = %v, want 5", got)
	}

	// Slow at the bottom, fast at the top.
	mid := e.Ease(0.5)
	if mid >= NewLinear(0.001, 5.0).Ease(0.5) {
		t.Fatalf("Ease(0.5) = %v, want below the linear midpoint", mid)
	}
	lowStep := e.Ease(0.1) - e.Ease(0)
	highStep := e.Ease(1) - e.Ease(0.9)
	if lowStep >= highStep {
		t.Fatalf("low step %v should be smaller than high step %v", lowStep, highStep)
	}

	vals := sweep[float64](e, 1001)
	testutil.RequireMonotonic(t, vals, true)
	testutil.RequireFinite(t, vals)
}

func TestSteppedLinear(t *testing.T) {
	e := NewSteppedLinear(-24.0, 24.0, 49)

	if got := e.Ease(0); got != -24 {
		t.Fatalf("Ease(0) = %v, want -24", got)
	}
	if got := e.Ease(1); got != 24 {
		t.Fatalf("Ease(1) = %v, want 24", got)
	}
	if got := e.Ease(0.5); got != 0 {
		t.Fatalf("Ease(0.5) = %v, want 0", got)
	}

	for i := 0; i <= 1000; i++ {
		v := e.Ease(float64(i) / 1000)
		if v != math.Trunc(v) {
			t.Fatalf("Ease(%v) = %v, want an integer", float64(i)/1000, v)
		}
		if v < -24 || v > 24 {
			t.Fatalf("Ease(%v) = %v out of range", float64(i)/1000, v)
		}
	}
}

func TestSteppedLinearDegenerate(t *testing.T) {
	if got := NewSteppedLinear(3.0, 9.0, 1).Ease(0.7); got != 3 {
		t.Fatalf("single step Ease = %v, want 3", got)
	}
	if got := NewSteppedLinear(3.0, 9.0, 0).Ease(0.7); got != 3 {
		t.Fatalf("zero steps Ease = %v, want 3", got)
	}
}

func TestSplitLinear(t *testing.T) {
	e := NewSplitLinear(-70.0, -24.0, 12.0, 0.125)

	if got := e.Ease(0); got != -70 {
		t.Fatalf("Ease(0) = %v, want -70", got)
	}
	if got := e.Ease(0.125); got != -24 {
		t.Fatalf("Ease(0.125) = %v, want -24", got)
	}
	if got := e.Ease(1); got != 12 {
		t.Fatalf("Ease(1) = %v, want 12", got)
	}

	const eps = 1e-9
	below := e.Ease(0.125 - eps)
	above := e.Ease(0.125 + eps)
	if math.Abs(below-above) > 1e-6 {
		t.Fatalf("discontinuity at split: %v vs %v", below, above)
	}

	// Halfway through each segment.
	if got := e.Ease(0.0625); math.Abs(got-(-47)) > 1e-9 {
		t.Fatalf("Ease(0.0625) = %v, want -47", got)
	}
	if got := e.Ease(0.5625); math.Abs(got-(-6)) > 1e-9 {
		t.Fatalf("Ease(0.5625) = %v, want -6", got)
	}
}

func TestSplitLinearDegenerateSplit(t *testing.T) {
	atOne := NewSplitLinear(0.0, 1.0, 2.0, 1)
	if got := atOne.Ease(1); got != 2 {
		t.Fatalf("splitAt=1: Ease(1) = %v, want 2", got)
	}
	if got := atOne.Ease(0.5); got != 0.5 {
		t.Fatalf("splitAt=1: Ease(0.5) = %v, want 0.5", got)
	}

	atZero := NewSplitLinear(0.0, 1.0, 2.0, 0)
	if got := atZero.Ease(0); got != 1 {
		t.Fatalf("splitAt=0: Ease(0) = %v, want 1", got)
	}
}

func TestNamedDomainType(t *testing.T) {
	type semis float64
	e := NewSteppedLinear[semis](-12, 12, 25)
	if got := e.Ease(1); got != 12 {
		t.Fatalf("Ease(1) = %v, want 12", got)
	}
}

func TestInExpo(t *testing.T) {
	if InExpo(0) != 0 {
		t.Fatal("InExpo(0) != 0")
	}
	if InExpo(1) != 1 {
		t.Fatalf("InExpo(1) = %v, want 1", InExpo(1))
	}
	if got := InExpo(0.5); math.Abs(got-1.0/32) > 1e-15 {
		t.Fatalf("InExpo(0.5) = %v, want 1/32", got)
	}
}

func TestKindString(t *testing.T) {
	if Exponential.String() != "exponential" || Kind(99).String() != "unknown" {
		t.Fatal("unexpected Kind names")
	}
}
