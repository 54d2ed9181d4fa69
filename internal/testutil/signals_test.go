package testutil

import "testing"

func TestRawSweep(t *testing.T) {
	s := RawSweep(5)
	RequireSliceNearlyEqual(t, s, []float64{0, 0.25, 0.5, 0.75, 1}, 0)

	if got := RawSweep(0); got != nil {
		t.Fatalf("RawSweep(0) = %v, want nil", got)
	}
	if got := RawSweep(1); len(got) != 1 || got[0] != 0 {
		t.Fatalf("RawSweep(1) = %v, want [0]", got)
	}
}

func TestDeterministicRaw(t *testing.T) {
	a := DeterministicRaw(42, 64)
	b := DeterministicRaw(42, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < 0 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of [0, 1)", i, a[i])
		}
	}

	c := DeterministicRaw(43, 64)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds should produce different values")
	}
}

func TestRamp(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(0, 1, 4), []float64{0, 0.25, 0.5, 0.75}, 1e-15)
	RequireSliceNearlyEqual(t, Ramp(1, 0, 2), []float64{1, 0.5}, 1e-15)
	if got := Ramp(0, 1, 0); len(got) != 0 {
		t.Fatalf("Ramp(0, 1, 0) = %v, want empty", got)
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 10)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("d[%d] = %v, want 0.5", i, v)
		}
	}
	o := Ones(3)
	RequireSliceNearlyEqual(t, o, []float64{1, 1, 1}, 0)
}
