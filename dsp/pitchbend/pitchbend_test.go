package pitchbend

import (
	"errors"
	"math"
	"testing"
)

func collect(g *Generator) []NormalizedPitchbend {
	var out []NormalizedPitchbend
	for {
		v, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func requireStream(t *testing.T, got, want []NormalizedPitchbend) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v (stream %v)", i, got[i], want[i], got)
		}
	}
}

func TestNoEventsIsFlat(t *testing.T) {
	g, last := ToPitchEnvelope(nil, 0, 4)
	requireStream(t, collect(g), []NormalizedPitchbend{0, 0, 0, 0})
	if last != 0 {
		t.Fatalf("last = %v, want 0", last)
	}

	g, last = ToPitchEnvelope(nil, -0.5, 3)
	requireStream(t, collect(g), []NormalizedPitchbend{-0.5, -0.5, -0.5})
	if last != -0.5 {
		t.Fatalf("last = %v, want -0.5", last)
	}
}

func TestSingleEventRampsThenHolds(t *testing.T) {
	g, last := ToPitchEnvelope([]Event{{Value: 1, Offset: 2}}, 0, 4)
	requireStream(t, collect(g), []NormalizedPitchbend{0, 0.5, 1, 1})
	if last != 1 {
		t.Fatalf("last = %v, want 1", last)
	}
}

func TestMultipleEvents(t *testing.T) {
	events := []Event{
		{Value: 0.5, Offset: 2},
		{Value: -0.5, Offset: 6},
	}
	g := NewGenerator(events, 0, 8)
	want := []NormalizedPitchbend{0, 0.25, 0.5, 0.25, 0, -0.25, -0.5, -0.5}
	requireStream(t, collect(g), want)
}

func TestEventAtZeroAndAtEnd(t *testing.T) {
	// An event at offset 0 replaces prev immediately.
	g := NewGenerator([]Event{{Value: 1, Offset: 0}}, -1, 3)
	requireStream(t, collect(g), []NormalizedPitchbend{1, 1, 1})

	// An event at numSamples is reached exactly at the next buffer.
	g = NewGenerator([]Event{{Value: 1, Offset: 4}}, 0, 4)
	requireStream(t, collect(g), []NormalizedPitchbend{0, 0.25, 0.5, 0.75})
	if g.Last() != 1 {
		t.Fatalf("last = %v, want 1", g.Last())
	}
}

func TestDuplicateOffsets(t *testing.T) {
	events := []Event{
		{Value: 0.2, Offset: 2},
		{Value: 0.8, Offset: 2},
	}
	g := NewGenerator(events, 0, 4)
	requireStream(t, collect(g), []NormalizedPitchbend{0, 0.1, 0.8, 0.8})
}

func TestAlwaysExactLength(t *testing.T) {
	cases := [][]Event{
		nil,
		{{Value: 1, Offset: 0}},
		{{Value: 1, Offset: 5}, {Value: 0, Offset: 3}},  // out of order
		{{Value: 1, Offset: -4}, {Value: 0, Offset: 99}}, // out of range
	}
	for _, events := range cases {
		for _, n := range []int{0, 1, 7, 64} {
			g := NewGenerator(events, 0.3, n)
			got := collect(g)
			if len(got) != n {
				t.Fatalf("events=%v n=%d: len = %d", events, n, len(got))
			}
			for i, v := range got {
				if math.IsNaN(float64(v)) {
					t.Fatalf("events=%v n=%d: NaN at %d", events, n, i)
				}
			}
		}
	}
}

func TestNegativeLengthYieldsNothing(t *testing.T) {
	g := NewGenerator(nil, 0, -3)
	if g.Len() != 0 {
		t.Fatalf("Len = %d, want 0", g.Len())
	}
	if _, ok := g.Next(); ok {
		t.Fatal("expected exhausted generator")
	}
}

func TestResetRestarts(t *testing.T) {
	g := NewGenerator([]Event{{Value: 1, Offset: 2}}, 0, 4)
	first := collect(g)
	if g.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", g.Remaining())
	}
	g.Reset()
	requireStream(t, collect(g), first)
}

func TestFill(t *testing.T) {
	g := NewGenerator([]Event{{Value: 1, Offset: 2}}, 0, 4)
	dst := make([]NormalizedPitchbend, 3)
	if n := g.Fill(dst); n != 3 {
		t.Fatalf("Fill = %d, want 3", n)
	}
	requireStream(t, dst, []NormalizedPitchbend{0, 0.5, 1})
	if n := g.Fill(dst); n != 1 || dst[0] != 1 {
		t.Fatalf("second Fill = %d (%v), want 1 sample of 1", n, dst[0])
	}
}

func TestTrackerCarriesPrevious(t *testing.T) {
	var tr Tracker
	g := tr.Begin([]Event{{Value: 1, Offset: 2}}, 4)
	requireStream(t, collect(g), []NormalizedPitchbend{0, 0.5, 1, 1})
	if tr.Prev() != 1 {
		t.Fatalf("Prev = %v, want 1", tr.Prev())
	}

	g = tr.Begin(nil, 3)
	requireStream(t, collect(g), []NormalizedPitchbend{1, 1, 1})

	g = tr.Begin([]Event{{Value: 0, Offset: 2}}, 2)
	requireStream(t, collect(g), []NormalizedPitchbend{1, 0.5})
	if tr.Prev() != 0 {
		t.Fatalf("Prev = %v, want 0", tr.Prev())
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]Event{{Offset: 0}, {Offset: 2}, {Offset: 4}}, 4); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	bad := [][]Event{
		{{Offset: 3}, {Offset: 1}},
		{{Offset: -1}},
		{{Offset: 5}},
	}
	for _, events := range bad {
		if err := Validate(events, 4); !errors.Is(err, ErrEventOrder) {
			t.Errorf("Validate(%v) = %v, want ErrEventOrder", events, err)
		}
	}
}

func TestConversions(t *testing.T) {
	if got := FromZeroOneRange(0.5); got != 0 {
		t.Fatalf("FromZeroOneRange(0.5) = %v", got)
	}
	if got := FromZeroOneRange(0); got != -1 {
		t.Fatalf("FromZeroOneRange(0) = %v", got)
	}
	if got := FromZeroOneRange(1); got != 1 {
		t.Fatalf("FromZeroOneRange(1) = %v", got)
	}
	if got := NormalizedPitchbend(0.5).Semitones(2); got != 1 {
		t.Fatalf("Semitones = %v, want 1", got)
	}
	if got := NormalizedPitchbend(1).Pitch(12); got != 1 {
		t.Fatalf("Pitch = %v, want 1 octave", got)
	}
}

func TestNextAllocatesNothing(t *testing.T) {
	events := []Event{{Value: 1, Offset: 16}, {Value: -1, Offset: 48}}
	var g Generator
	allocs := testing.AllocsPerRun(100, func() {
		g.Init(events, 0, 64)
		for {
			if _, ok := g.Next(); !ok {
				break
			}
		}
	})
	if allocs != 0 {
		t.Fatalf("allocs per buffer = %v, want 0", allocs)
	}
}
