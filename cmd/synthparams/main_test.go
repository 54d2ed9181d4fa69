package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/pitchbend"
	"github.com/cwbudde/algo-synth/dsp/units"
	"github.com/cwbudde/algo-synth/internal/testutil"
	"github.com/cwbudde/algo-synth/params"
)

func TestParseAssignment(t *testing.T) {
	index, raw, err := parseAssignment(" 23 = 0.5")
	if err != nil {
		t.Fatalf("parseAssignment: %v", err)
	}
	if index != 23 || raw != 0.5 {
		t.Fatalf("got %d=%v, want 23=0.5", index, raw)
	}

	for _, bad := range []string{"23", "x=1", "1=y"} {
		if _, _, err := parseAssignment(bad); err == nil {
			t.Errorf("parseAssignment(%q) should fail", bad)
		}
	}
}

func TestParseBendEvents(t *testing.T) {
	toOffset := func(pos float64) int { return int(pos) }

	events, err := parseBendEvents([]string{"1@32", "-0.5@64"}, false, toOffset)
	if err != nil {
		t.Fatalf("parseBendEvents: %v", err)
	}
	want := []pitchbend.Event{{Value: 1, Offset: 32}, {Value: -0.5, Offset: 64}}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}

	events, err = parseBendEvents([]string{"0.75@0"}, true, toOffset)
	if err != nil {
		t.Fatalf("parseBendEvents: %v", err)
	}
	if events[0].Value != 0.5 {
		t.Fatalf("zero-one value = %v, want 0.5", events[0].Value)
	}

	if _, err := parseBendEvents([]string{"1"}, false, toOffset); err == nil {
		t.Fatal("missing @ should fail")
	}
}

func TestSelectIDs(t *testing.T) {
	all, err := selectIDs(nil)
	if err != nil || len(all) != int(params.NumIDs) {
		t.Fatalf("selectIDs(nil) = %d ids, %v", len(all), err)
	}

	ids, err := selectIDs([]string{"FILTER ENV"})
	if err != nil {
		t.Fatalf("selectIDs: %v", err)
	}
	if len(ids) != 4 {
		t.Fatalf("filter env ids = %v, want 4", ids)
	}

	if _, err := selectIDs([]string{"theremin"}); err == nil {
		t.Fatal("unknown name should fail")
	}
}

func TestPrintEase(t *testing.T) {
	var buf bytes.Buffer
	if err := printEase(&buf, []params.ID{params.OscCoarseTune}, 3); err != nil {
		t.Fatalf("printEase: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"-24 semis", "0 semis", "24 semis"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	store := params.NewStore(params.WithLoggerFactory(nil))
	if err := store.SetRaw(params.MasterVolume, 0); err != nil {
		t.Fatal(err)
	}
	if err := printTable(&buf, store); err != nil {
		t.Fatalf("printTable: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != params.NumHostParams+2 {
		t.Fatalf("lines = %d, want %d", len(lines), params.NumHostParams+2)
	}
	if !strings.Contains(lines[2], "Master Volume") || !strings.Contains(lines[2], "-inf dB") {
		t.Fatalf("first row = %q", lines[2])
	}
}

func TestPrintBend(t *testing.T) {
	var buf bytes.Buffer
	gen := pitchbend.NewGenerator([]pitchbend.Event{{Value: 1, Offset: 4}}, 0, 8)
	if err := printBend(&buf, gen, 69, 12, 4); err != nil {
		t.Fatalf("printBend: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "440.00") {
		t.Errorf("sample 0 should be unbent A4:\n%s", out)
	}
	if !strings.Contains(out, "880.00") {
		t.Errorf("sample 4 should be an octave up:\n%s", out)
	}
}

func TestPlot(t *testing.T) {
	var buf bytes.Buffer
	if err := plot(&buf, []float64{0, 0.5, 1, 1}, 4, 3); err != nil {
		t.Fatalf("plot: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "  **") {
		t.Errorf("top row = %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], "*###") {
		t.Errorf("bottom row = %q", lines[2])
	}

	buf.Reset()
	if err := plot(&buf, nil, 10, 10); err != nil || buf.Len() != 0 {
		t.Fatalf("empty plot wrote %q, %v", buf.String(), err)
	}
}

func TestRenderTone(t *testing.T) {
	sr := units.MustSampleRate(48000)
	raw := params.DefaultRaw()
	p, err := params.DefaultEaser.Parameters(&raw)
	if err != nil {
		t.Fatal(err)
	}

	tn := tone{
		note:      57,
		vel:       units.VelFromMIDI(100),
		gate:      2400,
		length:    4800,
		events:    []pitchbend.Event{{Value: 1, Offset: 1000}},
		bendRange: 2,
		blockSize: 256,
	}
	a := renderTone(sr, &p, tn)
	b := renderTone(sr, &p, tn)

	if len(a) != tn.length {
		t.Fatalf("len = %d, want %d", len(a), tn.length)
	}
	testutil.RequireFinite(t, a)
	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	if a[0] != 0 {
		t.Fatalf("first sample = %v, want silence at attack start", a[0])
	}
	peak := 0.0
	for _, v := range a {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		t.Fatal("render is silent")
	}
}
