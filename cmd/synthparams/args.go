package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-synth/dsp/pitchbend"
	"github.com/cwbudde/algo-synth/params"
)

// selectIDs resolves case-insensitive name fragments to parameter IDs. No
// names selects every slot.
func selectIDs(names []string) ([]params.ID, error) {
	if len(names) == 0 {
		ids := make([]params.ID, 0, params.NumIDs)
		for id := params.ID(0); id < params.NumIDs; id++ {
			ids = append(ids, id)
		}
		return ids, nil
	}

	var ids []params.ID
	for _, name := range names {
		frag := strings.ToLower(strings.TrimSpace(name))
		found := false
		for id := params.ID(0); id < params.NumIDs; id++ {
			if strings.Contains(strings.ToLower(id.String()), frag) {
				ids = append(ids, id)
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", params.ErrUnknownParameter, name)
		}
	}
	return ids, nil
}

// parseAssignment parses "index=raw".
func parseAssignment(s string) (int, float64, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("want index=value, got %q", s)
	}
	index, err := strconv.Atoi(strings.TrimSpace(k))
	if err != nil {
		return 0, 0, fmt.Errorf("index in %q: %w", s, err)
	}
	raw, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("value in %q: %w", s, err)
	}
	return index, raw, nil
}

// parseBendEvents parses "value@position" specs. toOffset converts the
// position to a sample offset. zeroOne reads values as wheel positions in
// [0, 1] instead of [-1, 1].
func parseBendEvents(specs []string, zeroOne bool, toOffset func(float64) int) ([]pitchbend.Event, error) {
	events := make([]pitchbend.Event, 0, len(specs))
	for _, spec := range specs {
		vs, ps, ok := strings.Cut(spec, "@")
		if !ok {
			return nil, fmt.Errorf("want value@position, got %q", spec)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(vs), 64)
		if err != nil {
			return nil, fmt.Errorf("value in %q: %w", spec, err)
		}
		pos, err := strconv.ParseFloat(strings.TrimSpace(ps), 64)
		if err != nil {
			return nil, fmt.Errorf("position in %q: %w", spec, err)
		}

		value := pitchbend.NormalizedPitchbend(v)
		if zeroOne {
			value = pitchbend.FromZeroOneRange(v)
		}
		events = append(events, pitchbend.Event{Value: value, Offset: toOffset(pos)})
	}
	return events, nil
}
