//go:build !headless

package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

// play sends mono samples to the default output device and waits for them
// to finish.
func play(samples []float64, sampleRate int, length time.Duration) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready

	pcm := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(pcm[4*i:], math.Float32bits(float32(s)))
	}

	player := ctx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()
	player.Play()

	deadline := time.Now().Add(length + time.Second)
	for player.IsPlaying() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	log.Debugf("playback finished after %s", length)
	return nil
}
