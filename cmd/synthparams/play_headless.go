//go:build headless

package main

import (
	"errors"
	"time"
)

func play(_ []float64, _ int, _ time.Duration) error {
	return errors.New("built with the headless tag, no audio output")
}
