package params

import "fmt"

// ShapeKind is the oscillator waveform family.
type ShapeKind uint8

const (
	Sine ShapeKind = iota
	Skewtooth
	Square
	Noise
)

// ShapeKinds is the order the shape knob selects from.
var ShapeKinds = []ShapeKind{Sine, Skewtooth, Square, Noise}

func (k ShapeKind) String() string {
	switch k {
	case Sine:
		return "Sine"
	case Skewtooth:
		return "Skewtooth"
	case Square:
		return "Square"
	case Noise:
		return "Noise"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Warped reports whether the warp knob changes this waveform.
func (k ShapeKind) Warped() bool {
	return k == Skewtooth || k == Square
}

// NoteShape is a waveform plus its warp amount in [0, 1]. Warp is the
// skew point for Skewtooth and the duty cycle for Square.
type NoteShape struct {
	Kind ShapeKind
	Warp float64
}

func (s NoteShape) String() string {
	if s.Kind.Warped() {
		return fmt.Sprintf("%s (%.2f)", s.Kind, s.Warp)
	}
	return s.Kind.String()
}
