package units

import (
	"cmp"
	"fmt"
	"math"
)

// Seconds is a duration. Construction rejects NaN and arithmetic maps a NaN
// result to zero, so every Seconds has a place in the total order exposed by
// [Seconds.Compare]. +Inf is an endless duration; negative values, -Inf
// included, behave as zero-length.
type Seconds struct {
	v float64
}

// ZeroSeconds is a zero-length duration.
var ZeroSeconds = Seconds{}

// NewSeconds returns s as a duration, or ErrNaN. Infinite values are kept.
func NewSeconds(s float64) (Seconds, error) {
	if math.IsNaN(s) {
		return Seconds{}, fmt.Errorf("%w: seconds", ErrNaN)
	}
	return Seconds{v: s}, nil
}

// MustSeconds is like NewSeconds but panics on NaN.
func MustSeconds(s float64) Seconds {
	v, err := NewSeconds(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Milliseconds returns ms milliseconds as a duration, or ErrNaN.
func Milliseconds(ms float64) (Seconds, error) {
	return NewSeconds(ms / 1000)
}

// Float64 returns the number of seconds.
func (s Seconds) Float64() float64 {
	return s.v
}

// Compare returns -1, 0 or +1 depending on whether s is shorter than, equal
// to, or longer than o.
func (s Seconds) Compare(o Seconds) int {
	return cmp.Compare(s.v, o.v)
}

// Less reports whether s is shorter than o.
func (s Seconds) Less(o Seconds) bool {
	return s.Compare(o) < 0
}

// IsZero reports whether s is a zero-length (or negative) duration.
func (s Seconds) IsZero() bool {
	return s.v <= 0
}

// seconds wraps a computed value. NaN, as produced by Inf-Inf or 0*Inf,
// becomes zero.
func seconds(v float64) Seconds {
	if math.IsNaN(v) {
		return Seconds{}
	}
	return Seconds{v: v}
}

// Add returns s+o.
func (s Seconds) Add(o Seconds) Seconds {
	return seconds(s.v + o.v)
}

// Sub returns s-o.
func (s Seconds) Sub(o Seconds) Seconds {
	return seconds(s.v - o.v)
}

// Mul scales s by f.
func (s Seconds) Mul(f float64) Seconds {
	return seconds(s.v * f)
}

// Div returns the dimensionless ratio s/o.
func (s Seconds) Div(o Seconds) float64 {
	return s.v / o.v
}

// ToHertz interprets s as a period and returns its frequency.
func (s Seconds) ToHertz() Hertz {
	return Hertz(1 / s.v)
}

func (s Seconds) String() string {
	return fmt.Sprintf("%gs", s.v)
}
