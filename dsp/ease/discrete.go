package ease

// DiscreteLinear partitions [0, 1] into len(Values) equal buckets and returns
// the value of the bucket raw falls in. raw=1 selects the last value.
type DiscreteLinear[T any] struct {
	Values []T
}

// NewDiscreteLinear returns a bucketed curve over values. It panics when
// values is empty, since such a table can only come from a programming error.
func NewDiscreteLinear[T any](values ...T) DiscreteLinear[T] {
	if len(values) == 0 {
		panic("ease: DiscreteLinear needs at least one value")
	}
	return DiscreteLinear[T]{Values: values}
}

// Len returns the number of buckets.
func (d DiscreteLinear[T]) Len() int {
	return len(d.Values)
}

// Index returns the bucket index for raw, always within [0, Len()-1].
func (d DiscreteLinear[T]) Index(raw float64) int {
	n := len(d.Values)
	if n == 0 {
		return 0
	}

	i := int(raw * float64(n))
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

// Ease returns the value of the bucket raw falls in. An empty table yields
// the zero value.
func (d DiscreteLinear[T]) Ease(raw float64) T {
	if len(d.Values) == 0 {
		var zero T
		return zero
	}
	return d.Values[d.Index(raw)]
}

// Raw returns the raw value at the center of bucket i, which eases back to
// Values[i].
func (d DiscreteLinear[T]) Raw(i int) float64 {
	n := len(d.Values)
	if n == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return (float64(i) + 0.5) / float64(n)
}
