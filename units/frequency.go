// SPDX-License-Identifier: EPL-2.0

package units

// Float is the set of sample value types units can be expressed in.
type Float interface {
	~float32 | ~float64
}

// Frequency is a rate in hertz.
type Frequency[T Float] struct {
	hz T
}

func Hz[T Float](v T) Frequency[T] {
	return Frequency[T]{hz: v}
}

func KHz[T Float](v T) Frequency[T] {
	return Frequency[T]{hz: v * 1000}
}

func HzInt(v int) Frequency[float32] {
	return Frequency[float32]{hz: float32(v)}
}

func KHzInt(v int) Frequency[float32] {
	return Frequency[float32]{hz: float32(v * 1000)}
}

// Value returns the frequency in hertz.
func (f Frequency[T]) Value() T {
	return f.hz
}

func (f Frequency[T]) IsZero() bool {
	return f.hz == 0
}

// PeriodInSamples returns how many samples one cycle spans at sampleRate.
// A zero frequency yields +Inf.
func (f Frequency[T]) PeriodInSamples(sampleRate T) T {
	return sampleRate / f.hz
}

func (f Frequency[T]) PeriodInSeconds() T {
	return 1 / f.hz
}

func (f Frequency[T]) PeriodInMilliseconds() T {
	return 1000 / f.hz
}
