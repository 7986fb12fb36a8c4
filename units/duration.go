// SPDX-License-Identifier: EPL-2.0

package units

import "time"

// Duration is a length of time stored in seconds.
type Duration[T Float] struct {
	seconds T
}

func Seconds[T Float](v T) Duration[T] {
	return Duration[T]{seconds: v}
}

func Milliseconds[T Float](v T) Duration[T] {
	return Duration[T]{seconds: v / 1000}
}

func SecondsInt(v int) Duration[float32] {
	return Duration[float32]{seconds: float32(v)}
}

func MillisecondsInt(v int) Duration[float32] {
	return Duration[float32]{seconds: float32(v) / 1000}
}

// Value returns the duration in seconds.
func (d Duration[T]) Value() T {
	return d.seconds
}

// InSamples returns the number of samples the duration covers at
// sampleRate. The result is not rounded.
func (d Duration[T]) InSamples(sampleRate T) T {
	return sampleRate * d.seconds
}

// Std converts to a time.Duration, truncating below a nanosecond.
func (d Duration[T]) Std() time.Duration {
	return time.Duration(float64(d.seconds) * float64(time.Second))
}
