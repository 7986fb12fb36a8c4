// SPDX-License-Identifier: EPL-2.0

package units

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func TestFrequency_Constructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		freq Frequency[float32]
		want float32
	}{
		{name: "hz float", freq: Hz[float32](440), want: 440},
		{name: "khz float", freq: KHz[float32](3.3), want: 3300},
		{name: "hz int", freq: HzInt(440), want: 440},
		{name: "khz int", freq: KHzInt(2), want: 2000},
		{name: "zero", freq: HzInt(0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.freq.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrequency_PeriodInSamples(t *testing.T) {
	t.Parallel()

	if got := KHzInt(2).PeriodInSamples(44100); got != 22.05 {
		t.Errorf("2kHz at 44100 = %v samples, want 22.05", got)
	}
	if got := Hz(1000.0).PeriodInSamples(48000); got != 48 {
		t.Errorf("1kHz at 48000 = %v samples, want 48", got)
	}
}

func TestFrequency_Periods(t *testing.T) {
	t.Parallel()

	f := Hz(250.0)
	if got := f.PeriodInSeconds(); got != 0.004 {
		t.Errorf("PeriodInSeconds() = %v, want 0.004", got)
	}
	if got := f.PeriodInMilliseconds(); got != 4 {
		t.Errorf("PeriodInMilliseconds() = %v, want 4", got)
	}
}

func TestFrequency_Zero(t *testing.T) {
	t.Parallel()

	f := Hz(0.0)
	if !f.IsZero() {
		t.Error("IsZero() = false for 0 Hz")
	}
	if KHzInt(1).IsZero() {
		t.Error("IsZero() = true for 1 kHz")
	}

	for name, got := range map[string]float64{
		"samples":      f.PeriodInSamples(48000),
		"seconds":      f.PeriodInSeconds(),
		"milliseconds": f.PeriodInMilliseconds(),
	} {
		if !math.IsInf(got, 1) {
			t.Errorf("period in %s of 0 Hz = %v, want +Inf", name, got)
		}
	}
}

func TestDuration_Constructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dur  Duration[float32]
		want float32
	}{
		{name: "seconds", dur: Seconds[float32](10), want: 10},
		{name: "milliseconds", dur: Milliseconds[float32](10), want: 0.01},
		{name: "seconds int", dur: SecondsInt(10), want: 10},
		{name: "milliseconds int", dur: MillisecondsInt(10), want: 0.01},
		{name: "fractional ms", dur: Milliseconds[float32](2.5), want: 0.0025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.dur.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDuration_InSamples(t *testing.T) {
	t.Parallel()

	if got := SecondsInt(10).InSamples(44100); got != 441000 {
		t.Errorf("10s at 44100 = %v samples, want 441000", got)
	}
	if got := Milliseconds(20.0).InSamples(48000); got != 960 {
		t.Errorf("20ms at 48000 = %v samples, want 960", got)
	}
}

func TestDuration_Std(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dur  Duration[float64]
		want time.Duration
	}{
		{Seconds(1.5), 1500 * time.Millisecond},
		{Milliseconds(250.0), 250 * time.Millisecond},
		{Seconds(0.0), 0},
	}

	for _, tt := range tests {
		if got := tt.dur.Std(); got != tt.want {
			t.Errorf("Std() = %v, want %v", got, tt.want)
		}
	}
}

func ExampleFrequency_PeriodInSamples() {
	period := KHzInt(2).PeriodInSamples(44100)
	fmt.Println(period)
	// Output: 22.05
}

func ExampleDuration_InSamples() {
	n := Milliseconds[float32](10).InSamples(48000)
	fmt.Println(n)
	// Output: 480
}
