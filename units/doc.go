// SPDX-License-Identifier: EPL-2.0

// Package units converts between frequencies, durations and sample counts.
//
//	period := units.KHzInt(2).PeriodInSamples(44100) // 22.05
//	n := units.Milliseconds[float32](10).InSamples(48000) // 480
//
// The types are generic over float32 and float64. The *Int constructors take
// an int and produce float32 values.
package units
