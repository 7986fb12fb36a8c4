// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits x to [-1, 1] and reports whether it was out of range.
// NaN is treated as out of range and maps to 0.
func Clamp(x float32) (float32, bool) {
	switch {
	case x > 1:
		return 1, true
	case x < -1:
		return -1, true
	case x != x:
		return 0, true
	}
	return x, false
}

func Float32ToInt16(x float32) int16 {
	x, _ = Clamp(x)

	// Use 32767 for both signs so -1 and 1 are symmetric
	return int16(x * 32767.0)
}

// Float32ToUint16 maps [-1, 1] onto the full unsigned range, rounding to
// the nearest step, with silence at the midpoint 32768 (offset binary).
func Float32ToUint16(x float32) uint16 {
	x, _ = Clamp(x)

	return uint16((x+1)*32767.5 + 0.5)
}
