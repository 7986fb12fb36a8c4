// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/utils"
)

// SampleFormat is the device-native representation of one sample.
type SampleFormat int

const (
	FormatInt16 SampleFormat = iota
	FormatUint16
	FormatFloat32
)

func (f SampleFormat) String() string {
	switch f {
	case FormatInt16:
		return "i16"
	case FormatUint16:
		return "u16"
	case FormatFloat32:
		return "f32"
	default:
		return "unknown"
	}
}

// BytesPerSample returns the encoded size of one sample, or 0 for an unknown
// format.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case FormatInt16, FormatUint16:
		return 2
	case FormatFloat32:
		return 4
	default:
		return 0
	}
}

// ParseFormat accepts the names returned by String.
func ParseFormat(s string) (SampleFormat, error) {
	switch strings.ToLower(s) {
	case "i16":
		return FormatInt16, nil
	case "u16":
		return FormatUint16, nil
	case "f32":
		return FormatFloat32, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "parse %q", s)
}

// Sample is the set of native sample types a callback buffer can hold.
type Sample interface {
	int16 | uint16 | float32
}

// FromFloat converts a float sample to S, clamping it to [-1, 1] first.
// uint16 is offset binary, so 0.0 maps to the midpoint.
func FromFloat[S Sample](x float32) S {
	var s S
	switch p := any(&s).(type) {
	case *int16:
		*p = utils.Float32ToInt16(x)
	case *uint16:
		*p = utils.Float32ToUint16(x)
	case *float32:
		*p, _ = utils.Clamp(x)
	}
	return s
}

// encode converts src into dst and returns how many samples were clamped.
func encode[S Sample](dst []S, src []float32) int {
	clipped := 0
	switch dst := any(dst).(type) {
	case []int16:
		for i, x := range src {
			x, clip := utils.Clamp(x)
			if clip {
				clipped++
			}
			dst[i] = utils.Float32ToInt16(x)
		}
	case []uint16:
		for i, x := range src {
			x, clip := utils.Clamp(x)
			if clip {
				clipped++
			}
			dst[i] = utils.Float32ToUint16(x)
		}
	case []float32:
		for i, x := range src {
			x, clip := utils.Clamp(x)
			if clip {
				clipped++
			}
			dst[i] = x
		}
	}
	return clipped
}

// encodeBytes writes src into dst in the little-endian layout of f.
func encodeBytes(f SampleFormat, dst []byte, src []float32) int {
	clipped := 0
	for i, x := range src {
		x, clip := utils.Clamp(x)
		if clip {
			clipped++
		}

		switch f {
		case FormatInt16:
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(utils.Float32ToInt16(x)))
		case FormatUint16:
			binary.LittleEndian.PutUint16(dst[2*i:], utils.Float32ToUint16(x))
		case FormatFloat32:
			binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(x))
		}
	}
	return clipped
}
