// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// WriteWAV writes an integer PCM WAV file into a temporary directory and
// returns its path. samples are raw interleaved values at bitDepth.
func WriteWAV(t *testing.T, sampleRate, channels, bitDepth int, samples []int) string {
	t.Helper()

	return writeWAV(t, sampleRate, channels, bitDepth, wavFormatPCM, samples)
}

// WriteFloatWAV writes a 32-bit IEEE float WAV file into a temporary
// directory and returns its path.
func WriteFloatWAV(t *testing.T, sampleRate, channels int, samples []float32) string {
	t.Helper()

	raw := make([]int, len(samples))
	for i, s := range samples {
		raw[i] = int(int32(math.Float32bits(s)))
	}

	return writeWAV(t, sampleRate, channels, 32, wavFormatFloat, raw)
}

func writeWAV(t *testing.T, sampleRate, channels, bitDepth, format int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %v: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, format)
	buf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode %v: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder %v: %v", path, err)
	}

	return path
}

// NearlyEqual reports whether every element pair of got and want differs by
// at most eps.
func NearlyEqual(got, want []float32, eps float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > eps {
			return false
		}
	}
	return true
}
