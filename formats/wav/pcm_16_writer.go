// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"
)

// WriteWAV16 writes interleaved 16-bit PCM samples as a WAV file with the
// given sample rate and channel count. The encoder seeks back to patch the
// chunk sizes, so w must be seekable; w is not closed.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return errors.Errorf("invalid channel count %v", channels)
	}
	if len(samples)%channels != 0 {
		return errors.Errorf("%v samples is not a whole number of %v-channel frames", len(samples), channels)
	}

	enc := wav.NewEncoder(w, sampleRate, 16, channels, formatPCM)

	// Convert in chunks so a long render does not need a second full-size copy
	chunkSize := 8192 - 8192%channels
	buf := &goaudio.IntBuffer{
		Data:           make([]int, min(len(samples), chunkSize)),
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		SourceBitDepth: 16,
	}

	// An empty render still gets a header and an empty data chunk
	if len(samples) == 0 {
		if err := enc.Write(buf); err != nil {
			return errors.Wrapf(err, "write header")
		}
	}

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]

		buf.Data = buf.Data[:len(chunk)]
		for j, s := range chunk {
			buf.Data[j] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return errors.Wrapf(err, "write pcm")
		}
	}

	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "close encoder")
	}

	return nil
}
