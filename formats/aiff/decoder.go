// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"math"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec    aiffReader
	spec   audio.Spec
	closer io.Closer
	intBuf *goaudio.IntBuffer
	scale  float32
}

func newSource(dec aiffReader, spec audio.Spec, closer io.Closer) *source {
	return &source{
		dec:    dec,
		spec:   spec,
		closer: closer,
		scale:  float32(1 / math.Exp2(float64(spec.BitsPerSample-1))),
	}
}

func (s *source) Spec() audio.Spec { return s.spec }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Resize buffer if needed
	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n <= 0 {
		if err != nil && err != io.EOF {
			return 0, errors.Wrapf(err, "read aiff")
		}
		return 0, io.EOF
	}

	// AIFF is signed at every bit depth
	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) * s.scale
	}

	if err != nil && err != io.EOF {
		return n, errors.Wrapf(err, "read aiff")
	}
	return n, nil
}

// Decoder decodes AIFF streams with 8, 16, 24 or 32-bit PCM samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "reading aiff data")
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	closer, _ := r.(io.Closer)
	spec := audio.Spec{
		SampleRate:    format.SampleRate,
		Channels:      format.NumChannels,
		BitsPerSample: int(dec.BitDepth),
		Format:        audio.SampleFormatInt,
	}
	return newSource(dec, spec, closer), nil
}
