// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/audio"
)

// WAVE format tags from the fmt chunk.
const (
	formatPCM        = 0x0001
	formatIEEEFloat  = 0x0003
	formatExtensible = 0xFFFE
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec    pcmReader
	spec   audio.Spec
	closer io.Closer

	intBuf *goaudio.IntBuffer
	// scale maps a raw integer sample onto [-1, 1).
	scale float32
	// offset recentres unsigned 8-bit PCM.
	offset int
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

	// Grow only; the player calls with the same size every time
	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n <= 0 {
		if err != nil {
			return 0, errors.Wrapf(err, "read pcm")
		}
		return 0, io.EOF
	}

	if s.spec.Format == audio.SampleFormatFloat {
		for i := range n {
			dst[i] = math.Float32frombits(uint32(int32(s.intBuf.Data[i])))
		}
	} else {
		for i := range n {
			dst[i] = float32(s.intBuf.Data[i]-s.offset) * s.scale
		}
	}

	if err != nil {
		return n, errors.Wrapf(err, "read pcm")
	}
	return n, nil
}

// Decoder decodes RIFF/WAVE streams.
//
// Integer PCM at 8, 16, 24 and 32 bits and 32-bit IEEE float are supported.
// Integer samples are normalised by 2^(bits-1), so a 16-bit value v decodes
// to v/32768. Float samples pass through unchanged.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "reading wav data")
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	bits := int(dec.BitDepth)
	spec := audio.Spec{
		SampleRate:    int(dec.SampleRate),
		Channels:      int(dec.NumChans),
		BitsPerSample: bits,
	}

	src := &source{dec: dec}
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}

	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
		switch bits {
		case 8:
			src.offset = 128
		case 16, 24, 32:
		default:
			return nil, ErrUnsupportedBitDepth
		}
		spec.Format = audio.SampleFormatInt
		src.scale = float32(1 / math.Exp2(float64(bits-1)))
	case formatIEEEFloat:
		if bits != 32 {
			return nil, ErrUnsupportedBitDepth
		}
		spec.Format = audio.SampleFormatFloat
	default:
		return nil, ErrUnsupportedFormat
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, errors.Wrapf(err, "seek to pcm data")
	}

	src.spec = spec
	return src, nil
}
