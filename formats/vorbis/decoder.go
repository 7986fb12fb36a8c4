// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"io"

	"github.com/jfreymuth/oggvorbis"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec    oggReader
	spec   audio.Spec
	closer io.Closer
}

func (s *source) Spec() audio.Spec { return s.spec }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	// oggvorbis decodes whole frames only
	whole := len(dst) - len(dst)%s.spec.Channels
	if whole == 0 {
		return 0, nil
	}

	// Read returns the number of values decoded, always a multiple of the
	// channel count, already in [-1, 1]
	n, err := s.dec.Read(dst[:whole])
	if err == io.EOF {
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
	if err != nil {
		return n, errors.Wrapf(err, "read vorbis")
	}

	return n, nil
}

// Decoder decodes Ogg Vorbis streams. Vorbis is decoded to float, so Spec
// reports SampleFormatFloat with 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "open vorbis")
	}
	if dec.Channels() < 1 {
		return nil, audio.ErrZeroChannels
	}

	closer, _ := r.(io.Closer)
	return &source{
		dec: dec,
		spec: audio.Spec{
			SampleRate:    dec.SampleRate(),
			Channels:      dec.Channels(),
			BitsPerSample: 32,
			Format:        audio.SampleFormatFloat,
		},
		closer: closer,
	}, nil
}
