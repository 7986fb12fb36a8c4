// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/audio"
)

// go-mp3 always produces interleaved stereo 16-bit little-endian PCM.
const (
	channels      = 2
	bitsPerSample = 16
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec    mp3Reader
	spec   audio.Spec
	closer io.Closer
	buf    []byte
	// odd holds a trailing byte when a read stops mid-sample.
	odd    []byte
}

func newSource(dec mp3Reader, closer io.Closer) *source {
	return &source{
		dec: dec,
		spec: audio.Spec{
			SampleRate:    dec.SampleRate(),
			Channels:      channels,
			BitsPerSample: bitsPerSample,
			Format:        audio.SampleFormatInt,
		},
		closer: closer,
		buf:    make([]byte, 2*audio.MaxBlockSize),
		odd:    make([]byte, 0, 1),
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

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	// Re-seat a byte left over from the previous read
	carried := copy(s.buf, s.odd)
	s.odd = s.odd[:0]

	n, err := s.dec.Read(s.buf[carried:])
	n += carried

	samples := n / 2
	if n%2 == 1 {
		s.odd = append(s.odd, s.buf[n-1])
	}

	if samples == 0 {
		if err == nil {
			return 0, nil
		}
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, errors.Wrapf(err, "read mp3")
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	if err != nil && err != io.EOF {
		return samples, errors.Wrapf(err, "read mp3")
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, errors.Wrapf(err, "open mp3")
	}

	closer, _ := r.(io.Closer)
	return newSource(dec, closer), nil
}
