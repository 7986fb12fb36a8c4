// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"
	"sync"
	"time"

	"github.com/ossrs/go-oryx-lib/errors"
)

// Backend opens an output stream that pulls samples from r in the layout
// described by cfg.
type Backend interface {
	Open(cfg Config, r io.Reader) (Stream, error)
}

// Stream is an opened output. Play starts pulling; Close stops and releases it.
type Stream interface {
	Play()
	Close() error
}

// OfflineBackend pulls a fixed number of frames into W as soon as Play is
// called, without a device. Errors from the copy are returned by Close.
type OfflineBackend struct {
	Frames int
	W      io.Writer
}

func (b OfflineBackend) Open(cfg Config, r io.Reader) (Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "offline config")
	}
	if b.W == nil {
		b.W = io.Discard
	}

	return &offlineStream{
		r:     r,
		w:     b.W,
		bytes: int64(b.Frames) * int64(cfg.FrameBytes()),
	}, nil
}

type offlineStream struct {
	r     io.Reader
	w     io.Writer
	bytes int64

	once sync.Once
	err  error
}

func (s *offlineStream) Play() {
	s.once.Do(func() {
		if _, err := io.CopyN(s.w, s.r, s.bytes); err != nil {
			s.err = errors.Wrapf(err, "render %vB", s.bytes)
		}
	})
}

func (s *offlineStream) Close() error {
	return s.err
}

// OtoBackend plays through the default output device using oto. oto has no
// unsigned 16-bit format, so FormatUint16 is rejected.
//
// oto allows one context per process, so a program can open one stream.
// Builds with the headless tag leave oto out and Open fails with ErrNoDevice.
type OtoBackend struct {
	// BufferSize is the device buffer length; zero uses oto's default.
	BufferSize time.Duration
}

// check rejects configs oto cannot play, before any device is touched.
func (b OtoBackend) check(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "oto config")
	}

	switch cfg.Format {
	case FormatInt16, FormatFloat32:
		return nil
	}
	return errors.Wrapf(ErrUnsupportedFormat, "oto cannot play %v", cfg.Format)
}

// RenderInt16 renders frames of 16-bit audio from d without a device.
func RenderInt16(d *Driver, frames int) []int16 {
	data := make([]int16, frames*d.cfg.Channels)
	Render(d, data)

	return data
}
