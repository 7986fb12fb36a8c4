// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/audio"
)

// Config is the negotiated shape of a device stream.
type Config struct {
	Channels   int
	SampleRate float32
	Format     SampleFormat
}

func (c Config) Validate() error {
	if c.Channels < 1 {
		return audio.ErrZeroChannels
	}
	if c.Channels > audio.MaxBlockSize {
		return errors.Wrapf(ErrTooManyChannels, "channels %v", c.Channels)
	}
	if !(c.SampleRate > 0) {
		return errors.Wrapf(ErrInvalidSampleRate, "rate %v", c.SampleRate)
	}
	if c.Format.BytesPerSample() == 0 {
		return errors.Wrapf(ErrUnsupportedFormat, "format %v", int(c.Format))
	}
	return nil
}

// FrameBytes returns the encoded size of one frame.
func (c Config) FrameBytes() int {
	return c.Channels * c.Format.BytesPerSample()
}
