// SPDX-License-Identifier: EPL-2.0

//go:build headless

package stream

import (
	"io"

	"github.com/ossrs/go-oryx-lib/errors"
)

func (b OtoBackend) Open(cfg Config, r io.Reader) (Stream, error) {
	if err := b.check(cfg); err != nil {
		return nil, err
	}
	return nil, errors.Wrapf(ErrNoDevice, "open %vHz %vch", cfg.SampleRate, cfg.Channels)
}
