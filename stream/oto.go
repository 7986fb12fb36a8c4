// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package stream

import (
	"io"

	"github.com/ebitengine/oto/v3"
	"github.com/ossrs/go-oryx-lib/errors"
)

func otoFormat(f SampleFormat) oto.Format {
	if f == FormatInt16 {
		return oto.FormatSignedInt16LE
	}
	return oto.FormatFloat32LE
}

func (b OtoBackend) Open(cfg Config, r io.Reader) (Stream, error) {
	if err := b.check(cfg); err != nil {
		return nil, err
	}

	op := &oto.NewContextOptions{
		SampleRate:   int(cfg.SampleRate),
		ChannelCount: cfg.Channels,
		Format:       otoFormat(cfg.Format),
		BufferSize:   b.BufferSize,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, errors.Wrapf(err, "create oto context")
	}
	<-ready

	return &otoStream{ctx: ctx, player: ctx.NewPlayer(r)}, nil
}

type otoStream struct {
	ctx    *oto.Context
	player *oto.Player
}

func (s *otoStream) Play() {
	s.player.Play()
}

func (s *otoStream) Close() error {
	if err := s.player.Close(); err != nil {
		return errors.Wrapf(err, "close player")
	}
	if err := s.ctx.Suspend(); err != nil {
		return errors.Wrapf(err, "suspend oto")
	}
	return nil
}
