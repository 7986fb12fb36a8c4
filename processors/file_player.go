// SPDX-License-Identifier: EPL-2.0

package processors

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/audio"
	"github.com/SeedyROM/mixie/diag"
	"github.com/SeedyROM/mixie/formats/wav"
)

// FilePlayer writes decoded file samples to its output, one per visited
// output sample, in order.
//
// Process allocates nothing itself, but a refill calls the source's
// ReadSamples, and the wav and aiff decoders allocate there (go-audio's
// PCMBuffer makes a byte slice per call). Refills happen once per
// MaxBlockSize samples.
type FilePlayer struct {
	src  audio.Source
	sink diag.Sink

	// block stages decoded samples; pos is the next unread one and n the
	// number decoded by the last refill.
	block  [audio.MaxBlockSize]float32
	pos, n int

	// pending is an error returned together with the last samples; it takes
	// effect once they are played.
	pending error
	stopped bool

	exhausted atomic.Bool
}

// NewFilePlayer plays src, reporting end of stream and decode errors to sink.
// A nil sink discards them.
func NewFilePlayer(src audio.Source, sink diag.Sink) *FilePlayer {
	if sink == nil {
		sink = diag.Discard
	}
	return &FilePlayer{src: src, sink: sink}
}

// OpenWavFile opens a WAV file for playback.
func OpenWavFile(path string, sink diag.Sink) (*FilePlayer, error) {
	src, err := decode(path, wav.Decoder{})
	if err != nil {
		return nil, err
	}
	return NewFilePlayer(src, sink), nil
}

// OpenFile opens path with the decoder registered for its extension.
func OpenFile(path string, registry *audio.Registry, sink diag.Sink) (*FilePlayer, error) {
	src, err := DecodeFile(path, registry)
	if err != nil {
		return nil, err
	}
	return NewFilePlayer(src, sink), nil
}

// DecodeFile returns a Source for path using the decoder registered for its
// extension. Closing the Source closes the file.
func DecodeFile(path string, registry *audio.Registry) (audio.Source, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	dec, ok := registry.Get(ext)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "open %v", path)
	}

	return decode(path, dec)
}

func decode(path string, dec audio.Decoder) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %v", path)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode %v", path)
	}

	return src, nil
}

// Spec describes the file being played.
func (p *FilePlayer) Spec() audio.Spec { return p.src.Spec() }

// Exhausted reports whether the file has been played to the end. It is safe
// to call from any goroutine.
func (p *FilePlayer) Exhausted() bool { return p.exhausted.Load() }

// Close releases the underlying file.
func (p *FilePlayer) Close() error { return p.src.Close() }

func (p *FilePlayer) Process(ctx *audio.Context) {
	for frame := range ctx.Frames() {
		for i := range frame.Out {
			frame.Out[i] = p.next()
		}
	}
}

func (p *FilePlayer) next() float32 {
	if p.pos == p.n && !p.refill() {
		return 0
	}

	v := p.block[p.pos]
	p.pos++
	return v
}

func (p *FilePlayer) refill() bool {
	if p.stopped {
		return false
	}
	if p.pending != nil {
		p.stop(p.pending)
		return false
	}

	n, err := p.src.ReadSamples(p.block[:])
	p.pos, p.n = 0, max(n, 0)
	if err != nil {
		if p.n > 0 {
			p.pending = err
			return true
		}
		p.stop(err)
		return false
	}

	return p.n > 0
}

// stop silences the player for good and reports why, once.
func (p *FilePlayer) stop(err error) {
	p.stopped = true
	p.pending = nil

	if err == io.EOF {
		p.exhausted.Store(true)
		p.sink.Report(audio.ErrSourceExhausted)
		return
	}
	p.sink.Report(err)
}
