// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"context"
	"sync/atomic"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/SeedyROM/mixie/audio"
	"github.com/SeedyROM/mixie/diag"
)

// State is a step in the driver lifecycle. It only moves forward.
type State int32

const (
	StateUninitialized State = iota
	StateConfigured
	StateStreaming
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConfigured:
		return "configured"
	case StateStreaming:
		return "streaming"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Driver feeds device callback buffers through a Processor.
//
// A callback buffer of any size is cut into chunks of at most BlockLen
// samples; each chunk is processed through the same pair of persistent
// buffers and converted to the device format. The callback path does not
// allocate.
//
// Render and Read must not be called concurrently.
type Driver struct {
	cfg  Config
	proc audio.Processor
	sink diag.Sink

	in, out  *audio.Buffer
	ctx      audio.Context
	blockLen int

	// carry holds one encoded frame for Read; bytes from carryPos on were
	// not yet returned.
	carry    []byte
	carryPos int

	state   atomic.Int32
	clipped atomic.Uint64
}

type Option func(*Driver)

// WithSink reports callback problems, such as the first clipped sample, to s.
func WithSink(s diag.Sink) Option {
	return func(d *Driver) {
		d.sink = s
	}
}

// NewDriver validates cfg and allocates the persistent buffers. The returned
// driver is in StateConfigured.
func NewDriver(cfg Config, proc audio.Processor, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "stream config")
	}

	in, err := audio.NewBuffer(cfg.Channels)
	if err != nil {
		return nil, errors.Wrapf(err, "input buffer")
	}
	out, err := audio.NewBuffer(cfg.Channels)
	if err != nil {
		return nil, errors.Wrapf(err, "output buffer")
	}

	d := &Driver{
		cfg:      cfg,
		proc:     proc,
		sink:     diag.Discard,
		in:       in,
		out:      out,
		blockLen: out.BlockLen(),
		carry:    make([]byte, cfg.FrameBytes()),
	}
	d.carryPos = len(d.carry)
	for _, opt := range opts {
		opt(d)
	}
	d.state.Store(int32(StateConfigured))

	return d, nil
}

func (d *Driver) Config() Config { return d.cfg }

func (d *Driver) State() State { return State(d.state.Load()) }

// BlockLen is the largest chunk handed to the processor in one call: the
// biggest multiple of the channel count that fits in MaxBlockSize.
func (d *Driver) BlockLen() int { return d.blockLen }

// Clipped returns how many output samples have been clamped so far.
func (d *Driver) Clipped() uint64 { return d.clipped.Load() }

// Render fills one callback buffer of native samples. A trailing partial
// frame is written as silence.
func Render[S Sample](d *Driver, data []S) {
	d.begin()

	whole := len(data) - len(data)%d.cfg.Channels
	for off := 0; off < whole; off += d.blockLen {
		n := min(whole-off, d.blockLen)
		d.countClipped(encode(data[off:off+n], d.process(n)))
	}

	silence := FromFloat[S](0)
	for i := whole; i < len(data); i++ {
		data[i] = silence
	}
}

// Read implements io.Reader for pull-based backends, filling all of p with
// samples in the little-endian layout of the configured format.
//
// p need not hold whole frames. A frame cut by the end of p is finished at
// the start of the next Read, so the byte stream is the same for any split.
func (d *Driver) Read(p []byte) (int, error) {
	bps := d.cfg.Format.BytesPerSample()
	frameBytes := len(d.carry)

	d.begin()

	n := copy(p, d.carry[d.carryPos:])
	d.carryPos += n
	rest := p[n:]

	whole := len(rest) - len(rest)%frameBytes
	for off := 0; off < whole; off += d.blockLen * bps {
		k := min((whole-off)/bps, d.blockLen)
		d.countClipped(encodeBytes(d.cfg.Format, rest[off:off+k*bps], d.process(k)))
	}

	if tail := rest[whole:]; len(tail) > 0 {
		d.countClipped(encodeBytes(d.cfg.Format, d.carry, d.process(d.cfg.Channels)))
		d.carryPos = copy(tail, d.carry)
	}

	return len(p), nil
}

// Run starts playback on a stream opened from b and blocks until ctx is
// done, then closes the stream. A driver runs once.
func (d *Driver) Run(ctx context.Context, b Backend) error {
	if !d.state.CompareAndSwap(int32(StateConfigured), int32(StateStreaming)) {
		return errors.Wrapf(ErrInvalidState, "run in state %v", d.State())
	}
	defer d.state.Store(int32(StateStopped))

	s, err := b.Open(d.cfg, d)
	if err != nil {
		return errors.Wrapf(err, "open %v stream", d.cfg.Format)
	}

	s.Play()
	logger.Tf(ctx, "stream start channels=%v, rate=%v, format=%v, block=%v",
		d.cfg.Channels, d.cfg.SampleRate, d.cfg.Format, d.blockLen)

	<-ctx.Done()

	if err := s.Close(); err != nil {
		return errors.Wrapf(err, "close stream")
	}
	logger.Tf(ctx, "stream stop, clipped=%v", d.Clipped())

	return nil
}

// begin resets both buffers at the start of a callback.
func (d *Driver) begin() {
	d.in.Zero()
	d.out.Zero()
}

// process runs the processor over the next n samples and returns its output.
func (d *Driver) process(n int) []float32 {
	d.ctx.Reset(d.in, n, d.out, n, d.cfg.SampleRate)
	d.proc.Process(&d.ctx)

	return d.out.Samples()[:n]
}

func (d *Driver) countClipped(n int) {
	if n == 0 {
		return
	}
	if d.clipped.Add(uint64(n)) == uint64(n) {
		d.sink.Report(ErrClipped)
	}
}
