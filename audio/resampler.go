// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples; preserves channel count.
// A one-pole low-pass filter is applied when downsampling.
//
// At the same rate the output is the source, sample for sample.
type Resampler struct {
	src      Source
	spec     Spec
	ratio    float64 // source frames per output frame
	channels int

	// Four frames around the read position for cubic interpolation:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float32
	hasFrame [4]bool
	primed   bool
	eof      bool

	// Position between frames[1] and frames[2], in source frames
	pos float64

	// Source samples staged a block at a time
	srcBuf         []float32
	srcPos, srcLen int
	srcErr         error

	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	spec := src.Spec()
	if spec.Channels < 1 {
		return nil, ErrZeroChannels
	}
	if dstRate <= 0 || spec.SampleRate <= 0 {
		return nil, errors.Wrapf(ErrInvalidSampleRate, "resample %v to %v", spec.SampleRate, dstRate)
	}

	channels := spec.Channels
	ratio := float64(spec.SampleRate) / float64(dstRate)

	r := &Resampler{
		src:         src,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, max(channels, MaxBlockSize-MaxBlockSize%channels)),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}
	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	spec.SampleRate = dstRate
	spec.BitsPerSample = 32
	spec.Format = SampleFormatFloat
	r.spec = spec

	return r, nil
}

func (r *Resampler) Spec() Spec { return r.spec }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return errors.Wrapf(err, "close resampler source")
	}
	return nil
}

// maxEmptyReads is how many (0, nil) reads in a row are tolerated before a
// source counts as stuck.
const maxEmptyReads = 100

// readFrame copies the next source frame into dst.
func (r *Resampler) readFrame(dst []float32) error {
	for empty := 0; r.srcPos == r.srcLen; {
		if r.srcErr != nil {
			return r.srcErr
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		r.srcPos, r.srcLen, r.srcErr = 0, n-n%r.channels, err
		if n == 0 && err == nil {
			if empty++; empty == maxEmptyReads {
				return io.ErrNoProgress
			}
		}
	}

	copy(dst, r.srcBuf[r.srcPos:r.srcPos+r.channels])
	r.srcPos += r.channels
	return nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.useFilter {
		return
	}
	// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
	for c := range frame {
		frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

// prime loads the first frames. The first source frame sits at t0 and is
// duplicated into t-1.
func (r *Resampler) prime() error {
	if err := r.readFrame(r.frames[1]); err != nil {
		return err
	}
	copy(r.frames[0], r.frames[1])
	copy(r.filterState, r.frames[1])
	r.hasFrame[0], r.hasFrame[1] = true, true

	for i := 2; i < 4; i++ {
		err := r.readFrame(r.frames[i])
		if err == io.EOF {
			r.eof = true
			break
		}
		if err != nil {
			return err
		}
		r.filter(r.frames[i])
		r.hasFrame[i] = true
	}

	r.primed = true
	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	if !r.hasFrame[2] {
		return io.EOF
	}

	// Shift frames: [0,1,2,3] -> [1,2,3,?]
	r.frames[0], r.frames[1], r.frames[2], r.frames[3] = r.frames[1], r.frames[2], r.frames[3], r.frames[0]
	r.hasFrame[0], r.hasFrame[1], r.hasFrame[2] = r.hasFrame[1], r.hasFrame[2], r.hasFrame[3]
	r.hasFrame[3] = false

	if r.eof {
		return nil
	}

	err := r.readFrame(r.frames[3])
	if err == io.EOF {
		r.eof = true
		return nil
	}
	if err != nil {
		return err
	}

	r.filter(r.frames[3])
	r.hasFrame[3] = true
	return nil
}

// ReadSamples produces whole frames at the target rate. A dst length that is
// not a multiple of the channel count leaves its tail untouched.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	framesNeeded := len(dst) / r.channels
	if framesNeeded == 0 {
		return 0, nil
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, wrapRead(err)
		}
	}

	written := 0
	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, wrapRead(err)
			}
		}

		// Missing neighbours repeat the nearest frame
		y1 := r.frames[1]
		y0 := y1
		if r.hasFrame[0] {
			y0 = r.frames[0]
		}
		y2 := y1
		if r.hasFrame[2] {
			y2 = r.frames[2]
		}
		y3 := y2
		if r.hasFrame[3] {
			y3 = r.frames[3]
		}

		alpha := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(y0[c], y1[c], y2[c], y3[c], alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}

func wrapRead(err error) error {
	if err == io.EOF {
		return err
	}
	return errors.Wrapf(err, "resample")
}
