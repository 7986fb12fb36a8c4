// SPDX-License-Identifier: EPL-2.0

package audio

import "iter"

// Context pairs a view of an input Buffer with a view of an output Buffer for
// one Process call.
//
// A Context borrows both buffers; it must not be kept after the Process call
// it was handed to returns.
type Context struct {
	sampleRate float32

	input    *Buffer
	inputLen int

	output    *Buffer
	outputLen int
}

// Frame is one input frame paired with the output frame at the same position.
type Frame struct {
	In  []float32
	Out []float32
}

// NewContext returns a Context exposing the first inLen samples of in and the
// first outLen samples of out. The lengths are independent; processors that
// treat input and output alike only see the shorter of the two.
//
// A length outside [0, MaxBlockSize] panics.
func NewContext(in *Buffer, inLen int, out *Buffer, outLen int, sampleRate float32) *Context {
	c := &Context{}
	c.Reset(in, inLen, out, outLen, sampleRate)

	return c
}

// Reset re-targets c in place, so a caller on the audio path can reuse one
// Context value for every block.
func (c *Context) Reset(in *Buffer, inLen int, out *Buffer, outLen int, sampleRate float32) {
	checkActiveLen(inLen)
	checkActiveLen(outLen)

	c.input, c.inputLen = in, inLen
	c.output, c.outputLen = out, outLen
	c.sampleRate = sampleRate
}

// SampleRate of the stream in Hz.
func (c *Context) SampleRate() float32 { return c.sampleRate }

// Channels returns the output channel count.
func (c *Context) Channels() int { return c.output.channels }

// Input returns the active input samples.
func (c *Context) Input() []float32 { return c.input.data[:c.inputLen] }

// Output returns the active output samples.
func (c *Context) Output() []float32 { return c.output.data[:c.outputLen] }

// Frames yields input/output frame pairs in lock-step and stops at the end of
// the shorter active view. Only complete frames are visited.
//
// Each call starts a new sequence over the same storage; ranging over two of
// them at once is not supported.
func (c *Context) Frames() iter.Seq[Frame] {
	inCh, outCh := c.input.channels, c.output.channels
	frames := min(c.inputLen/inCh, c.outputLen/outCh)

	return func(yield func(Frame) bool) {
		for f := range frames {
			i, o := f*inCh, f*outCh
			frame := Frame{
				In:  c.input.data[i : i+inCh : i+inCh],
				Out: c.output.data[o : o+outCh : o+outCh],
			}
			if !yield(frame) {
				return
			}
		}
	}
}

// Samples yields each input sample with a pointer to the output sample in the
// same channel, in channel order.
func (f Frame) Samples() iter.Seq2[float32, *float32] {
	return func(yield func(float32, *float32) bool) {
		for ch := range min(len(f.In), len(f.Out)) {
			if !yield(f.In[ch], &f.Out[ch]) {
				return
			}
		}
	}
}
