// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
)

// MaxBlockSize is the fixed capacity, in samples, of every Buffer. It is the
// largest block a Processor is ever handed in one call.
const MaxBlockSize = 1024

// Buffer is fixed-capacity interleaved sample storage.
//
// The storage never grows or shrinks; how much of it is in use is tracked by
// the caller (see Context). A Buffer is allocated once per stream and reused
// for every callback.
type Buffer struct {
	channels int
	data     [MaxBlockSize]float32
}

// NewBuffer returns a zeroed Buffer holding interleaved frames of channels
// samples each.
func NewBuffer(channels int) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrZeroChannels
	}

	return &Buffer{channels: channels}, nil
}

// Channels returns the number of samples per frame.
func (b *Buffer) Channels() int { return b.channels }

// Len returns the storage capacity, which is always MaxBlockSize.
func (b *Buffer) Len() int { return len(b.data) }

// Samples returns the full fixed storage.
func (b *Buffer) Samples() []float32 { return b.data[:] }

// Zero resets every sample to 0.
func (b *Buffer) Zero() {
	clear(b.data[:])
}

// BlockLen returns the largest multiple of the channel count that fits in
// MaxBlockSize.
func (b *Buffer) BlockLen() int {
	return MaxBlockSize - MaxBlockSize%b.channels
}

// Frames yields consecutive, non-overlapping frames covering the first
// activeLen samples. A trailing partial frame (activeLen not a multiple of
// the channel count) is not yielded.
//
// activeLen larger than MaxBlockSize panics.
func (b *Buffer) Frames(activeLen int) iter.Seq[[]float32] {
	checkActiveLen(activeLen)

	return func(yield func([]float32) bool) {
		for i := 0; i+b.channels <= activeLen; i += b.channels {
			if !yield(b.data[i : i+b.channels : i+b.channels]) {
				return
			}
		}
	}
}

func checkActiveLen(n int) {
	if n < 0 || n > MaxBlockSize {
		panic(fmt.Sprintf("audio: active length %d outside [0, %d]", n, MaxBlockSize))
	}
}
