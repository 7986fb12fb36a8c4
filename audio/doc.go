// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level building blocks of the block processing
// pipeline.
//
// This package contains:
//   - Buffer, fixed-capacity interleaved sample storage
//   - Context, the input/output view handed to a Processor
//   - Processor, the interface every effect and generator implements
//   - Source and Decoder, for file-backed sample streams
//   - Registry, decoders keyed by format
//   - ChannelMixer, Resampler and Conform, for matching a Source to a device
//
// # Buffers
//
// A Buffer always holds MaxBlockSize samples. Callers track how many of them
// are in use and pass that count around explicitly:
//
//	buf, err := audio.NewBuffer(2)
//	if err != nil {
//	    // channel count was zero
//	}
//	for frame := range buf.Frames(8) {
//	    // frame is a []float32 of len 2
//	}
//
// # Processing
//
// The stream driver builds a Context over two persistent buffers for every
// block and calls Process:
//
//	ctx := audio.NewContext(in, n, out, n, 48000)
//	proc.Process(ctx)
//
// A Processor can work a frame at a time or a sample at a time:
//
//	for frame := range ctx.Frames() {
//	    for in, out := range frame.Samples() {
//	        *out = in * 0.5
//	    }
//	}
//
// Process is called from the real-time audio callback. It must not allocate,
// block or lock, and it cannot return an error.
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0]. Conversion to the device's
// native representation happens in the stream package.
//
// # Sources
//
// Source is the file decoding side of the pipeline. ReadSamples returns
// io.EOF once the stream is finished:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Decode error
//	    }
//	    // Use n samples from buf
//	}
//
// # Conversion
//
// Conform wraps a Source so it produces samples at a given rate and channel
// count. Stages are only added where the source differs:
//
//	src, err = audio.Conform(src, 48000, 2)
//
// Resampler uses cubic interpolation, with a one-pole low-pass ahead of it
// when downsampling. ChannelMixer averages to mono, duplicates mono, and maps
// any other layout by channel index.
package audio
