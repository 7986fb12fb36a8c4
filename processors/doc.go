// SPDX-License-Identifier: EPL-2.0

// Package processors provides the stock audio.Processor implementations.
//
//   - Identity copies input to output
//   - Gain scales input by a fixed amplitude
//   - WhiteNoise generates uniform noise in [-0.5, 0.5)
//   - FilePlayer streams samples decoded from a file
//
// # File Playback
//
// A FilePlayer ignores its input and fills each output sample with the next
// decoded sample. Samples are staged MaxBlockSize at a time, so the decoder is
// consulted once per block rather than once per sample:
//
//	sink := diag.NewChannel(16)
//	go sink.Drain(ctx)
//
//	player, err := processors.OpenFile("./data/lighter.wav", processors.DefaultRegistry(), sink)
//	if err != nil {
//	    // Missing file or unsupported format
//	}
//	defer player.Close()
//
// When the file runs out the player outputs silence and reports
// audio.ErrSourceExhausted to the sink once. A decode error is reported the
// same way and silences the player for good. Process itself never fails.
//
// OpenFile plays a file as decoded. When its rate or channel count may differ
// from the stream, decode it with DecodeFile and convert it first:
//
//	src, err := processors.DecodeFile(path, processors.DefaultRegistry())
//	if err != nil {
//	    // Missing file or unsupported format
//	}
//	src, err = audio.Conform(src, 48000, 2)
//	if err != nil {
//	    // Invalid target
//	}
//	player := processors.NewFilePlayer(src, sink)
//
// The go-audio decoders behind wav and aiff allocate a scratch slice on each
// read, so a refill allocates once per MaxBlockSize samples.
package processors
