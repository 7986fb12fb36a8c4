// SPDX-License-Identifier: EPL-2.0

// Package mixie is a real-time audio block processing pipeline.
//
// A Processor receives a block of interleaved float32 input samples and
// writes a block of output samples. The stream driver pulls blocks from a
// Processor inside the device callback and converts them to the device
// sample format.
//
// # Packages
//
//   - audio: sample buffers, the processing context, the Processor interface
//     and file sources
//   - processors: Identity, Gain, WhiteNoise and FilePlayer
//   - stream: the driver state machine, sample format conversion and the
//     oto and offline backends
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//   - units: Frequency and Duration helpers
//   - diag: out-of-band error reporting from the audio thread
//   - config: .env and environment configuration for cmd/mixie
//
// # Quick Start
//
//	conf := stream.Config{Channels: 2, SampleRate: 48000, Format: stream.FormatFloat32}
//	d, err := stream.NewDriver(conf, processors.NewGain(0.5))
//	if err != nil {
//	    return err
//	}
//	if err := d.Run(ctx, stream.OtoBackend{}); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is cancelled. A driver streams once; after it stops
// it cannot be restarted.
//
// # Files
//
// Decode any registered format and play it at the device rate:
//
//	src, err := processors.DecodeFile("music.mp3", processors.DefaultRegistry())
//	if err != nil {
//	    return err
//	}
//	src, err = audio.Conform(src, 48000, 2)
//	if err != nil {
//	    return err
//	}
//	player := processors.NewFilePlayer(src, diag.Discard)
//	defer player.Close()
//
// When the file runs out the player writes silence and reports
// audio.ErrSourceExhausted to its sink once.
package mixie
