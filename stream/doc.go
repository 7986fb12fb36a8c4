// SPDX-License-Identifier: EPL-2.0

// Package stream drives an audio.Processor from a device's output callback.
//
// # Lifecycle
//
// A Driver is created in StateConfigured with its buffers already allocated.
// Run moves it to StateStreaming, blocks until the context is cancelled and
// then leaves it in StateStopped. A driver cannot be restarted.
//
//	d, err := stream.NewDriver(stream.Config{
//	    Channels:   2,
//	    SampleRate: 48000,
//	    Format:     stream.FormatFloat32,
//	}, processors.NewGain(0.5))
//	if err != nil {
//	    // Invalid config
//	}
//	err = d.Run(ctx, stream.OtoBackend{})
//
// # Callbacks
//
// The device asks for buffers of whatever size it likes. The driver cuts each
// one into chunks of BlockLen samples, the largest multiple of the channel
// count not exceeding audio.MaxBlockSize, so every chunk holds whole frames.
// With 2 channels that is 1024 samples; with 3 it is 1023.
//
// Output is clamped to [-1, 1] before conversion. Clamped samples are counted
// and the first one is reported to the diagnostic sink.
//
// # Devices
//
// OtoBackend plays through oto, which needs cgo and the platform audio
// headers (ALSA on Linux). Build with -tags headless to leave it out; the
// driver, OfflineBackend and every test then build without them, and
// OtoBackend.Open returns ErrNoDevice.
//
// # Offline Rendering
//
// OfflineBackend and RenderInt16 run the same callback path without a device,
// for tests and rendering to a file.
package stream
