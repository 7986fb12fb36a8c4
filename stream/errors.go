// SPDX-License-Identifier: EPL-2.0

package stream

import "github.com/ossrs/go-oryx-lib/errors"

var (
	// ErrUnsupportedFormat indicates a sample format the backend cannot play
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// ErrInvalidSampleRate indicates a sample rate that is not positive
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrTooManyChannels indicates a frame that would not fit in one block
	ErrTooManyChannels = errors.New("channel count exceeds block size")

	// ErrInvalidState indicates a lifecycle call made in the wrong state,
	// such as running a driver twice
	ErrInvalidState = errors.New("invalid driver state")

	// ErrNoDevice is returned by OtoBackend in builds without device output
	ErrNoDevice = errors.New("built without audio device support")

	// ErrClipped is reported the first time a stream clamps an output sample
	ErrClipped = errors.New("output clipped to [-1, 1]")
)
