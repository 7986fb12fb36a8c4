// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ossrs/go-oryx-lib/errors"

var (
	ErrZeroChannels      = errors.New("channel count must be at least 1")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrSourceExhausted is reported when a file source runs out of samples
	// during playback.
	ErrSourceExhausted = errors.New("source exhausted")
)
