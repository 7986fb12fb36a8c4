// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/ossrs/go-oryx-lib/errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("unsupported WAV sample format")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
