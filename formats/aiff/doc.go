// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into an
// audio.Source.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit (signed, big-endian as stored)
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close() // closes file
//
// Samples are normalised by 2^(bits-1), matching the wav package.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: The bit depth is not 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: The COMM chunk could not be read
package aiff
