// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio library for robust WAV file handling.
//
// # Supported Formats
//
// Decoding:
//   - PCM 8-bit (unsigned), 16-bit, 24-bit and 32-bit
//   - IEEE float 32-bit
//   - Any channel count and sample rate
//
// Encoding:
//   - PCM 16-bit, any channel count
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close() // closes file
//
//	buf := make([]float32, 1024)
//	n, err := source.ReadSamples(buf)
//
// Integer samples are normalised by 2^(bits-1): a 16-bit sample v becomes
// v/32768. Float samples are returned exactly as stored. Source.Spec reports
// the stored format and bit depth.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files from interleaved int16 samples. The
// writer must be seekable because the chunk sizes are patched after the data:
//
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 48000, 2, samples)
//
// # Error Handling
//
// The package defines several sentinel errors:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedFormat: The fmt chunk names a compressed or unknown encoding
//   - ErrUnsupportedBitDepth: The bit depth is not one listed above
package wav
