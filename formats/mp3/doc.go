// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// an audio.Source that the file player can stream from.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close() // closes file
//
//	buf := make([]float32, 1024)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// go-mp3 always produces interleaved stereo 16-bit PCM, so Spec reports
// 2 channels, 16 bits and SampleFormatInt regardless of how the file was
// encoded. Samples are normalised to [-1.0, 1.0) by dividing by 32768.
package mp3
