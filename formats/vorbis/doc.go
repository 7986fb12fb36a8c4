// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files into an audio.Source.
//
// # Decoding Ogg Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
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
// Vorbis decodes straight to float, so samples are passed through as the
// library produces them and Spec reports SampleFormatFloat. ReadSamples only
// fills whole frames: a dst whose length is not a multiple of the channel
// count has its tail left untouched.
package vorbis
