// SPDX-License-Identifier: EPL-2.0

package processors

import (
	"github.com/SeedyROM/mixie/audio"
	"github.com/SeedyROM/mixie/formats/aiff"
	"github.com/SeedyROM/mixie/formats/mp3"
	"github.com/SeedyROM/mixie/formats/vorbis"
	"github.com/SeedyROM/mixie/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}
