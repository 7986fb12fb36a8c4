// SPDX-License-Identifier: EPL-2.0

package processors

import "github.com/SeedyROM/mixie/audio"

// Identity copies every input sample to the matching output sample.
type Identity struct{}

func (Identity) Process(ctx *audio.Context) {
	for frame := range ctx.Frames() {
		for in, out := range frame.Samples() {
			*out = in
		}
	}
}
