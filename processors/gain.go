// SPDX-License-Identifier: EPL-2.0

package processors

import "github.com/SeedyROM/mixie/audio"

// Gain multiplies every input sample by a fixed amplitude.
type Gain struct {
	amplitude float32
}

func NewGain(amplitude float32) *Gain {
	return &Gain{amplitude: amplitude}
}

func (g *Gain) Amplitude() float32 { return g.amplitude }

func (g *Gain) Process(ctx *audio.Context) {
	for frame := range ctx.Frames() {
		for in, out := range frame.Samples() {
			*out = in * g.amplitude
		}
	}
}
