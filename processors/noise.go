// SPDX-License-Identifier: EPL-2.0

package processors

import (
	"math/rand/v2"

	"github.com/SeedyROM/mixie/audio"
)

// WhiteNoise fills every output sample with uniform noise in [-0.5, 0.5).
// Input is ignored.
type WhiteNoise struct {
	rng *rand.Rand
}

type NoiseOption func(*WhiteNoise)

// WithRand draws noise from r. r must not be shared with another goroutine.
func WithRand(r *rand.Rand) NoiseOption {
	return func(n *WhiteNoise) {
		n.rng = r
	}
}

// WithSeed makes the noise sequence reproducible.
func WithSeed(seed int64) NoiseOption {
	return WithRand(rand.New(rand.NewPCG(uint64(seed), uint64(seed))))
}

// NewWhiteNoise uses the runtime's random source unless an option supplies one.
func NewWhiteNoise(opts ...NoiseOption) *WhiteNoise {
	n := &WhiteNoise{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *WhiteNoise) Process(ctx *audio.Context) {
	for frame := range ctx.Frames() {
		for _, out := range frame.Samples() {
			*out = (n.sample()*2 - 1) * 0.5
		}
	}
}

func (n *WhiteNoise) sample() float32 {
	if n.rng == nil {
		return rand.Float32()
	}
	return n.rng.Float32()
}
