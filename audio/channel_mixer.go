// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ossrs/go-oryx-lib/errors"

// ChannelMixer converts a Source to a different channel count.
//
// Down to mono, channels are averaged. Up from mono, the one channel is
// copied to every output channel. Otherwise channels are matched by index:
// extra source channels are dropped and extra output channels are silent.
type ChannelMixer struct {
	src  Source
	spec Spec
	in   int
	tmp  []float32
}

func NewChannelMixer(src Source, channels int) (*ChannelMixer, error) {
	if channels < 1 {
		return nil, ErrZeroChannels
	}

	spec := src.Spec()
	in := spec.Channels
	if in < 1 {
		return nil, ErrZeroChannels
	}
	spec.Channels = channels

	return &ChannelMixer{
		src:  src,
		spec: spec,
		in:   in,
		// A full block of output frames never needs more than this
		tmp: make([]float32, MaxBlockSize*in),
	}, nil
}

// NewMonoMixer averages every channel of src into one.
func NewMonoMixer(src Source) (*ChannelMixer, error) {
	return NewChannelMixer(src, 1)
}

func (m *ChannelMixer) Spec() Spec { return m.spec }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return errors.Wrapf(err, "close mixer source")
	}
	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	out := m.spec.Channels
	if m.in == out {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / out
	if frames == 0 {
		return 0, nil
	}

	// Grow once for callers reading more than a block at a time
	need := frames * m.in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}

	n, err := m.src.ReadSamples(m.tmp[:need])
	frames = n / m.in
	if frames == 0 {
		return 0, err
	}
	tmp := m.tmp[:frames*m.in]

	switch {
	case out == 1:
		downmix(dst, tmp, m.in)
	case m.in == 1:
		for f, v := range tmp {
			for c := range out {
				dst[f*out+c] = v
			}
		}
	default:
		for f := range frames {
			for c := range out {
				v := float32(0)
				if c < m.in {
					v = tmp[f*m.in+c]
				}
				dst[f*out+c] = v
			}
		}
	}

	return frames * out, err
}

// downmix averages each frame of src into one sample of dst.
func downmix(dst, src []float32, channels int) {
	frames := len(src) / channels

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (src[idx] + src[idx+1]) * 0.5
		}
	case 4:
		for f := range frames {
			idx := f << 2
			dst[f] = (src[idx] + src[idx+1] + src[idx+2] + src[idx+3]) * 0.25
		}
	default:
		inv := 1 / float32(channels)
		for f := range frames {
			sum := float32(0)
			for _, v := range src[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * inv
		}
	}
}
