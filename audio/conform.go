// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ossrs/go-oryx-lib/errors"

// Conform returns src converted to sampleRate and channels. Stages are only
// added where src differs; a matching src is returned as is.
//
// Channels are mixed on the side of the resampler with fewer of them.
func Conform(src Source, sampleRate, channels int) (Source, error) {
	spec := src.Spec()

	mix := func(s Source) (Source, error) {
		if s.Spec().Channels == channels {
			return s, nil
		}
		m, err := NewChannelMixer(s, channels)
		if err != nil {
			return nil, errors.Wrapf(err, "mix %v to %v channels", s.Spec().Channels, channels)
		}
		return m, nil
	}
	resample := func(s Source) (Source, error) {
		if s.Spec().SampleRate == sampleRate {
			return s, nil
		}
		r, err := NewResampler(s, sampleRate)
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	first, second := resample, mix
	if channels < spec.Channels {
		first, second = mix, resample
	}

	s, err := first(src)
	if err != nil {
		return nil, err
	}
	return second(s)
}
