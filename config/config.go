// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime settings from a .env file and the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/stream"
)

const (
	ProcessorIdentity = "identity"
	ProcessorGain     = "gain"
	ProcessorNoise    = "noise"
	ProcessorFile     = "file"
)

var (
	// ErrUnknownProcessor indicates MIXIE_PROCESSOR names no known processor
	ErrUnknownProcessor = errors.New("unknown processor")

	// ErrInvalidValue indicates an environment value that does not parse
	ErrInvalidValue = errors.New("invalid value")
)

type Config struct {
	Processor string
	Gain      float32
	File      string

	SampleRate float32
	Channels   int
	Format     stream.SampleFormat
	// BufferSize of the output device, zero for the backend default.
	BufferSize time.Duration

	// NoiseSeed is only used when HasNoiseSeed is set.
	NoiseSeed    int64
	HasNoiseSeed bool
}

// Stream returns the device stream settings.
func (c *Config) Stream() stream.Config {
	return stream.Config{
		Channels:   c.Channels,
		SampleRate: c.SampleRate,
		Format:     c.Format,
	}
}

// Load reads envFile if it exists, fills unset MIXIE_* variables with their
// defaults and parses them. Variables already in the environment win over
// the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, errors.Wrapf(err, "load %v", envFile)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat %v", envFile)
		}
	}

	setEnvDefault("MIXIE_PROCESSOR", ProcessorNoise)
	setEnvDefault("MIXIE_GAIN", "0.5")
	setEnvDefault("MIXIE_FILE", "./data/lighter.wav")
	setEnvDefault("MIXIE_SAMPLE_RATE", "48000")
	setEnvDefault("MIXIE_CHANNELS", "2")
	setEnvDefault("MIXIE_FORMAT", "f32")
	setEnvDefault("MIXIE_BUFFER_MS", "0")

	return FromEnv()
}

// FromEnv parses the MIXIE_* variables without applying defaults.
func FromEnv() (*Config, error) {
	c := &Config{
		Processor: os.Getenv("MIXIE_PROCESSOR"),
		File:      os.Getenv("MIXIE_FILE"),
	}

	switch c.Processor {
	case ProcessorIdentity, ProcessorGain, ProcessorNoise, ProcessorFile:
	default:
		return nil, errors.Wrapf(ErrUnknownProcessor, "MIXIE_PROCESSOR=%v", c.Processor)
	}

	gain, err := parseFloat("MIXIE_GAIN")
	if err != nil {
		return nil, err
	}
	c.Gain = gain

	rate, err := parseFloat("MIXIE_SAMPLE_RATE")
	if err != nil {
		return nil, err
	}
	c.SampleRate = rate

	channels, err := parseInt("MIXIE_CHANNELS")
	if err != nil {
		return nil, err
	}
	c.Channels = int(channels)

	if c.Format, err = stream.ParseFormat(os.Getenv("MIXIE_FORMAT")); err != nil {
		return nil, errors.Wrapf(err, "MIXIE_FORMAT")
	}

	bufferMs, err := parseInt("MIXIE_BUFFER_MS")
	if err != nil {
		return nil, err
	}
	c.BufferSize = time.Duration(bufferMs) * time.Millisecond

	if os.Getenv("MIXIE_NOISE_SEED") != "" {
		if c.NoiseSeed, err = parseInt("MIXIE_NOISE_SEED"); err != nil {
			return nil, err
		}
		c.HasNoiseSeed = true
	}

	if err := c.Stream().Validate(); err != nil {
		return nil, errors.Wrapf(err, "stream settings")
	}
	return c, nil
}

func setEnvDefault(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

func parseFloat(key string) (float32, error) {
	v, err := strconv.ParseFloat(os.Getenv(key), 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "%v=%v", key, os.Getenv(key))
	}
	return float32(v), nil
}

func parseInt(key string) (int64, error) {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "%v=%v", key, os.Getenv(key))
	}
	return v, nil
}
