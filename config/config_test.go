// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/audio"
	"github.com/SeedyROM/mixie/stream"
)

var keys = []string{
	"MIXIE_PROCESSOR", "MIXIE_GAIN", "MIXIE_FILE", "MIXIE_SAMPLE_RATE",
	"MIXIE_CHANNELS", "MIXIE_FORMAT", "MIXIE_BUFFER_MS", "MIXIE_NOISE_SEED",
}

// clearEnv unsets every MIXIE_* variable for the test and restores them
// afterwards. Tests using it cannot run in parallel.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range keys {
		// Setenv registers the restore; godotenv treats a set but empty
		// variable as present, so unset it too.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Processor != ProcessorNoise {
		t.Errorf("Processor = %q, want %q", c.Processor, ProcessorNoise)
	}
	if c.Gain != 0.5 {
		t.Errorf("Gain = %v, want 0.5", c.Gain)
	}
	if c.File != "./data/lighter.wav" {
		t.Errorf("File = %q, want ./data/lighter.wav", c.File)
	}
	want := stream.Config{Channels: 2, SampleRate: 48000, Format: stream.FormatFloat32}
	if c.Stream() != want {
		t.Errorf("Stream() = %+v, want %+v", c.Stream(), want)
	}
	if c.BufferSize != 0 || c.HasNoiseSeed {
		t.Errorf("BufferSize = %v, HasNoiseSeed = %v, want unset", c.BufferSize, c.HasNoiseSeed)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "MIXIE_PROCESSOR=gain\nMIXIE_GAIN=0.25\nMIXIE_CHANNELS=1\nMIXIE_FORMAT=i16\nMIXIE_NOISE_SEED=42\nMIXIE_BUFFER_MS=20\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// The environment wins over the file
	t.Setenv("MIXIE_CHANNELS", "6")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Processor != ProcessorGain || c.Gain != 0.25 {
		t.Errorf("Processor, Gain = %q, %v, want gain, 0.25", c.Processor, c.Gain)
	}
	if c.Channels != 6 {
		t.Errorf("Channels = %d, want 6 from the environment", c.Channels)
	}
	if c.Format != stream.FormatInt16 {
		t.Errorf("Format = %v, want i16", c.Format)
	}
	if !c.HasNoiseSeed || c.NoiseSeed != 42 {
		t.Errorf("NoiseSeed = %v (set %v), want 42", c.NoiseSeed, c.HasNoiseSeed)
	}
	if c.BufferSize != 20*time.Millisecond {
		t.Errorf("BufferSize = %v, want 20ms", c.BufferSize)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Load() error = %v, want missing file ignored", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"unknown processor", "MIXIE_PROCESSOR", "reverb", ErrUnknownProcessor},
		{"gain not a number", "MIXIE_GAIN", "loud", ErrInvalidValue},
		{"channels not a number", "MIXIE_CHANNELS", "two", ErrInvalidValue},
		{"zero channels", "MIXIE_CHANNELS", "-1", audio.ErrZeroChannels},
		{"bad format", "MIXIE_FORMAT", "s32", stream.ErrUnsupportedFormat},
		{"negative rate", "MIXIE_SAMPLE_RATE", "-48000", stream.ErrInvalidSampleRate},
		{"bad seed", "MIXIE_NOISE_SEED", "0x", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			if errors.Cause(err) != tt.want {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}
