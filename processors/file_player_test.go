// SPDX-License-Identifier: EPL-2.0

package processors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/SeedyROM/mixie/audio"
	"github.com/SeedyROM/mixie/internal/audiotest"
)

func processN(t *testing.T, p audio.Processor, channels, n int) []float32 {
	t.Helper()

	in, out := newBuffers(t, channels, 0)
	p.Process(audio.NewContext(in, n, out, n, 48000))

	return append([]float32(nil), out.Samples()[:n]...)
}

func TestFilePlayer_PlaysInOrder(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(48000, 2, 2000, 1)
	player := NewFilePlayer(src, nil)

	var got []float32
	for range 4 {
		got = append(got, processN(t, player, 2, 1000)...)
	}

	for i := range 4000 {
		if got[i] != float32(i) {
			t.Fatalf("sample %d = %v, want %d", i, got[i], i)
		}
	}
	if player.Exhausted() {
		t.Error("Exhausted() = true before the source ran out")
	}
}

func TestFilePlayer_ReadsOncePerBlock(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(48000, 1, 10*audio.MaxBlockSize, 1)
	player := NewFilePlayer(src, nil)

	// 4 * 512 samples = 2 blocks
	for range 4 {
		processN(t, player, 1, 512)
	}

	if src.Reads != 2 {
		t.Errorf("ReadSamples called %d times, want 2", src.Reads)
	}
}

func TestFilePlayer_Exhaustion(t *testing.T) {
	t.Parallel()

	rec := &audiotest.Recorder{}
	src := audiotest.NewConstantSource(48000, 1, 10, 0.25)
	player := NewFilePlayer(src, rec)

	got := processN(t, player, 1, 16)
	for i, v := range got {
		want := float32(0.25)
		if i >= 10 {
			want = 0
		}
		if v != want {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}

	// Further blocks are silent and do not report again
	for range 3 {
		for i, v := range processN(t, player, 1, 16) {
			if v != 0 {
				t.Errorf("sample %d after end = %v, want 0", i, v)
			}
		}
	}

	errs := rec.Errors()
	if len(errs) != 1 || errs[0] != audio.ErrSourceExhausted {
		t.Errorf("reports = %v, want exactly [ErrSourceExhausted]", errs)
	}
	if !player.Exhausted() {
		t.Error("Exhausted() = false after the source ran out")
	}
}

func TestFilePlayer_EmptySource(t *testing.T) {
	t.Parallel()

	rec := &audiotest.Recorder{}
	player := NewFilePlayer(audiotest.NewSilentSource(48000, 2, 0), rec)

	for i, v := range processN(t, player, 2, 8) {
		if v != 0 {
			t.Errorf("sample %d = %v, want 0", i, v)
		}
	}
	if errs := rec.Errors(); len(errs) != 1 || errs[0] != audio.ErrSourceExhausted {
		t.Errorf("reports = %v, want exactly [ErrSourceExhausted]", errs)
	}
}

func TestFilePlayer_DecodeErrorIsSticky(t *testing.T) {
	t.Parallel()

	cause := errors.New("corrupt data chunk")
	rec := &audiotest.Recorder{}
	src := audiotest.NewConstantSource(48000, 1, 100, 0.5)
	src.Err = cause
	src.FailAfter = 4

	player := NewFilePlayer(src, rec)

	got := processN(t, player, 1, 8)
	want := []float32{0.5, 0.5, 0.5, 0.5, 0, 0, 0, 0}
	if !audiotest.NearlyEqual(got, want, 0) {
		t.Errorf("output = %v, want %v", got, want)
	}

	// The source would keep failing; the player must not ask it again
	reads := src.Reads
	processN(t, player, 1, 8)
	if src.Reads != reads {
		t.Errorf("ReadSamples called %d more times after failure", src.Reads-reads)
	}

	errs := rec.Errors()
	if len(errs) != 1 || errors.Cause(errs[0]) != cause {
		t.Errorf("reports = %v, want exactly [%v]", errs, cause)
	}
	if player.Exhausted() {
		t.Error("Exhausted() = true after a decode error")
	}
}

func TestFilePlayer_IgnoresInput(t *testing.T) {
	t.Parallel()

	player := NewFilePlayer(audiotest.NewConstantSource(48000, 1, 100, 0.1), nil)

	in, out := newBuffers(t, 1, 16)
	player.Process(audio.NewContext(in, 16, out, 16, 48000))

	for i, v := range out.Samples()[:16] {
		if v != 0.1 {
			t.Errorf("out[%d] = %v, want 0.1", i, v)
		}
	}
}

func TestFilePlayer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(48000, 1, 10)
	player := NewFilePlayer(src, nil)

	if err := player.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed {
		t.Error("Close() did not close the source")
	}
}

func TestOpenWavFile(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteWAV(t, 48000, 2, 16, []int{16384, -16384, 8192, -8192})
	rec := &audiotest.Recorder{}

	player, err := OpenWavFile(path, rec)
	if err != nil {
		t.Fatalf("OpenWavFile() error = %v", err)
	}
	defer player.Close()

	spec := player.Spec()
	if spec.SampleRate != 48000 || spec.Channels != 2 || spec.BitsPerSample != 16 {
		t.Errorf("Spec() = %+v, want 48000Hz 2ch 16-bit", spec)
	}

	got := processN(t, player, 2, 6)
	want := []float32{0.5, -0.5, 0.25, -0.25, 0, 0}
	if !audiotest.NearlyEqual(got, want, 0) {
		t.Errorf("output = %v, want %v", got, want)
	}
	if errs := rec.Errors(); len(errs) != 1 || errs[0] != audio.ErrSourceExhausted {
		t.Errorf("reports = %v, want exactly [ErrSourceExhausted]", errs)
	}
}

func TestOpenWavFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a riff file at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.wav")},
		{name: "not a wav file", path: garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := OpenWavFile(tt.path, nil); err == nil {
				t.Errorf("OpenWavFile(%v) error = nil, want error", tt.path)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteFloatWAV(t, 44100, 1, []float32{0.75, -0.125})

	player, err := OpenFile(path, DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer player.Close()

	got := processN(t, player, 1, 2)
	if !audiotest.NearlyEqual(got, []float32{0.75, -0.125}, 0) {
		t.Errorf("output = %v, want [0.75 -0.125]", got)
	}
}

func TestOpenFile_UnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := OpenFile("song.flac", DefaultRegistry(), nil)
	if errors.Cause(err) != ErrUnknownFormat {
		t.Errorf("OpenFile() error = %v, want ErrUnknownFormat", err)
	}
}

func TestDecodeFile_Conform(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 2*100)
	for i := range samples {
		samples[i] = 0.5
	}
	path := audiotest.WriteFloatWAV(t, 24000, 2, samples)

	src, err := DecodeFile(path, DefaultRegistry())
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}

	spec := src.Spec()
	if spec.SampleRate != 24000 || spec.Channels != 2 {
		t.Fatalf("Spec() = %+v, want 24000Hz 2ch", spec)
	}

	conformed, err := audio.Conform(src, 48000, 1)
	if err != nil {
		t.Fatalf("Conform() error = %v", err)
	}

	player := NewFilePlayer(conformed, nil)
	defer player.Close()

	if got := player.Spec(); got.SampleRate != 48000 || got.Channels != 1 {
		t.Errorf("player Spec() = %+v, want 48000Hz 1ch", got)
	}

	got := processN(t, player, 1, 64)
	for i, v := range got {
		if v < 0.49 || v > 0.51 {
			t.Fatalf("output[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := DecodeFile("song.flac", DefaultRegistry())
	if errors.Cause(err) != ErrUnknownFormat {
		t.Errorf("DecodeFile(flac) error = %v, want ErrUnknownFormat", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.wav")
	_, err = DecodeFile(missing, DefaultRegistry())
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("DecodeFile(missing) error = %v, want not exist", err)
	}
}
