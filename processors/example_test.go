// SPDX-License-Identifier: EPL-2.0

package processors_test

import (
	"fmt"
	"os"

	"github.com/SeedyROM/mixie/audio"
	"github.com/SeedyROM/mixie/formats/wav"
	"github.com/SeedyROM/mixie/processors"
)

func ExampleGain() {
	in, _ := audio.NewBuffer(2)
	out, _ := audio.NewBuffer(2)
	for i := range 8 {
		in.Samples()[i] = float32(i)
	}

	processors.NewGain(0.5).Process(audio.NewContext(in, 8, out, 8, 44100))

	fmt.Println(out.Samples()[:8])
	// Output: [0 0.5 1 1.5 2 2.5 3 3.5]
}

func ExampleDecodeFile() {
	// A 24kHz stereo file at half scale
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())

	samples := make([]int16, 2*240)
	for i := range samples {
		samples[i] = 16384
	}
	if err := wav.WriteWAV16(f, 24000, 2, samples); err != nil {
		fmt.Println(err)
		return
	}
	f.Close()

	src, err := processors.DecodeFile(f.Name(), processors.DefaultRegistry())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(src.Spec().SampleRate, src.Spec().Channels)

	// Convert to the stream's 48kHz mono before playing it
	src, err = audio.Conform(src, 48000, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	player := processors.NewFilePlayer(src, nil)
	defer player.Close()
	fmt.Println(player.Spec().SampleRate, player.Spec().Channels)

	in, _ := audio.NewBuffer(1)
	out, _ := audio.NewBuffer(1)
	player.Process(audio.NewContext(in, 4, out, 4, 48000))
	fmt.Println(out.Samples()[:4])
	// Output:
	// 24000 2
	// 48000 1
	// [0.5 0.5 0.5 0.5]
}
