// SPDX-License-Identifier: EPL-2.0

// Command mixie plays a processor through the default output device, or
// renders it to a 16-bit WAV file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/SeedyROM/mixie/audio"
	"github.com/SeedyROM/mixie/config"
	"github.com/SeedyROM/mixie/diag"
	"github.com/SeedyROM/mixie/formats/wav"
	"github.com/SeedyROM/mixie/processors"
	"github.com/SeedyROM/mixie/stream"
	"github.com/SeedyROM/mixie/units"
)

const version = "v0.1.0"

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}

	logger.Tf(ctx, "run ok")
}

func doMain(ctx context.Context) error {
	var showVersion bool
	var envFile, renderFile string
	var seconds float64
	flag.BoolVar(&showVersion, "v", false, "Print version and quit")
	flag.StringVar(&envFile, "env", ".env", "Load settings from this file if it exists")
	flag.StringVar(&renderFile, "render", "", "Render to this WAV file instead of playing")
	flag.Float64Var(&seconds, "seconds", 5, "Length of a render")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return nil
	}

	conf, err := config.Load(envFile)
	if err != nil {
		return errors.Wrapf(err, "load config")
	}
	logger.Tf(ctx, "load config processor=%v, gain=%v, file=%v, rate=%v, channels=%v, format=%v, buffer=%v, seed=%v",
		conf.Processor, conf.Gain, conf.File, conf.SampleRate, conf.Channels, conf.Format, conf.BufferSize,
		conf.NoiseSeed)

	// Install signals.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for s := range sc {
			logger.Tf(ctx, "Got signal %v", s)
			cancel()
		}
	}()

	sink := diag.NewChannel(64)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		sink.Drain(ctx)
	}()
	defer func() {
		cancel()
		<-drained
	}()

	proc, closer, err := newProcessor(ctx, conf, sink)
	if err != nil {
		return errors.Wrapf(err, "create %v processor", conf.Processor)
	}
	defer closer.Close()

	d, err := stream.NewDriver(conf.Stream(), proc, stream.WithSink(sink))
	if err != nil {
		return errors.Wrapf(err, "create driver")
	}

	frames := d.BlockLen() / conf.Channels
	latency := units.Seconds(float64(frames) / float64(conf.SampleRate))
	logger.Tf(ctx, "driver block=%v samples, %v", d.BlockLen(), latency.Std())

	if renderFile != "" {
		return render(ctx, d, renderFile, seconds)
	}

	if err := d.Run(ctx, stream.OtoBackend{BufferSize: conf.BufferSize}); err != nil {
		return errors.Wrapf(err, "run driver")
	}
	return nil
}

func newProcessor(ctx context.Context, conf *config.Config, sink diag.Sink) (audio.Processor, io.Closer, error) {
	switch conf.Processor {
	case config.ProcessorIdentity:
		return processors.Identity{}, nopCloser{}, nil
	case config.ProcessorGain:
		return processors.NewGain(conf.Gain), nopCloser{}, nil
	case config.ProcessorNoise:
		var opts []processors.NoiseOption
		if conf.HasNoiseSeed {
			opts = append(opts, processors.WithSeed(conf.NoiseSeed))
		}
		return processors.NewWhiteNoise(opts...), nopCloser{}, nil
	case config.ProcessorFile:
		src, err := processors.DecodeFile(conf.File, processors.DefaultRegistry())
		if err != nil {
			return nil, nil, err
		}

		spec := src.Spec()
		logger.Tf(ctx, "open %v rate=%v, channels=%v, bits=%v, format=%v",
			conf.File, spec.SampleRate, spec.Channels, spec.BitsPerSample, spec.Format)

		conformed, err := audio.Conform(src, int(conf.SampleRate), conf.Channels)
		if err != nil {
			src.Close()
			return nil, nil, errors.Wrapf(err, "convert %v", conf.File)
		}
		if conformed != src {
			logger.Tf(ctx, "convert %v from %vHz %vch to %vHz %vch",
				conf.File, spec.SampleRate, spec.Channels, conf.SampleRate, conf.Channels)
		}

		player := processors.NewFilePlayer(conformed, sink)
		return player, player, nil
	}
	return nil, nil, errors.Wrapf(config.ErrUnknownProcessor, "%v", conf.Processor)
}

func render(ctx context.Context, d *stream.Driver, path string, seconds float64) error {
	cfg := d.Config()
	frames := int(units.Seconds(seconds).InSamples(float64(cfg.SampleRate)))
	samples := stream.RenderInt16(d, frames)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %v", path)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, int(cfg.SampleRate), cfg.Channels, samples); err != nil {
		return errors.Wrapf(err, "write %v", path)
	}

	logger.Tf(ctx, "render %v frames to %v, clipped=%v", frames, path, d.Clipped())
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
