// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ws2812wheel animates a WS2812 strip or matrix connected to a SPI port.
//
// Without a SPI port, or with -screen, the frames are shown at the console.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GermanBionicSystems/ledmatrix/screen2d"
	"github.com/GermanBionicSystems/ledmatrix/ws2812"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// maxFailures is the number of frames in a row that may fail before giving
// up.
const maxFailures = 10

// output is where frames go.
type output struct {
	name  string
	store *ws2812.Store
	show  func() error
	halt  func() error
}

func openSPI(c *Config) (*output, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	p, err := spireg.Open(c.Port)
	if err != nil {
		return nil, err
	}
	d, err := ws2812.NewSPI(p, c.Opts())
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return &output{
		name:  d.String(),
		store: d.Store,
		show:  d.Show,
		halt: func() error {
			err := d.Halt()
			if err2 := p.Close(); err == nil {
				err = err2
			}
			return err
		},
	}, nil
}

func openScreen(c *Config) (*output, error) {
	s, err := ws2812.NewStore(c.Leds, c.Layout())
	if err != nil {
		return nil, err
	}
	scr := screen2d.New(&screen2d.Opts{X: s.LedsPerRow(), Y: s.Rows()})
	return &output{
		name:  scr.String(),
		store: s,
		show: func() error {
			return scr.Draw(scr.Bounds(), s, image.Point{})
		},
		halt: scr.Halt,
	}, nil
}

func newLogger(level string, verbose bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: colorable.NewColorableStderr(), TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// run renders frames until ctx is done.
func run(ctx context.Context, c *Config, out *output, log zerolog.Logger) error {
	a := newAnimation(c, out.store)
	period := time.Second / time.Duration(c.FPS)
	// The LEDs need a low period between frames to latch.
	if period < time.Millisecond {
		period = time.Millisecond
	}
	t := time.NewTicker(period)
	defer t.Stop()
	failures := 0
	for ctx.Err() == nil {
		a.step(out.store)
		if err := out.show(); err != nil {
			failures++
			log.Warn().Err(err).Int("frame", a.n).Msg("frame dropped")
			if failures >= maxFailures {
				return fmt.Errorf("%d frames in a row failed: %w", failures, err)
			}
		} else {
			failures = 0
		}
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}
	log.Info().Int("frames", a.n).Msg("stopping")
	return nil
}

func mainImpl() error {
	configPath := flag.String("config", "", "YAML configuration file")
	pattern := flag.String("pattern", "", "wheel, ring or text; overrides the configuration")
	brightness := flag.Int("brightness", -1, "visible brightness 0-255; overrides the configuration")
	port := flag.String("port", "", "SPI port; overrides the configuration")
	screen := flag.Bool("screen", false, "render at the console instead of the SPI port")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	c := Default()
	if *configPath != "" {
		var err error
		if c, err = Load(*configPath); err != nil {
			return err
		}
	}
	if *pattern != "" {
		c.Pattern = *pattern
	}
	if *brightness >= 0 {
		if *brightness > 255 {
			return fmt.Errorf("invalid brightness %d", *brightness)
		}
		c.Brightness = uint8(*brightness)
	}
	if *port != "" {
		c.Port = *port
	}
	if err := c.Validate(); err != nil {
		return err
	}
	log, err := newLogger(c.LogLevel, *verbose)
	if err != nil {
		return err
	}

	var out *output
	if !*screen {
		if out, err = openSPI(c); err != nil {
			log.Warn().Err(err).Msg("no SPI port, rendering at the console")
		}
	}
	if out == nil {
		if out, err = openScreen(c); err != nil {
			return err
		}
	}
	log.Info().
		Str("output", out.name).
		Int("leds", out.store.NumLeds()).
		Int("leds_per_row", out.store.LedsPerRow()).
		Int("rows", out.store.Rows()).
		Str("pattern", c.Pattern).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = run(ctx, c, out, log)
	if err2 := out.halt(); err == nil {
		err = err2
	}
	return err
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "ws2812wheel: %s.\n", err)
		os.Exit(1)
	}
}
