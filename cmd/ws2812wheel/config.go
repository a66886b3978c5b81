// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/GermanBionicSystems/ledmatrix/ws2812"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

// Config is the on-disk configuration of the demo.
type Config struct {
	// Port is the SPI port name, "" for the first one found.
	Port    string `yaml:"port"`
	FreqHz  int64  `yaml:"freq_hz"`
	LatchUs int    `yaml:"latch_us"`
	// Atomic pins the rendering thread and holds off the GC during
	// transfers.
	Atomic bool `yaml:"atomic"`

	Leds        int  `yaml:"leds"`
	LedsPerRow  int  `yaml:"leds_per_row"`
	XReversed   bool `yaml:"x_reversed"`
	Alternating bool `yaml:"alternating"`

	Brightness uint8  `yaml:"brightness"`
	FPS        int    `yaml:"fps"`
	Pattern    string `yaml:"pattern"` // "wheel" | "ring" | "text"
	Text       string `yaml:"text,omitempty"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration of a 4m strip of 60 LEDs/m.
func Default() *Config {
	return &Config{
		FreqHz:     int64(ws2812.DefaultOpts.Freq / physic.Hertz),
		LatchUs:    int(ws2812.DefaultOpts.Latch / time.Microsecond),
		Atomic:     true,
		Leds:       240,
		Brightness: 128,
		FPS:        60,
		Pattern:    "wheel",
		Text:       "Hello",
		LogLevel:   "info",
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path.
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// maxLatchUs is one second.
const maxLatchUs = 1000000

// rows returns the panel height, 0 when the geometry is invalid.
func (c *Config) rows() int {
	w := c.LedsPerRow
	if w == 0 {
		w = c.Leds
	}
	if w <= 0 {
		return 0
	}
	return (c.Leds + w - 1) / w
}

// Validate checks the fields the driver does not check itself.
func (c *Config) Validate() error {
	switch c.Pattern {
	case "wheel", "ring", "text":
	default:
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	if c.FPS <= 0 || c.FPS > 1000 {
		return fmt.Errorf("invalid fps %d", c.FPS)
	}
	if c.FreqHz < 0 {
		return fmt.Errorf("invalid freq_hz %d", c.FreqHz)
	}
	if c.LatchUs > maxLatchUs {
		return fmt.Errorf("invalid latch_us %d, max is %d", c.LatchUs, maxLatchUs)
	}
	if c.Pattern == "text" {
		if rows := c.rows(); rows < textRows {
			return fmt.Errorf("pattern text needs %d rows, the panel has %d", textRows, rows)
		}
	}
	return nil
}

// Opts converts the configuration to driver options.
func (c *Config) Opts() *ws2812.Opts {
	o := &ws2812.Opts{
		NumPixels:   c.Leds,
		LedsPerRow:  c.LedsPerRow,
		XReversed:   c.XReversed,
		Alternating: c.Alternating,
		Freq:        physic.Frequency(c.FreqHz) * physic.Hertz,
		Latch:       time.Duration(c.LatchUs) * time.Microsecond,
	}
	if c.LatchUs < 0 {
		o.Latch = -1
	}
	if c.Atomic {
		o.Atomic = ws2812.NewThreadLock()
	}
	return o
}

// Layout returns the matrix layout of the configuration.
func (c *Config) Layout() *ws2812.Layout {
	return &ws2812.Layout{LedsPerRow: c.LedsPerRow, XReversed: c.XReversed, Alternating: c.Alternating}
}
