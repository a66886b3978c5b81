// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultOpts is the recommended default options.
//
// At 9MHz one SPI byte lasts 0.89µs, close to the 1.25µs bit period of the
// LEDs once the controller adds its inter-byte gap.
var DefaultOpts = Opts{
	NumPixels: 150,
	Freq:      9 * physic.MegaHertz,
	Latch:     50 * time.Microsecond,
}

// Opts defines the options for the device.
type Opts struct {
	// NumPixels is the number of LEDs in the chain.
	NumPixels int
	// LedsPerRow, XReversed and Alternating describe the wiring of a matrix.
	// See Layout.
	LedsPerRow  int
	XReversed   bool
	Alternating bool
	// Freq is the SPI clock. 0 means DefaultOpts.Freq.
	Freq physic.Frequency
	// Latch is how long the line is held low after a frame so the LEDs
	// display it. 0 means DefaultOpts.Latch; use a negative value to skip it
	// when the caller already waits between frames.
	Latch time.Duration
	// Atomic guards the frame transfer. nil means no protection.
	Atomic CriticalSection
}

// NewSPI returns a strip or matrix that communicates over SPI.
//
// # Wiring
//
// Connect DIN of the first LED to SPI_MOSI. SCK and CS are not used. A level
// shifter is needed for 5V LEDs on a 3.3V host.
func NewSPI(p spi.Port, o *Opts) (*Dev, error) {
	s, err := NewStore(o.NumPixels, &Layout{LedsPerRow: o.LedsPerRow, XReversed: o.XReversed, Alternating: o.Alternating})
	if err != nil {
		return nil, err
	}
	freq := o.Freq
	if freq == 0 {
		freq = DefaultOpts.Freq
	}
	latch := o.Latch
	if latch == 0 {
		latch = DefaultOpts.Latch
	}
	c, err := p.Connect(freq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ws2812: %w", err)
	}
	n := FrameLen(o.NumPixels)
	// A frame split over several transfers gets gaps the LEDs take as a reset.
	if l, ok := c.(conn.Limits); ok {
		if limit := l.MaxTxSize(); limit > 0 && n > limit {
			return nil, fmt.Errorf("ws2812: %d LEDs need a %d bytes transfer, port limit is %d", o.NumPixels, n, limit)
		}
	}
	d := &Dev{
		Store: s,
		c:     c,
		enc:   NewEncoder(o.Atomic),
		latch: make([]byte, latchBytes(freq, latch)),
	}
	d.link = bufio.NewWriterSize(txWriter{c}, n)
	// The line stays at the level of the last bit sent; make sure it starts
	// low.
	if err := c.Tx([]byte{0}, nil); err != nil {
		return nil, fmt.Errorf("ws2812: %w", err)
	}
	return d, nil
}

// Dev is a handle to a WS2812 chain.
//
// The embedded Store is the frame buffer; colors set on it are sent by
// Show.
type Dev struct {
	*Store

	c     spi.Conn
	enc   *Encoder
	link  *bufio.Writer
	latch []byte
}

func (d *Dev) String() string {
	return fmt.Sprintf("WS2812{%d LEDs, %s}", d.NumLeds(), d.c)
}

// Show sends the frame buffer to the LEDs.
func (d *Dev) Show() error {
	if err := d.enc.Flush(d.Store, d.link); err != nil {
		d.link.Reset(txWriter{d.c})
		return err
	}
	if len(d.latch) == 0 {
		return nil
	}
	if err := d.c.Tx(d.latch, nil); err != nil {
		return fmt.Errorf("ws2812: latch: %w", err)
	}
	return nil
}

// Write accepts a stream of raw RGB pixels in logical order and sends it.
//
// Pixels past the end of the chain are ignored.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, errLength
	}
	for i := 0; i < len(pixels)/3; i++ {
		d.SetColor(i, pixels[3*i], pixels[3*i+1], pixels[3*i+2])
	}
	return len(pixels), d.Show()
}

// Draw implements display.Drawer.
//
// The alpha channel is ignored.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	d.Store.Draw(r, src, sp)
	return d.Show()
}

// Halt implements conn.Resource.
//
// It turns off all the LEDs.
func (d *Dev) Halt() error {
	d.Clear()
	return d.Show()
}

//

var errLength = errors.New("ws2812: invalid RGB stream length")

// txWriter sends each Write as a single SPI transaction.
type txWriter struct {
	c conn.Conn
}

func (t txWriter) Write(p []byte) (int, error) {
	if err := t.c.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// latchBytes returns the number of zero bytes holding the line low for at
// least d at freq.
func latchBytes(freq physic.Frequency, d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	hz := int64(freq / physic.Hertz)
	// Whole seconds first so d*hz cannot overflow.
	sec, rem := int64(d/time.Second), int64(d%time.Second)
	bits := sec*hz + (rem*hz+int64(time.Second)-1)/int64(time.Second)
	return (bits + 7) / 8
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
