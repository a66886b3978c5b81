// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a 2D display.Drawer that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful to try out an LED matrix animation before the panel is wired.
package screen2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	// X and Y are the matrix width and height. Y defaults to 1.
	X, Y    int
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is an LED matrix emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	rect    image.Rectangle
	palette ansi256.Palette

	pixels []byte
	buf    bytes.Buffer
	drawn  bool
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes the frames to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	y := opts.Y
	if y <= 0 {
		y = 1
	}
	return &Dev{
		w:       w,
		rect:    image.Rect(0, 0, opts.X, y),
		palette: *p,
		pixels:  make([]byte, 3*opts.X*y),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Write accepts a stream of raw RGB pixels, row by row, and writes it to the
// console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, errors.New("screen2d: invalid RGB stream length")
	}
	copy(d.pixels, pixels)
	return d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	if dY := r.Dy(); dY < srcR.Dy() {
		srcR.Max.Y = srcR.Min.Y + dY
	}
	deltaX := r.Min.X - srcR.Min.X
	deltaY := r.Min.Y - srcR.Min.Y
	stride := 3 * d.rect.Dx()
	for sY := srcR.Min.Y; sY < srcR.Max.Y; sY++ {
		for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
			c := color.NRGBAModel.Convert(src.At(sX, sY)).(color.NRGBA)
			o := (sY+deltaY)*stride + 3*(sX+deltaX)
			d.pixels[o] = c.R
			d.pixels[o+1] = c.G
			d.pixels[o+2] = c.B
		}
	}
	_, err := d.refresh()
	return err
}

func (d *Dev) refresh() (int, error) {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	if d.drawn && d.rect.Dy() > 1 {
		// Go back to the top left corner of the previous frame.
		fmt.Fprintf(&d.buf, "\033[%dA", d.rect.Dy()-1)
	}
	stride := 3 * d.rect.Dx()
	for y := 0; y < d.rect.Dy(); y++ {
		if y != 0 {
			_ = d.buf.WriteByte('\n')
		}
		_, _ = d.buf.WriteString("\r\033[0m")
		row := d.pixels[y*stride : (y+1)*stride]
		for i := 0; i < len(row)/3; i++ {
			c := color.NRGBA{row[3*i], row[3*i+1], row[3*i+2], 255}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m ")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return len(d.pixels), err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
