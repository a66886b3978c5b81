// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/GermanBionicSystems/ledmatrix/ws2812"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Wheel returns a color on the red - green - blue - red transition.
func Wheel(pos byte) (r, g, b byte) {
	switch {
	case pos < 85:
		return pos * 3, 255 - pos*3, 0
	case pos < 170:
		pos -= 85
		return 255 - pos*3, 0, pos * 3
	default:
		pos -= 170
		return 0, pos * 3, 255 - pos*3
	}
}

// animation holds the state carried from one frame to the next.
type animation struct {
	pattern    string
	text       string
	brightness byte

	n    int
	ring *gg.Context
	img  *image.NRGBA
}

func newAnimation(c *Config, s *ws2812.Store) *animation {
	a := &animation{pattern: c.Pattern, text: c.Text, brightness: c.Brightness}
	switch c.Pattern {
	case "ring":
		a.ring = gg.NewContext(s.LedsPerRow(), s.Rows())
	case "text":
		a.img = image.NewNRGBA(s.Bounds())
	}
	return a
}

// step renders the next frame into s.
func (a *animation) step(s *ws2812.Store) {
	switch a.pattern {
	case "ring":
		a.drawRing(s)
	case "text":
		a.drawText(s)
	default:
		drawWheel(s, byte(a.n), a.brightness)
	}
	a.n++
}

// drawWheel spreads a full color wheel over the chain, rotated by cnt.
func drawWheel(s *ws2812.Store, cnt, brightness byte) {
	n := s.NumLeds()
	for i := range n {
		r, g, b := Wheel(byte(i*256/n) + cnt)
		s.SetColorDimmed(i, r, g, b, brightness)
	}
}

// drawRing draws a circle growing from the center of the matrix.
func (a *animation) drawRing(s *ws2812.Store) {
	w, h := float64(s.LedsPerRow()), float64(s.Rows())
	dc := a.ring
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	const steps = 32
	radius := float64(a.n%steps) / steps * math.Hypot(w, h) / 2
	r, g, b := Wheel(byte(a.n))
	dc.SetRGB255(int(r), int(g), int(b))
	dc.SetLineWidth(1.5)
	dc.DrawCircle(w/2, h/2, radius)
	dc.Stroke()
	drawDimmed(s, dc.Image(), a.brightness)
}

// textRows is the panel height the text pattern needs.
var textRows = basicfont.Face7x13.Height

// drawText scrolls the text from right to left.
func (a *animation) drawText(s *ws2812.Store) {
	img := a.img
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	f := basicfont.Face7x13
	w := img.Bounds().Dx()
	span := font.MeasureString(f, a.text).Ceil() + w
	r, g, b := Wheel(byte(a.n))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: 255}),
		Face: f,
		Dot:  fixed.P(w-a.n%span, img.Bounds().Dy()-1-f.Descent),
	}
	d.DrawString(a.text)
	drawDimmed(s, img, a.brightness)
}

// drawDimmed copies img into s at the given brightness.
func drawDimmed(s *ws2812.Store, img image.Image, brightness byte) {
	b := img.Bounds().Intersect(s.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			s.SetColorDimmedXY(x, y, c.R, c.G, c.B, brightness)
		}
	}
}
