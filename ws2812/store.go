// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812

import (
	"fmt"
	"image"
	"image/color"
)

// Layout describes how the LEDs of a matrix are chained.
type Layout struct {
	// LedsPerRow is the width of the matrix. 0 means a single row holding
	// every LED; it cannot be rejected since it is also the zero value of an
	// unset field.
	LedsPerRow int
	// XReversed is set when the chain starts on the right side of the first
	// row.
	XReversed bool
	// Alternating is set for serpentine wiring, where every odd row runs in
	// the opposite direction of the even rows.
	Alternating bool
}

// Store holds the color of every LED in physical wiring order.
//
// Coordinates are logical: x runs left to right in [0, LedsPerRow()) and y
// runs top to bottom. Writes and reads outside of the matrix are ignored.
//
// A Store is not safe for concurrent use.
type Store struct {
	pixels      []Pixel
	ledsPerRow  int
	xReversed   bool
	alternating bool
}

// NewStore returns a Store of numLeds LEDs, all off.
//
// l may be nil for a single strip.
func NewStore(numLeds int, l *Layout) (*Store, error) {
	if numLeds <= 0 {
		return nil, fmt.Errorf("ws2812: invalid number of LEDs: %d", numLeds)
	}
	var lay Layout
	if l != nil {
		lay = *l
	}
	if lay.LedsPerRow < 0 || lay.LedsPerRow > numLeds {
		return nil, fmt.Errorf("ws2812: invalid LEDs per row %d for %d LEDs", lay.LedsPerRow, numLeds)
	}
	if lay.LedsPerRow == 0 {
		lay.LedsPerRow = numLeds
	}
	return &Store{
		pixels:      make([]Pixel, numLeds),
		ledsPerRow:  lay.LedsPerRow,
		xReversed:   lay.XReversed,
		alternating: lay.Alternating,
	}, nil
}

// NumLeds returns the number of LEDs in the chain.
func (s *Store) NumLeds() int {
	return len(s.pixels)
}

// LedsPerRow returns the matrix width.
func (s *Store) LedsPerRow() int {
	return s.ledsPerRow
}

// Rows returns the matrix height. The last row may be partial.
func (s *Store) Rows() int {
	return (len(s.pixels) + s.ledsPerRow - 1) / s.ledsPerRow
}

// Index returns the position in the chain of the LED at x, y.
//
// The coordinates are not validated; an x or y outside of the matrix yields
// a meaningless index.
func (s *Store) Index(x, y int) int {
	base := y * s.ledsPerRow
	if s.xReversed != (s.alternating && y&1 == 1) {
		return base + s.ledsPerRow - 1 - x
	}
	return base + x
}

// offset returns the chain position of x, y or false when it is not a LED.
func (s *Store) offset(x, y int) (int, bool) {
	if x < 0 || x >= s.ledsPerRow || y < 0 {
		return 0, false
	}
	i := s.Index(x, y)
	if i >= len(s.pixels) {
		return 0, false
	}
	return i, true
}

// xy converts a row-major logical index to coordinates.
func (s *Store) xy(i int) (int, int) {
	return i % s.ledsPerRow, i / s.ledsPerRow
}

// SetColorXY sets the LED at x, y. Each channel is truncated to 5 bits.
func (s *Store) SetColorXY(x, y int, r, g, b byte) {
	if i, ok := s.offset(x, y); ok {
		s.pixels[i] = NewPixel(r, g, b)
	}
}

// SetColor sets the LED at logical index i, counted row by row from the top
// left corner regardless of the wiring.
func (s *Store) SetColor(i int, r, g, b byte) {
	if i < 0 {
		return
	}
	x, y := s.xy(i)
	s.SetColorXY(x, y, r, g, b)
}

// SetColorScaledXY sets the LED at x, y with each channel multiplied by
// scaling/256.
func (s *Store) SetColorScaledXY(x, y int, r, g, b, scaling byte) {
	s.SetColorXY(x, y, scale(r, scaling), scale(g, scaling), scale(b, scaling))
}

// SetColorScaled is SetColorScaledXY for a logical index.
func (s *Store) SetColorScaled(i int, r, g, b, scaling byte) {
	if i < 0 {
		return
	}
	x, y := s.xy(i)
	s.SetColorScaledXY(x, y, r, g, b, scaling)
}

// SetColorDimmedXY sets the LED at x, y dimmed to a visible brightness.
//
// The brightness is perceptual: 128 looks about half as bright as 255.
func (s *Store) SetColorDimmedXY(x, y int, r, g, b, brightness byte) {
	s.SetColorScaledXY(x, y, r, g, b, BrightnessToPWM(brightness))
}

// SetColorDimmed is SetColorDimmedXY for a logical index.
func (s *Store) SetColorDimmed(i int, r, g, b, brightness byte) {
	s.SetColorScaled(i, r, g, b, BrightnessToPWM(brightness))
}

// ColorXY returns the color of the LED at x, y, or black outside of the
// matrix.
//
// The low 3 bits of each channel are lost when storing, so this is not the
// exact value passed to SetColorXY. For scaled or dimmed colors this is the
// scaled value.
func (s *Store) ColorXY(x, y int) (r, g, b byte) {
	if i, ok := s.offset(x, y); ok {
		return s.pixels[i].RGB()
	}
	return 0, 0, 0
}

// Color is ColorXY for a logical index.
func (s *Store) Color(i int) (r, g, b byte) {
	if i < 0 {
		return 0, 0, 0
	}
	x, y := s.xy(i)
	return s.ColorXY(x, y)
}

// Pixel returns the stored pixel at chain position i, or black if i is out
// of range.
func (s *Store) Pixel(i int) Pixel {
	if i < 0 || i >= len(s.pixels) {
		return 0
	}
	return s.pixels[i]
}

// Fill sets every LED to the same color.
func (s *Store) Fill(r, g, b byte) {
	p := NewPixel(r, g, b)
	for i := range s.pixels {
		s.pixels[i] = p
	}
}

// Clear turns every LED off.
func (s *Store) Clear() {
	clear(s.pixels)
}

// ColorModel implements image.Image.
func (s *Store) ColorModel() color.Model {
	return PixelModel
}

// Bounds implements image.Image. Min is always {0, 0}.
func (s *Store) Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{X: s.ledsPerRow, Y: s.Rows()}}
}

// At implements image.Image. Missing LEDs of a partial last row are black.
func (s *Store) At(x, y int) color.Color {
	if i, ok := s.offset(x, y); ok {
		return s.pixels[i]
	}
	return Pixel(0)
}

// Draw copies src into the matrix, src's sp landing on r.Min.
//
// Alpha is ignored.
func (s *Store) Draw(r image.Rectangle, src image.Image, sp image.Point) {
	r = r.Intersect(s.Bounds())
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
	for sY := srcR.Min.Y; sY < srcR.Max.Y; sY++ {
		for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
			c := color.NRGBAModel.Convert(src.At(sX, sY)).(color.NRGBA)
			s.SetColorXY(sX+deltaX, sY+deltaY, c.R, c.G, c.B)
		}
	}
}

func scale(c, scaling byte) byte {
	return byte(uint16(c) * uint16(scaling) >> 8)
}

var _ image.Image = &Store{}
