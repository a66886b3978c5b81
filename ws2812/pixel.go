// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812

import (
	"fmt"
	"image/color"
)

const mask5 = 0x1f

// Pixel is the color of one LED with 5 bits per channel, packed as
// 0RRRRRGGGGGBBBBB.
type Pixel uint16

// NewPixel keeps the 5 most significant bits of each 8-bit channel.
func NewPixel(r, g, b byte) Pixel {
	return Pixel(uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3))
}

// R5 returns the stored red channel, 0..31.
func (p Pixel) R5() uint8 {
	return uint8(p>>10) & mask5
}

// G5 returns the stored green channel, 0..31.
func (p Pixel) G5() uint8 {
	return uint8(p>>5) & mask5
}

// B5 returns the stored blue channel, 0..31.
func (p Pixel) B5() uint8 {
	return uint8(p) & mask5
}

// RGB expands the channels back to 8 bits. The 3 low bits are always zero.
func (p Pixel) RGB() (r, g, b byte) {
	return p.R5() << 3, p.G5() << 3, p.B5() << 3
}

// RGBA implements color.Color. The pixel is always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := p.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

func (p Pixel) String() string {
	return fmt.Sprintf("Pixel{%d, %d, %d}", p.R5(), p.G5(), p.B5())
}

// PixelModel converts any color to a Pixel. Alpha is discarded after
// un-premultiplying.
var PixelModel = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewPixel(n.R, n.G, n.B)
}

var _ color.Color = Pixel(0)
var _ fmt.Stringer = Pixel(0)
