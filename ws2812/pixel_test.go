// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ws2812

import (
	"image/color"
	"testing"
)

func TestNewPixelTruncates(t *testing.T) {
	for v := range 256 {
		c := byte(v)
		p := NewPixel(c, c, c)
		r, g, b := p.RGB()
		want := c & 0xF8
		if r != want || g != want || b != want {
			t.Fatalf("NewPixel(%d).RGB() = %d, %d, %d; want %d", c, r, g, b, want)
		}
	}
}

func TestPixelChannels(t *testing.T) {
	p := NewPixel(0xFF, 0x80, 0x08)
	if got := p.R5(); got != 31 {
		t.Errorf("R5() = %d", got)
	}
	if got := p.G5(); got != 16 {
		t.Errorf("G5() = %d", got)
	}
	if got := p.B5(); got != 1 {
		t.Errorf("B5() = %d", got)
	}
	if p&0x8000 != 0 {
		t.Errorf("unused bit set: %#04x", uint16(p))
	}
	if s := p.String(); s != "Pixel{31, 16, 1}" {
		t.Errorf("String() = %q", s)
	}
}

func TestPixelRGBA(t *testing.T) {
	r, g, b, a := NewPixel(0xFF, 0, 0x10).RGBA()
	if r != 0xF8F8 || g != 0 || b != 0x1010 || a != 0xFFFF {
		t.Errorf("RGBA() = %#x, %#x, %#x, %#x", r, g, b, a)
	}
}

func TestPixelModel(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   color.Color
		want Pixel
	}{
		{"pixel", NewPixel(8, 16, 24), NewPixel(8, 16, 24)},
		{"nrgba", color.NRGBA{R: 0xFF, G: 0x7F, B: 0x00, A: 0xFF}, NewPixel(0xFF, 0x7F, 0)},
		{"half transparent", color.NRGBA{R: 0xFF, A: 0x80}, NewPixel(0xFF, 0, 0)},
		{"gray", color.Gray{Y: 0x40}, NewPixel(0x40, 0x40, 0x40)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := PixelModel.Convert(tc.in); got != tc.want {
				t.Errorf("Convert() = %v; want %v", got, tc.want)
			}
		})
	}
}
